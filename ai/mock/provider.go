// Copyright 2025 Learnmate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mock

import "github.com/learnmate/learnmate/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock instances of every AI service.
type MockProvider struct {
	embedder  *MockEmbedder
	generator *MockGenerator
	insights  *MockInsightGenerator
	quizzes   *MockQuizGenerator
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use the Mock accessor methods to reach concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		generator: NewMockGenerator(),
		insights:  NewMockInsightGenerator(),
		quizzes:   NewMockQuizGenerator(),
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the mock generator.
func (p *MockProvider) Generator() ai.Generator {
	return p.generator
}

// InsightGenerator returns the mock insight generator.
func (p *MockProvider) InsightGenerator() ai.InsightGenerator {
	return p.insights
}

// QuizGenerator returns the mock quiz generator.
func (p *MockProvider) QuizGenerator() ai.QuizGenerator {
	return p.quizzes
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockGenerator returns the underlying mock generator for test assertions.
func (p *MockProvider) GetMockGenerator() *MockGenerator {
	return p.generator
}

// GetMockInsightGenerator returns the underlying mock insight generator for test assertions.
func (p *MockProvider) GetMockInsightGenerator() *MockInsightGenerator {
	return p.insights
}

// GetMockQuizGenerator returns the underlying mock quiz generator for test assertions.
func (p *MockProvider) GetMockQuizGenerator() *MockQuizGenerator {
	return p.quizzes
}
