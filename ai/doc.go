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

// Package ai provides abstractions for the AI services used in Learnmate.
//
// This package defines interfaces for text embeddings, answer synthesis,
// quiz generation, and performance insights. Core and business logic
// depend on these abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four service interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - Generator: Produces free-form text completions
//   - InsightGenerator: Analyzes quiz performance
//   - QuizGenerator: Produces multiple-choice questions
//
// AIProvider aggregates all four for convenient initialization.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockEmbedder and friends) return
// CONCRETE types to enable behavior injection via function fields and
// assertions on call counts.
//
//	mockEmbed := mock.NewMockEmbedder()  // returns *mock.MockEmbedder
//	mockEmbed.EmbedTextFunc = ...        // needs concrete type
//	count := mockEmbed.CallCount()       // test assertion
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "photosynthesis")
//	answer, err := provider.Generator().Complete(ctx, systemPrompt, question)
package ai
