package mock

import (
	"context"
	"fmt"

	"github.com/learnmate/learnmate/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// CompleteFunc is called by Complete if set.
	// If nil, returns a canned reply echoing the prompt length.
	CompleteFunc func(ctx context.Context, system, prompt string) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default canned behavior.
// Returns the concrete type so tests can inject behavior and assert call counts.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Complete returns the injected behavior's result or a canned reply.
func (m *MockGenerator) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.callCount++

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, prompt)
	}

	return fmt.Sprintf("mock completion for %d prompt bytes", len(prompt)), nil
}

// CallCount returns the number of times Complete was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.CompleteFunc = nil
}

// MockInsightGenerator is a test double for ai.InsightGenerator.
type MockInsightGenerator struct {
	// GenerateInsightsFunc is called by GenerateInsights if set.
	// If nil, returns a fixed report.
	GenerateInsightsFunc func(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error)

	callCount int
}

// NewMockInsightGenerator creates a mock insight generator.
// Returns the concrete type so tests can inject behavior and assert call counts.
func NewMockInsightGenerator() *MockInsightGenerator {
	return &MockInsightGenerator{}
}

// GenerateInsights returns the injected behavior's result or a fixed report.
func (m *MockInsightGenerator) GenerateInsights(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
	m.callCount++

	if m.GenerateInsightsFunc != nil {
		return m.GenerateInsightsFunc(ctx, req)
	}

	return &ai.InsightReport{
		Insights:        []string{fmt.Sprintf("mock insight for %s", req.Subject)},
		Recommendations: []string{"mock recommendation"},
		ConceptGaps:     []string{},
	}, nil
}

// CallCount returns the number of times GenerateInsights was called.
func (m *MockInsightGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockInsightGenerator) Reset() {
	m.callCount = 0
	m.GenerateInsightsFunc = nil
}

// MockQuizGenerator is a test double for ai.QuizGenerator.
type MockQuizGenerator struct {
	// GenerateQuizFunc is called by GenerateQuiz if set.
	// If nil, returns deterministic placeholder questions.
	GenerateQuizFunc func(ctx context.Context, req ai.QuizRequest) ([]ai.GeneratedQuestion, error)

	callCount int
}

// NewMockQuizGenerator creates a mock quiz generator.
// Returns the concrete type so tests can inject behavior and assert call counts.
func NewMockQuizGenerator() *MockQuizGenerator {
	return &MockQuizGenerator{}
}

// GenerateQuiz returns the injected behavior's result or placeholder questions.
func (m *MockQuizGenerator) GenerateQuiz(ctx context.Context, req ai.QuizRequest) ([]ai.GeneratedQuestion, error) {
	m.callCount++

	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, req)
	}

	count := req.NumQuestions
	if count < 1 {
		count = 1
	}

	questions := make([]ai.GeneratedQuestion, count)
	for i := range questions {
		questions[i] = ai.GeneratedQuestion{
			Prompt:        fmt.Sprintf("mock question %d about %s", i+1, req.Topic),
			Options:       []string{"option a", "option b", "option c", "option d"},
			CorrectOption: i % 4,
			Explanation:   "mock explanation",
		}
	}
	return questions, nil
}

// CallCount returns the number of times GenerateQuiz was called.
func (m *MockQuizGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockQuizGenerator) Reset() {
	m.callCount = 0
	m.GenerateQuizFunc = nil
}
