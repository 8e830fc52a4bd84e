package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces free-form text completions.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Complete sends a system prompt and a user prompt to the model and
	// returns the text of the first choice. One attempt; transport errors
	// are returned to the caller without retry.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// InsightGenerator analyzes quiz performance and produces study guidance.
// Implementations must be thread-safe for concurrent use.
type InsightGenerator interface {
	// GenerateInsights asks the model for insights, recommendations, and
	// concept gaps from a learner's recent quiz history.
	// Returns an error if the model output cannot be parsed; callers are
	// expected to substitute deterministic fallback guidance.
	GenerateInsights(ctx context.Context, req InsightRequest) (*InsightReport, error)
}

// QuizGenerator produces multiple-choice questions about a topic.
// Implementations must be thread-safe for concurrent use.
type QuizGenerator interface {
	// GenerateQuiz asks the model for multiple-choice questions. The
	// returned questions are validated for shape (non-empty prompt,
	// at least two options, answer in range) before being returned.
	GenerateQuiz(ctx context.Context, req QuizRequest) ([]GeneratedQuestion, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages the embedding and generation services,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the free-form completion service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// InsightGenerator returns the performance insight service.
	// The returned InsightGenerator is safe for concurrent use.
	InsightGenerator() InsightGenerator

	// QuizGenerator returns the quiz question service.
	// The returned QuizGenerator is safe for concurrent use.
	QuizGenerator() QuizGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
