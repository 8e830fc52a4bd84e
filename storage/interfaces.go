package storage

import (
	"context"

	"github.com/learnmate/learnmate/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// MaterialRepository provides operations for managing uploaded materials.
type MaterialRepository interface {
	Repository
	// AddMaterial stores a new material. Sets CreatedAt/UpdatedAt if unset.
	// Materials keep their caller-assigned IDs; an ID of 0 gets a
	// content-derived ID from the title and owner.
	AddMaterial(ctx context.Context, material *core.Material) (*core.Material, error)

	// UpdateMaterial updates an existing material and bumps UpdatedAt.
	// Returns ErrNotFound if the material doesn't exist.
	UpdateMaterial(ctx context.Context, material *core.Material) (*core.Material, error)

	// GetMaterial retrieves a material by ID.
	// Returns ErrNotFound if the material doesn't exist.
	GetMaterial(ctx context.Context, id core.ID) (*core.Material, error)

	// ListMaterials retrieves all known materials.
	ListMaterials(ctx context.Context) ([]*core.Material, error)

	// ListMaterialsByOwner retrieves all materials uploaded by one owner.
	ListMaterialsByOwner(ctx context.Context, ownerID core.ID) ([]*core.Material, error)

	// DeleteMaterial removes a material by ID.
	// Returns ErrNotFound if the material doesn't exist.
	DeleteMaterial(ctx context.Context, id core.ID) error
}

// ChunkRepository provides operations for managing material chunks.
type ChunkRepository interface {
	Repository
	// PutChunks stores chunks, overwriting any existing chunk with the same ID.
	// Chunk IDs are content-derived, so re-ingesting a material overwrites
	// rather than duplicates. Sets InsertedAt if unset.
	PutChunks(ctx context.Context, chunks ...*core.Chunk) error

	// GetChunk retrieves a chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunksByMaterial retrieves all chunks of a material, in ordinal order.
	GetChunksByMaterial(ctx context.Context, materialID core.ID) ([]*core.Chunk, error)

	// DeleteChunksByMaterial removes all chunks belonging to a material.
	DeleteChunksByMaterial(ctx context.Context, materialID core.ID) error
}

// QuizRepository provides operations for managing quizzes.
type QuizRepository interface {
	Repository
	// AddQuiz stores a new quiz. For a quiz with ID 0, generates an ID from
	// sequence. Sets CreatedAt if unset.
	AddQuiz(ctx context.Context, quiz *core.Quiz) (*core.Quiz, error)

	// GetQuiz retrieves a quiz by ID.
	// Returns ErrNotFound if the quiz doesn't exist.
	GetQuiz(ctx context.Context, id core.ID) (*core.Quiz, error)

	// ListQuizzes retrieves all stored quizzes.
	ListQuizzes(ctx context.Context) ([]*core.Quiz, error)
}

// ContentFilter narrows a study-content listing. Empty fields match everything.
type ContentFilter struct {
	Subject    string
	GradeLevel string
}

// ContentRepository provides operations for managing generated study content.
type ContentRepository interface {
	Repository
	// AddContent stores a new study content record. For a record with ID 0,
	// generates an ID from sequence. Sets CreatedAt if unset.
	AddContent(ctx context.Context, content *core.StudyContent) (*core.StudyContent, error)

	// GetContent retrieves a study content record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetContent(ctx context.Context, id core.ID) (*core.StudyContent, error)

	// ListContent retrieves stored study content matching the filter.
	ListContent(ctx context.Context, filter ContentFilter) ([]*core.StudyContent, error)
}

// AttemptRepository provides operations for managing quiz attempts.
type AttemptRepository interface {
	Repository
	// AddAttempt stores a new attempt. For an attempt with ID 0, generates an
	// ID from sequence. Sets CompletedAt if unset. Attempts are immutable
	// after creation.
	AddAttempt(ctx context.Context, attempt *core.QuizAttempt) (*core.QuizAttempt, error)

	// GetAttempt retrieves an attempt by ID.
	// Returns ErrNotFound if the attempt doesn't exist.
	GetAttempt(ctx context.Context, id core.ID) (*core.QuizAttempt, error)

	// GetAttemptsByLearner retrieves a learner's attempts ordered by
	// completion time, oldest first. This is the trend analyzer's input order.
	GetAttemptsByLearner(ctx context.Context, learnerID core.ID) ([]*core.QuizAttempt, error)

	// GetRecentAttempts retrieves the learner's N most recent attempts,
	// newest first.
	GetRecentAttempts(ctx context.Context, learnerID core.ID, limit int) ([]*core.QuizAttempt, error)
}

// AnalysisRepository provides operations for managing quiz analyses.
// One analysis per attempt; writes are last-write-wins.
type AnalysisRepository interface {
	Repository
	// PutAnalysis stores an analysis keyed by its attempt ID, overwriting any
	// prior analysis for the same attempt.
	PutAnalysis(ctx context.Context, analysis *core.QuizAnalysis) (*core.QuizAnalysis, error)

	// GetAnalysisByAttempt retrieves the analysis for an attempt.
	// Returns ErrNotFound if no analysis has been computed yet.
	GetAnalysisByAttempt(ctx context.Context, attemptID core.ID) (*core.QuizAnalysis, error)
}

// PathRepository provides operations for managing learning paths.
// One path per learner, upsert semantics.
type PathRepository interface {
	Repository
	// UpsertPath stores the learner's path, overwriting any existing one.
	// Bumps UpdatedAt.
	UpsertPath(ctx context.Context, path *core.LearningPath) (*core.LearningPath, error)

	// GetPath retrieves the learner's path.
	// Returns ErrNotFound if the learner has no path yet.
	GetPath(ctx context.Context, learnerID core.ID) (*core.LearningPath, error)
}

// VectorStore persists vector-index collections and their records.
// A collection is scoped to one material; that isolation boundary keeps
// reprocessing and deletion material-local.
type VectorStore interface {
	// EnsureCollection registers a collection key. Idempotent.
	EnsureCollection(ctx context.Context, key string) error

	// Collections lists all registered collection keys.
	Collections(ctx context.Context) ([]string, error)

	// DropCollection removes a collection and all its records.
	DropCollection(ctx context.Context, key string) error

	// PutRecord stores a record in a collection, overwriting any record with
	// the same ID. A new record gets the next insertion sequence number; an
	// overwrite keeps the original Seq so tie-breaks stay stable.
	PutRecord(ctx context.Context, key string, record *core.VectorRecord) error

	// ScanRecords visits every record of a collection.
	// Returning an error from fn stops the scan.
	ScanRecords(ctx context.Context, key string, fn func(*core.VectorRecord) error) error

	// CountRecords returns the number of records in a collection.
	CountRecords(ctx context.Context, key string) (int, error)

	// Close releases store resources.
	Close() error
}
