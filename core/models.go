package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs. Chunk IDs are derived
// from the parent material ID and the chunk ordinal, which makes vector-index
// insertion idempotent under re-ingestion.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Material identifies one uploaded instructional document.
// The Processed flag is flipped exactly once, after successful ingestion.
type Material struct {
	Id         ID
	OwnerId    ID
	Title      string
	Subject    string
	GradeLevel string
	Tags       []string
	Processed  bool
	PageCount  int
	ChunkCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Chunk is one page-sized unit of a material's text.
// Chunks are created during ingestion and immutable thereafter.
type Chunk struct {
	Id         ID
	MaterialId ID
	Ordinal    int // Page position within the source document
	Text       string
	Collection string // Vector-index collection holding this chunk's embedding
	InsertedAt time.Time
}

// VectorRecord is one embedded entry inside a vector-index collection.
// Seq records insertion order and is preserved when a record is overwritten
// by ID, so similarity ties break stably.
type VectorRecord struct {
	Id         ID // Chunk ID, caller-assigned
	MaterialId ID
	Vector     []float32
	Text       string
	Seq        uint64
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Prompt        string
	Options       []string
	CorrectOption int // Index into Options
	Explanation   string
}

// Quiz is an ordered set of questions for one topic.
type Quiz struct {
	Id         ID
	Title      string
	Subject    string
	GradeLevel string
	Topic      string
	Difficulty string
	Questions  []QuizQuestion
	CreatedAt  time.Time
}

// AnswerKey returns the correct option index for each question, in order.
func (q *Quiz) AnswerKey() []int {
	key := make([]int, len(q.Questions))
	for i, question := range q.Questions {
		key[i] = question.CorrectOption
	}
	return key
}

// QuizAttempt is a learner's submission against one quiz.
// Attempts are immutable after creation.
type QuizAttempt struct {
	Id          ID
	QuizId      ID
	LearnerId   ID
	Answers     map[int]int // Question ordinal -> selected option ordinal
	Score       int
	TotalMarks  int
	Percentage  float64
	CompletedAt time.Time
}

// TrendLabel classifies the direction of a learner's recent score history.
type TrendLabel string

const (
	TrendImproving TrendLabel = "improving"
	TrendDeclining TrendLabel = "declining"
	TrendStable    TrendLabel = "stable"
)

// AnalysisSource tags whether an analysis came from the generative model
// or from the deterministic fallback. Callers branch on this explicitly
// instead of inferring it from content.
type AnalysisSource int

const (
	// AnalysisSourceModel means the generative model produced the insights
	// and its output parsed as the expected structure.
	AnalysisSourceModel AnalysisSource = iota + 1
	// AnalysisSourceFallback means the deterministic fallback was substituted
	// because the model was unavailable or its output did not parse.
	AnalysisSourceFallback
)

// QuizAnalysis is the derived, trend-aware reading of one attempt.
// Recomputation for the same attempt overwrites the prior record.
type QuizAnalysis struct {
	Id              ID
	AttemptId       ID
	LearnerId       ID
	Trend           TrendLabel
	Insights        []string
	Recommendations []string
	ConceptGaps     []string
	Source          AnalysisSource
	CreatedAt       time.Time
}

// LearningPath is the aggregate recommendation state for one learner.
// One record per learner, upsert semantics.
type LearningPath struct {
	LearnerId         ID
	Level             string // beginner, intermediate, advanced
	RecommendedTopics []string
	WeakAreas         []string
	StrongAreas       []string
	CompletedTopics   []string
	UpdatedAt         time.Time
}

// StudyContent is a generated study write-up for one topic. The body is
// model-written prose; when generation fails a deterministic placeholder
// is stored instead and AIGenerated stays false.
type StudyContent struct {
	Id          ID
	OwnerId     ID
	Title       string
	Subject     string
	GradeLevel  string
	Topic       string
	Body        string
	AIGenerated bool
	Tags        []string
	CreatedAt   time.Time
}

// Passage is a retrieved excerpt of material text with its similarity score.
type Passage struct {
	ChunkId    ID
	MaterialId ID
	Text       string
	Score      float32
}
