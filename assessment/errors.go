package assessment

import "errors"

var (
	// ErrQuizRepositoryRequired is returned when a quiz repository is not provided.
	ErrQuizRepositoryRequired = errors.New("quiz repository required")

	// ErrAttemptRepositoryRequired is returned when an attempt repository is not provided.
	ErrAttemptRepositoryRequired = errors.New("attempt repository required")

	// ErrAnalysisRepositoryRequired is returned when an analysis repository is not provided.
	ErrAnalysisRepositoryRequired = errors.New("analysis repository required")

	// ErrPathRepositoryRequired is returned when a path repository is not provided.
	ErrPathRepositoryRequired = errors.New("path repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyTopic is returned when a topic name is blank.
	ErrEmptyTopic = errors.New("topic must not be empty")

	// ErrEmptySubject is returned when quiz generation is requested without
	// a subject or topic.
	ErrEmptySubject = errors.New("subject or topic required")
)
