package tutor

import "errors"

var (
	// ErrMaterialRepositoryRequired is returned when a material repository is not provided.
	ErrMaterialRepositoryRequired = errors.New("material repository required")

	// ErrIndexManagerRequired is returned when an index manager is not provided.
	ErrIndexManagerRequired = errors.New("index manager required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyQuestion is returned when the question is blank.
	ErrEmptyQuestion = errors.New("question is empty")
)
