package study

import "errors"

var (
	// ErrContentRepositoryRequired is returned when a content repository is not provided.
	ErrContentRepositoryRequired = errors.New("content repository required")

	// ErrGeneratorRequired is returned when a text generator is not provided.
	ErrGeneratorRequired = errors.New("generator required")

	// ErrEmptyTopic is returned when content generation is requested without a topic.
	ErrEmptyTopic = errors.New("topic must not be empty")
)
