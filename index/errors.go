package index

import "errors"

var (
	// ErrStoreRequired is returned when a Manager is built without a vector store.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrEmptyKey is returned when a collection key is empty.
	ErrEmptyKey = errors.New("collection key is empty")

	// ErrEmptyVector is returned when an empty vector is added or queried.
	ErrEmptyVector = errors.New("vector is empty")
)
