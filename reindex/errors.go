package reindex

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when a retry is requested with a
	// non-positive attempt limit.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrMaterialNotProcessed is returned when reindexing is requested for
	// a material that was never ingested.
	ErrMaterialNotProcessed = errors.New("material has not been processed")
)
