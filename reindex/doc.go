// Package reindex rebuilds the vector index entries of ingested materials,
// re-embedding their stored chunks with the currently configured embedding
// model. Collections are per material, so one material can be rebuilt
// without touching the rest of the index.
//
// The package supports batch processing, progress reporting, and retry with
// exponential backoff around the embedding calls.
package reindex
