// Package ingestion provides pipeline orchestration for processing study materials.
//
// The Pipeline type manages the ingestion workflow for uploaded documents:
//   - Extracting page texts from the raw bytes
//   - Generating an embedding per non-blank page
//   - Indexing the embeddings in the material's vector collection
//   - Persisting the page texts as chunks
//
// Extraction failures abort the whole document; embedding failures are
// per page, logged, and skipped so one bad page never loses the rest.
// IngestAsync performs the same work on a worker pool, where errors are
// logged but cannot fail the caller.
package ingestion
