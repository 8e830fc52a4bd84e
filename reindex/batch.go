package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/index"
)

// BatchProcessor embeds batches of chunks and writes them back into a
// vector collection. Entries are overwritten by chunk ID, so a rebuilt
// chunk keeps its insertion sequence.
type BatchProcessor struct {
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a batch processor. The retry settings bound
// the embedding calls, not the index writes.
func NewBatchProcessor(embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds one batch of chunks and stores the refreshed vectors in
// the collection.
func (bp *BatchProcessor) Process(ctx context.Context, col *index.Collection, chunks []*core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	for i, chunk := range chunks {
		if err := col.Add(ctx, chunk.Id, chunk.MaterialId, embeddings[i], chunk.Text); err != nil {
			return fmt.Errorf("failed to store vector for chunk %d: %w", chunk.Id, err)
		}
	}
	return nil
}
