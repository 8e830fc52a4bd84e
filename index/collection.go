package index

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// Collection is a handle to one vector collection.
type Collection struct {
	key    string
	store  storage.VectorStore
	logger *slog.Logger
}

// Key returns the collection key.
func (c *Collection) Key() string {
	return c.key
}

// Add stores a vector record. Adding the same ID again overwrites the
// earlier record, so indexing is idempotent per ID.
func (c *Collection) Add(ctx context.Context, id, materialID core.ID, vector []float32, text string) error {
	if len(vector) == 0 {
		return ErrEmptyVector
	}
	return c.store.PutRecord(ctx, c.key, &core.VectorRecord{
		Id:         id,
		MaterialId: materialID,
		Vector:     vector,
		Text:       text,
	})
}

// Count returns the number of records in the collection.
func (c *Collection) Count(ctx context.Context) (int, error) {
	return c.store.CountRecords(ctx, c.key)
}

type scoredRecord struct {
	record *core.VectorRecord
	score  float32
}

// Query scores every record by cosine similarity against the query
// vector and returns the k best matches, best first. Equal scores break
// by insertion order so repeated queries stay deterministic. An empty
// collection yields an empty slice.
func (c *Collection) Query(ctx context.Context, vector []float32, k int) ([]*core.Passage, error) {
	if len(vector) == 0 {
		return nil, ErrEmptyVector
	}
	if k <= 0 {
		return nil, nil
	}

	var scored []scoredRecord
	err := c.store.ScanRecords(ctx, c.key, func(record *core.VectorRecord) error {
		scored = append(scored, scoredRecord{
			record: record,
			score:  cosineSimilarity(vector, record.Vector),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(scored, func(a, b scoredRecord) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		if a.record.Seq < b.record.Seq {
			return -1
		}
		if a.record.Seq > b.record.Seq {
			return 1
		}
		return 0
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	passages := make([]*core.Passage, 0, len(scored))
	for _, s := range scored {
		passages = append(passages, &core.Passage{
			ChunkId:    s.record.Id,
			MaterialId: s.record.MaterialId,
			Text:       s.record.Text,
			Score:      s.score,
		})
	}
	return passages, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// A zero-magnitude vector on either side scores 0.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	for i := minLen; i < len(a); i++ {
		normA += float64(a[i]) * float64(a[i])
	}
	for i := minLen; i < len(b); i++ {
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
