package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgerstore "github.com/learnmate/learnmate/storage/badger"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	manager, err := NewManager(stores.Vectors)
	require.NoError(t, err)
	return manager
}

func TestManagerLifecycle(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	_, err := manager.CreateOrOpen(ctx, "material-1")
	require.NoError(t, err)

	// Idempotent
	_, err = manager.CreateOrOpen(ctx, "material-1")
	require.NoError(t, err)

	_, err = manager.CreateOrOpen(ctx, "material-2")
	require.NoError(t, err)

	keys, err := manager.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	require.NoError(t, manager.Drop(ctx, "material-1"))

	keys, err = manager.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"material-2"}, keys)
}

func TestQueryOrdersBySimilarity(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	col, err := manager.CreateOrOpen(ctx, "material-7")
	require.NoError(t, err)

	require.NoError(t, col.Add(ctx, 1, 7, []float32{1, 0, 0}, "east"))
	require.NoError(t, col.Add(ctx, 2, 7, []float32{0, 1, 0}, "north"))
	require.NoError(t, col.Add(ctx, 3, 7, []float32{0.9, 0.1, 0}, "mostly east"))

	passages, err := col.Query(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, passages, 2)
	assert.Equal(t, "east", passages[0].Text)
	assert.Equal(t, "mostly east", passages[1].Text)
	assert.Greater(t, passages[0].Score, passages[1].Score)
}

func TestQueryTieBreaksByInsertionOrder(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	col, err := manager.CreateOrOpen(ctx, "material-8")
	require.NoError(t, err)

	// Identical vectors score identically; insertion order decides.
	require.NoError(t, col.Add(ctx, 10, 8, []float32{0, 1}, "first in"))
	require.NoError(t, col.Add(ctx, 11, 8, []float32{0, 1}, "second in"))

	passages, err := col.Query(ctx, []float32{0, 1}, 2)
	require.NoError(t, err)
	require.Len(t, passages, 2)
	assert.Equal(t, "first in", passages[0].Text)
	assert.Equal(t, "second in", passages[1].Text)
}

func TestQueryEmptyCollection(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	col, err := manager.CreateOrOpen(ctx, "material-9")
	require.NoError(t, err)

	passages, err := col.Query(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, passages)
}

func TestAddOverwritesById(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	col, err := manager.CreateOrOpen(ctx, "material-10")
	require.NoError(t, err)

	require.NoError(t, col.Add(ctx, 5, 10, []float32{1, 0}, "old text"))
	require.NoError(t, col.Add(ctx, 5, 10, []float32{0, 1}, "new text"))

	count, err := col.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	passages, err := col.Query(ctx, []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, "new text", passages[0].Text)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	// Zero vectors never divide by zero.
	assert.Equal(t, float32(0), cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, float32(0), cosineSimilarity(nil, []float32{1, 0}))
}
