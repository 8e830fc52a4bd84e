package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/learnmate/ai/mock"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/extract"
	"github.com/learnmate/learnmate/index"
	badgerstore "github.com/learnmate/learnmate/storage/badger"
)

type pipelineFixture struct {
	pipeline *Pipeline
	stores   *badgerstore.Stores
	manager  *index.Manager
	provider *mock.MockProvider
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	manager, err := index.NewManager(stores.Vectors)
	require.NoError(t, err)

	extractor, err := extract.NewDocumentExtractor()
	require.NoError(t, err)

	provider := mock.NewMockProvider().(*mock.MockProvider)

	pipeline, err := NewPipeline(stores.Materials, stores.Chunks, manager, extractor, provider)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return &pipelineFixture{
		pipeline: pipeline,
		stores:   stores,
		manager:  manager,
		provider: provider,
	}
}

func TestIngestThreePageDocument(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: "Photosynthesis Notes", Subject: "science"}
	data := []byte("light reactions\fcalvin cycle\fchlorophyll and pigments")

	report, err := f.pipeline.Ingest(ctx, material, data)
	require.NoError(t, err)
	assert.Equal(t, 3, report.PagesTotal)
	assert.Equal(t, 3, report.PagesProcessed)
	assert.Equal(t, 0, report.PagesSkipped)
	assert.Equal(t, 0, report.PagesFailed)

	// Material flipped to processed with counts.
	stored, err := f.stores.Materials.GetMaterial(ctx, material.Id)
	require.NoError(t, err)
	assert.True(t, stored.Processed)
	assert.Equal(t, 3, stored.PageCount)
	assert.Equal(t, 3, stored.ChunkCount)

	// Chunks persisted in page order.
	chunks, err := f.stores.Chunks.GetChunksByMaterial(ctx, material.Id)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "light reactions", chunks[0].Text)
	assert.Equal(t, CollectionKey(material.Id), chunks[0].Collection)

	// Vectors indexed in the material's collection.
	col, err := f.manager.CreateOrOpen(ctx, CollectionKey(material.Id))
	require.NoError(t, err)
	count, err := col.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestIngestSkipsBlankAndFailedPages(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	// Page 2 fails to embed, page 3 is blank.
	f.provider.GetMockEmbedder().EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(text, "cursed") {
			return nil, errors.New("embedding backend down")
		}
		return []float32{1, 0, 0}, nil
	}

	material := &core.Material{OwnerId: 1, Title: "Patchy Scan"}
	data := []byte("good page\fcursed page\f   \fanother good page")

	report, err := f.pipeline.Ingest(ctx, material, data)
	require.NoError(t, err)
	assert.Equal(t, 4, report.PagesTotal)
	assert.Equal(t, 2, report.PagesProcessed)
	assert.Equal(t, 1, report.PagesSkipped)
	assert.Equal(t, 1, report.PagesFailed)

	chunks, err := f.stores.Chunks.GetChunksByMaterial(ctx, material.Id)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "good page", chunks[0].Text)
	assert.Equal(t, "another good page", chunks[1].Text)

	stored, err := f.stores.Materials.GetMaterial(ctx, material.Id)
	require.NoError(t, err)
	assert.True(t, stored.Processed)
	assert.Equal(t, 2, stored.ChunkCount)
}

func TestIngestUnsupportedFormatIsFatal(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: "Binary Blob"}
	_, err := f.pipeline.Ingest(ctx, material, []byte{0xde, 0xad, 0xbe, 0xef, 0x80})
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	// Nothing persisted.
	materials, err := f.stores.Materials.ListMaterials(ctx)
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestIngestNoIndexableContent(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: "Blank Pages"}
	report, err := f.pipeline.Ingest(ctx, material, []byte("   \f\n\n\f\t"))
	assert.ErrorIs(t, err, core.ErrNoIndexableContent)
	assert.Equal(t, 0, report.PagesProcessed)

	stored, getErr := f.stores.Materials.GetMaterial(ctx, material.Id)
	require.NoError(t, getErr)
	assert.False(t, stored.Processed)
}

func TestIngestIsIdempotent(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: "Repeat Upload"}
	data := []byte("first page\fsecond page")

	_, err := f.pipeline.Ingest(ctx, material, data)
	require.NoError(t, err)
	_, err = f.pipeline.Ingest(ctx, material, data)
	require.NoError(t, err)

	chunks, err := f.stores.Chunks.GetChunksByMaterial(ctx, material.Id)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)

	col, err := f.manager.CreateOrOpen(ctx, CollectionKey(material.Id))
	require.NoError(t, err)
	count, err := col.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
