// Copyright 2025 Learnmate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reindex

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/learnmate/ai/mock"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/ingestion"
	badgerstore "github.com/learnmate/learnmate/storage/badger"
)

type reindexFixture struct {
	stores   *badgerstore.Stores
	manager  *index.Manager
	provider *mock.MockProvider
	output   *strings.Builder
}

func newReindexFixture(t *testing.T) *reindexFixture {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	manager, err := index.NewManager(stores.Vectors)
	require.NoError(t, err)

	return &reindexFixture{
		stores:   stores,
		manager:  manager,
		provider: mock.NewMockProvider().(*mock.MockProvider),
		output:   &strings.Builder{},
	}
}

func (f *reindexFixture) newReindexer(config *Config) *Reindexer {
	return NewReindexer(f.stores.Materials, f.stores.Chunks, f.manager,
		f.provider.Embedder(), config, f.output)
}

// seedMaterial stores a processed material with indexed chunks for each text.
func (f *reindexFixture) seedMaterial(t *testing.T, title string, texts ...string) *core.Material {
	t.Helper()
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: title, Processed: true}
	_, err := f.stores.Materials.AddMaterial(ctx, material)
	require.NoError(t, err)

	key := ingestion.CollectionKey(material.Id)
	col, err := f.manager.CreateOrOpen(ctx, key)
	require.NoError(t, err)

	chunks := make([]*core.Chunk, 0, len(texts))
	for ordinal, text := range texts {
		chunks = append(chunks, &core.Chunk{
			MaterialId: material.Id,
			Ordinal:    ordinal,
			Text:       text,
			Collection: key,
		})
	}
	require.NoError(t, f.stores.Chunks.PutChunks(ctx, chunks...))

	// Index entries keyed by the IDs PutChunks derived.
	for _, chunk := range chunks {
		require.NoError(t, col.Add(ctx, chunk.Id, material.Id, []float32{1, 0, 0}, chunk.Text))
	}
	return material
}

func TestRunMaterialRefreshesVectors(t *testing.T) {
	f := newReindexFixture(t)
	ctx := context.Background()
	material := f.seedMaterial(t, "Biology Notes", "cells divide", "plants grow")

	f.provider.GetMockEmbedder().EmbedTextsFunc =
		func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{0, 1, 0}
			}
			return vectors, nil
		}

	reindexer := f.newReindexer(nil)
	require.NoError(t, reindexer.RunMaterial(ctx, material.Id))

	key := ingestion.CollectionKey(material.Id)
	seen := 0
	err := f.stores.Vectors.ScanRecords(ctx, key, func(record *core.VectorRecord) error {
		seen++
		assert.Equal(t, []float32{0, 1, 0}, record.Vector)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	assert.Contains(t, f.output.String(), "Biology Notes")
}

func TestRunMaterialPreservesSequenceNumbers(t *testing.T) {
	f := newReindexFixture(t)
	ctx := context.Background()
	material := f.seedMaterial(t, "Biology Notes", "cells divide", "plants grow")
	key := ingestion.CollectionKey(material.Id)

	before := make(map[core.ID]uint64)
	require.NoError(t, f.stores.Vectors.ScanRecords(ctx, key, func(record *core.VectorRecord) error {
		before[record.Id] = record.Seq
		return nil
	}))

	require.NoError(t, f.newReindexer(nil).RunMaterial(ctx, material.Id))

	require.NoError(t, f.stores.Vectors.ScanRecords(ctx, key, func(record *core.VectorRecord) error {
		seq, ok := before[record.Id]
		if assert.True(t, ok) {
			assert.Equal(t, seq, record.Seq)
		}
		return nil
	}))
}

func TestRunMaterialRejectsUnprocessed(t *testing.T) {
	f := newReindexFixture(t)
	ctx := context.Background()

	material := &core.Material{OwnerId: 1, Title: "Draft"}
	_, err := f.stores.Materials.AddMaterial(ctx, material)
	require.NoError(t, err)

	err = f.newReindexer(nil).RunMaterial(ctx, material.Id)
	assert.ErrorIs(t, err, ErrMaterialNotProcessed)
}

func TestRunSkipsUnprocessedMaterials(t *testing.T) {
	f := newReindexFixture(t)
	ctx := context.Background()

	f.seedMaterial(t, "Biology Notes", "cells divide")

	draft := &core.Material{OwnerId: 1, Title: "Draft"}
	_, err := f.stores.Materials.AddMaterial(ctx, draft)
	require.NoError(t, err)

	require.NoError(t, f.newReindexer(nil).Run(ctx))
	assert.NotContains(t, f.output.String(), "Draft")
}

func TestRunMaterialRetriesEmbeddingFailures(t *testing.T) {
	f := newReindexFixture(t)
	ctx := context.Background()
	material := f.seedMaterial(t, "Biology Notes", "cells divide")

	calls := 0
	f.provider.GetMockEmbedder().EmbedTextsFunc =
		func(ctx context.Context, texts []string) ([][]float32, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{0, 0, 1}
			}
			return vectors, nil
		}

	config := DefaultConfig()
	config.RetryDelay = time.Millisecond
	require.NoError(t, f.newReindexer(config).RunMaterial(ctx, material.Id))
	assert.Equal(t, 2, calls)
}
