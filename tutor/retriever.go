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

package tutor

import (
	"context"
	"log/slog"
	"slices"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/ingestion"
	"github.com/learnmate/learnmate/storage"
)

// passagesPerQuery is how many passages each material collection
// contributes before the global merge.
const passagesPerQuery = 3

// Retriever finds the passages most relevant to a question across a
// learner's processed materials.
type Retriever struct {
	materials storage.MaterialRepository
	indexes   *index.Manager
	embedder  ai.Embedder
	logger    *slog.Logger
}

// NewRetriever creates a retriever over the given materials and indexes.
func NewRetriever(
	materialRepository storage.MaterialRepository,
	indexManager *index.Manager,
	embedder ai.Embedder,
	logger *slog.Logger,
) (*Retriever, error) {
	if materialRepository == nil {
		return nil, ErrMaterialRepositoryRequired
	}
	if indexManager == nil {
		return nil, ErrIndexManagerRequired
	}
	if embedder == nil {
		return nil, ErrAIProviderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Retriever{
		materials: materialRepository,
		indexes:   indexManager,
		embedder:  embedder,
		logger:    logger.With("component", "retriever"),
	}, nil
}

// Retrieve embeds the question once and fans out over every processed
// material of the owner, taking the top passages from each collection
// and merging them into a global top-k. When the owner has no processed
// materials the question is never embedded and the result is empty.
func (r *Retriever) Retrieve(ctx context.Context, ownerID core.ID, question string, k int) ([]*core.Passage, error) {
	materials, err := r.materials.ListMaterialsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	materials = slices.DeleteFunc(materials, func(m *core.Material) bool {
		return !m.Processed
	})
	if len(materials) == 0 {
		return nil, nil
	}

	vector, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		r.logger.Error("error generating embedding for question", "err", err)
		return nil, err
	}

	var merged []*core.Passage
	for _, material := range materials {
		col, err := r.indexes.CreateOrOpen(ctx, ingestion.CollectionKey(material.Id))
		if err != nil {
			return nil, err
		}

		passages, err := col.Query(ctx, vector, passagesPerQuery)
		if err != nil {
			r.logger.Warn("error querying collection",
				"material", material.Id,
				"err", err)
			continue
		}
		merged = append(merged, passages...)
	}

	// Collection queries come back best first; the merge re-sorts
	// globally, ties by material then chunk for determinism.
	slices.SortFunc(merged, func(a, b *core.Passage) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.MaterialId != b.MaterialId {
			if a.MaterialId < b.MaterialId {
				return -1
			}
			return 1
		}
		if a.ChunkId < b.ChunkId {
			return -1
		}
		if a.ChunkId > b.ChunkId {
			return 1
		}
		return 0
	})

	if len(merged) > k {
		merged = merged[:k]
	}
	return merged, nil
}
