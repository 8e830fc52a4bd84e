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

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/extract"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/storage"
)

// Report summarizes what happened to each page of an ingested document.
type Report struct {
	// PagesTotal is the number of pages the extractor produced.
	PagesTotal int

	// PagesProcessed is the number of pages embedded and indexed.
	PagesProcessed int

	// PagesSkipped is the number of blank pages.
	PagesSkipped int

	// PagesFailed is the number of pages whose embedding failed.
	PagesFailed int
}

// Pipeline orchestrates the ingestion of study materials. It extracts
// page texts, embeds and indexes them, and persists the chunks.
type Pipeline struct {
	materials storage.MaterialRepository
	chunks    storage.ChunkRepository
	indexes   *index.Manager
	extractor extract.Extractor
	embedder  ai.Embedder
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for async ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	materialRepository storage.MaterialRepository,
	chunkRepository storage.ChunkRepository,
	indexManager *index.Manager,
	extractor extract.Extractor,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if materialRepository == nil {
		return nil, ErrMaterialRepositoryRequired
	}
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if indexManager == nil {
		return nil, ErrIndexManagerRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		materials: materialRepository,
		chunks:    chunkRepository,
		indexes:   indexManager,
		extractor: extractor,
		embedder:  provider.Embedder(),
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.logger = p.logger.With("component", "ingestion")
	return p, nil
}

// CollectionKey returns the vector collection key for a material.
// Each material gets its own collection so reprocessing and deletion
// stay material-local.
func CollectionKey(materialID core.ID) string {
	return fmt.Sprintf("material-%d", materialID)
}

// Ingest extracts, embeds, and indexes a document. A format the
// extractor rejects fails the whole call with nothing persisted. Blank
// pages are skipped; a page whose embedding fails is logged and
// dropped while the rest of the document survives. If no page yields
// indexable content the call fails with core.ErrNoIndexableContent.
func (p *Pipeline) Ingest(ctx context.Context, material *core.Material, data []byte) (*Report, error) {
	if err := core.ValidateMaterial(material); err != nil {
		return nil, err
	}

	pages, err := p.extractor.Pages(ctx, data)
	if err != nil {
		return nil, err
	}

	if material.Id == 0 {
		if _, err := p.materials.AddMaterial(ctx, material); err != nil {
			return nil, err
		}
	}

	collection, err := p.indexes.CreateOrOpen(ctx, CollectionKey(material.Id))
	if err != nil {
		return nil, err
	}

	report := &Report{PagesTotal: len(pages)}
	chunks := make([]*core.Chunk, 0, len(pages))

	for ordinal, page := range pages {
		text := strings.TrimSpace(page)
		if text == "" {
			report.PagesSkipped++
			continue
		}

		vector, err := p.embedder.EmbedText(ctx, text)
		if err != nil || len(vector) == 0 {
			p.logger.Warn("failed to embed page",
				"material", material.Id,
				"page", ordinal,
				"err", err)
			report.PagesFailed++
			continue
		}

		// Content-derived chunk ID keeps re-ingestion idempotent.
		chunkID := core.IDFromContent(fmt.Sprintf("%d:%d", material.Id, ordinal))
		if err := collection.Add(ctx, chunkID, material.Id, vector, text); err != nil {
			return nil, err
		}

		chunks = append(chunks, &core.Chunk{
			Id:         chunkID,
			MaterialId: material.Id,
			Ordinal:    ordinal,
			Text:       text,
			Collection: collection.Key(),
		})
		report.PagesProcessed++
	}

	if report.PagesProcessed == 0 {
		return report, core.ErrNoIndexableContent
	}

	if err := p.chunks.PutChunks(ctx, chunks...); err != nil {
		return report, err
	}

	material.Processed = true
	material.PageCount = report.PagesTotal
	material.ChunkCount = report.PagesProcessed
	if _, err := p.materials.UpdateMaterial(ctx, material); err != nil {
		return report, err
	}

	p.logger.Info("ingested material",
		"material", material.Id,
		"pages", report.PagesTotal,
		"processed", report.PagesProcessed,
		"skipped", report.PagesSkipped,
		"failed", report.PagesFailed)
	return report, nil
}

// IngestAsync submits the document to the worker pool. Errors are
// logged but do not reach the caller.
func (p *Pipeline) IngestAsync(material *core.Material, data []byte) error {
	return p.pool.Submit(func() {
		if _, err := p.Ingest(context.Background(), material, data); err != nil {
			p.logger.Error("error ingesting material",
				"material", material.Id,
				"err", err)
		}
	})
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
