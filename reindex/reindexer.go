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
	"fmt"
	"io"
	"time"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/ingestion"
	"github.com/learnmate/learnmate/storage"
)

// Config holds configuration for a reindexing run.
type Config struct {
	// BatchSize is the number of chunks embedded per call
	BatchSize int

	// ReportInterval is how often to report progress (number of chunks)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per embedding call
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-embeds the stored chunks of processed materials and
// refreshes their vector collections.
type Reindexer struct {
	materials storage.MaterialRepository
	chunks    storage.ChunkRepository
	indexes   *index.Manager
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(
	materials storage.MaterialRepository,
	chunks storage.ChunkRepository,
	indexes *index.Manager,
	embedder ai.Embedder,
	config *Config,
	progress io.Writer,
) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reindexer{
		materials: materials,
		chunks:    chunks,
		indexes:   indexes,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(embedder, config.MaxRetries, config.RetryDelay),
	}
}

// Run re-embeds every processed material. Unprocessed materials are
// skipped; they have no chunks to rebuild.
func (r *Reindexer) Run(ctx context.Context) error {
	materials, err := r.materials.ListMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed to list materials: %w", err)
	}

	var processed []*core.Material
	for _, material := range materials {
		if material.Processed {
			processed = append(processed, material)
		}
	}
	if len(processed) == 0 {
		fmt.Fprintf(r.progress, "No processed materials to reindex\n")
		return nil
	}

	for _, material := range processed {
		if err := r.reindexMaterial(ctx, material); err != nil {
			return fmt.Errorf("failed to reindex material %d: %w", material.Id, err)
		}
	}
	return nil
}

// RunMaterial re-embeds one material's chunks.
func (r *Reindexer) RunMaterial(ctx context.Context, materialID core.ID) error {
	material, err := r.materials.GetMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if !material.Processed {
		return ErrMaterialNotProcessed
	}
	return r.reindexMaterial(ctx, material)
}

func (r *Reindexer) reindexMaterial(ctx context.Context, material *core.Material) error {
	chunks, err := r.chunks.GetChunksByMaterial(ctx, material.Id)
	if err != nil {
		return fmt.Errorf("failed to load chunks: %w", err)
	}
	if len(chunks) == 0 {
		fmt.Fprintf(r.progress, "Material %q has no chunks, skipping\n", material.Title)
		return nil
	}

	fmt.Fprintf(r.progress, "Reindexing %q: %d chunks (batch size: %d)\n",
		material.Title, len(chunks), r.config.BatchSize)

	col, err := r.indexes.CreateOrOpen(ctx, ingestion.CollectionKey(material.Id))
	if err != nil {
		return err
	}

	tracker := NewProgressTracker(r.progress, len(chunks), r.config.ReportInterval)
	tracker.Start()

	done := 0
	for start := 0; start < len(chunks); start += r.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+r.config.BatchSize, len(chunks))
		if err := r.processor.Process(ctx, col, chunks[start:end]); err != nil {
			return err
		}

		done += end - start
		tracker.Update(done)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindexed %q: %d chunks in %v (%.1f chunks/sec)\n",
		material.Title, len(chunks), elapsed.Round(time.Second), float64(len(chunks))/elapsed.Seconds())
	return nil
}
