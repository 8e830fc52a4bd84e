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

package learnmate

import (
	"io"
	"log/slog"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/ai/openai"
	"github.com/learnmate/learnmate/assessment"
	"github.com/learnmate/learnmate/extract"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/ingestion"
	"github.com/learnmate/learnmate/reindex"
	"github.com/learnmate/learnmate/storage/badger"
	"github.com/learnmate/learnmate/study"
	"github.com/learnmate/learnmate/tutor"
)

// Platform bundles the storage, index, and AI layers behind one handle
// and hands out the pipeline, tutor, and analyzer built on them.
type Platform struct {
	stores   *badger.Stores
	indexes  *index.Manager
	provider ai.AIProvider
	logger   *slog.Logger
}

// PlatformOption configures a Platform.
type PlatformOption func(*platformOptions)

type platformOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) PlatformOption {
	return func(o *platformOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider substitutes a pre-built AI provider, bypassing the
// configured one. Intended for tests and embedders other than the
// default OpenAI-compatible services.
func WithProvider(provider ai.AIProvider) PlatformOption {
	return func(o *platformOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps all data in memory instead of on disk.
// The filePath argument is ignored when set.
func WithInMemoryStorage() PlatformOption {
	return func(o *platformOptions) {
		o.inMemory = true
	}
}

// NewPlatform opens the storage at filePath and wires up the platform
// components on top of it.
func NewPlatform(filePath string, opts ...PlatformOption) (*Platform, error) {
	options := &platformOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	stores, err := badger.OpenStores(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	indexes, err := index.NewManager(stores.Vectors)
	if err != nil {
		stores.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			stores.Close()
			return nil, err
		}
	}

	return &Platform{
		stores:   stores,
		indexes:  indexes,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and the storage, in that order.
func (p *Platform) Close() error {
	if err := p.provider.Close(); err != nil {
		p.logger.Error("error closing AI provider", "err", err)
	}

	if err := p.stores.Close(); err != nil {
		p.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// Stores returns the repository bundle.
func (p *Platform) Stores() *badger.Stores {
	return p.stores
}

// IndexManager returns the vector index manager.
func (p *Platform) IndexManager() *index.Manager {
	return p.indexes
}

// Provider returns the AI provider.
func (p *Platform) Provider() ai.AIProvider {
	return p.provider
}

// NewIngestionPipeline builds a document ingestion pipeline over the
// platform's storage and index.
func (p *Platform) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	extractor, err := extract.NewDocumentExtractor()
	if err != nil {
		return nil, err
	}
	return ingestion.NewPipeline(p.stores.Materials, p.stores.Chunks, p.indexes, extractor, p.provider, opts...)
}

// NewTutor builds a question-answering tutor over the indexed materials.
func (p *Platform) NewTutor(opts ...tutor.Option) (*tutor.Tutor, error) {
	return tutor.NewTutor(p.stores.Materials, p.indexes, p.provider, opts...)
}

// NewAnalyzer builds a quiz scoring and analysis engine.
func (p *Platform) NewAnalyzer(opts ...assessment.Option) (*assessment.Analyzer, error) {
	return assessment.NewAnalyzer(p.stores.Quizzes, p.stores.Attempts, p.stores.Analyses, p.stores.Paths, p.provider, opts...)
}

// NewStudyLibrary builds a study content generator over the content store.
func (p *Platform) NewStudyLibrary(opts ...study.Option) (*study.Library, error) {
	return study.NewLibrary(p.stores.Contents, p.provider.Generator(), opts...)
}

// NewReindexer builds a maintenance reindexer that re-embeds stored
// chunks, reporting progress to the given writer.
func (p *Platform) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(p.stores.Materials, p.stores.Chunks, p.indexes, p.provider.Embedder(), config, progress)
}
