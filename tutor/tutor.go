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
	"strings"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/index"
	"github.com/learnmate/learnmate/storage"
)

// Answer sources.
const (
	// SourceMaterials marks an answer grounded in retrieved passages.
	SourceMaterials = "materials"

	// SourceNone marks the canned reply when nothing relevant was found.
	SourceNone = "none"
)

// answerPassages is the global passage budget for one question.
const answerPassages = 3

// Hints optionally narrow how an answer is phrased. Both fields may be
// empty; they steer the generation prompt, not the retrieval.
type Hints struct {
	Subject    string
	GradeLevel string
}

// Answer is the tutor's reply to a question.
type Answer struct {
	// Text is the reply shown to the learner.
	Text string

	// Source is SourceMaterials or SourceNone.
	Source string

	// Passages are the excerpts the answer was grounded in, best first.
	Passages []*core.Passage
}

// Tutor answers learner questions from their uploaded study materials.
type Tutor struct {
	retriever   *Retriever
	synthesizer *Synthesizer
	logger      *slog.Logger
}

// Option configures a Tutor.
type Option func(*Tutor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tutor) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewTutor creates a tutor over the given materials, indexes, and AI provider.
func NewTutor(
	materialRepository storage.MaterialRepository,
	indexManager *index.Manager,
	provider ai.AIProvider,
	opts ...Option,
) (*Tutor, error) {
	if materialRepository == nil {
		return nil, ErrMaterialRepositoryRequired
	}
	if indexManager == nil {
		return nil, ErrIndexManagerRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	t := &Tutor{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.logger = t.logger.With("component", "tutor")

	retriever, err := NewRetriever(materialRepository, indexManager, provider.Embedder(), t.logger)
	if err != nil {
		return nil, err
	}

	synthesizer, err := NewSynthesizer(provider.Generator(), t.logger)
	if err != nil {
		return nil, err
	}

	t.retriever = retriever
	t.synthesizer = synthesizer
	return t, nil
}

// Ask retrieves the passages most relevant to the question from the
// learner's materials and synthesizes an answer from them. When nothing
// relevant exists the answer carries the canned apology and SourceNone.
func (t *Tutor) Ask(ctx context.Context, learnerID core.ID, question string) (*Answer, error) {
	return t.AskWithHints(ctx, learnerID, question, Hints{})
}

// AskWithHints is Ask with optional subject and grade-level hints folded
// into the generation prompt.
func (t *Tutor) AskWithHints(ctx context.Context, learnerID core.ID, question string, hints Hints) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	passages, err := t.retriever.Retrieve(ctx, learnerID, question, answerPassages)
	if err != nil {
		return nil, err
	}

	text, err := t.synthesizer.Synthesize(ctx, question, hints, passages)
	if err != nil {
		return nil, err
	}

	source := SourceMaterials
	if len(passages) == 0 {
		source = SourceNone
	}

	t.logger.Debug("answered question",
		"learner", learnerID,
		"passages", len(passages),
		"source", source)
	return &Answer{
		Text:     text,
		Source:   source,
		Passages: passages,
	}, nil
}
