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

package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// ContentRequest describes the study content to generate.
type ContentRequest struct {
	// Title of the stored record. Defaults to the topic when empty.
	Title string

	// Topic the write-up covers. Required.
	Topic string

	// Subject the topic belongs to, e.g. "science".
	Subject string

	// GradeLevel of the intended audience, free-form.
	GradeLevel string

	// OwnerId is who requested the content.
	OwnerId core.ID

	// Tags to store alongside the record.
	Tags []string
}

// Library generates study write-ups and keeps them in the content store.
type Library struct {
	contents  storage.ContentRepository
	generator ai.Generator
	logger    *slog.Logger
}

// Option configures a Library.
type Option func(*Library) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger.With("component", "study")
		return nil
	}
}

// NewLibrary creates a study content library.
func NewLibrary(contents storage.ContentRepository, generator ai.Generator, opts ...Option) (*Library, error) {
	if contents == nil {
		return nil, ErrContentRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	l := &Library{
		contents:  contents,
		generator: generator,
		logger:    slog.Default().With("component", "study"),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// GenerateContent produces and persists a study write-up for the request.
// A model failure or blank completion falls back to a placeholder body;
// the stored record marks which one it got via AIGenerated.
func (l *Library) GenerateContent(ctx context.Context, req ContentRequest) (*core.StudyContent, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrEmptyTopic
	}

	body, err := l.generator.Complete(ctx, contentSystemPrompt(req), contentUserPrompt(req))
	generated := true
	if err != nil || strings.TrimSpace(body) == "" {
		l.logger.Warn("substituting placeholder study content",
			"topic", req.Topic, "subject", req.Subject, "err", err)
		body = placeholderBody(req)
		generated = false
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.Topic
	}

	content := &core.StudyContent{
		OwnerId:     req.OwnerId,
		Title:       title,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Topic:       req.Topic,
		Body:        body,
		AIGenerated: generated,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}
	return l.contents.AddContent(ctx, content)
}

// ListContent retrieves stored write-ups matching the filter.
func (l *Library) ListContent(ctx context.Context, filter storage.ContentFilter) ([]*core.StudyContent, error) {
	return l.contents.ListContent(ctx, filter)
}

// GetContent retrieves one stored write-up by ID.
func (l *Library) GetContent(ctx context.Context, id core.ID) (*core.StudyContent, error) {
	return l.contents.GetContent(ctx, id)
}

func contentSystemPrompt(req ContentRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an expert educator writing study content")
	if req.GradeLevel != "" {
		fmt.Fprintf(&sb, " for grade %s students", req.GradeLevel)
	}
	if req.Subject != "" {
		fmt.Fprintf(&sb, " in %s", req.Subject)
	}
	sb.WriteString(".")
	return sb.String()
}

func contentUserPrompt(req ContentRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a study overview of %q", req.Topic)
	if req.Subject != "" {
		fmt.Fprintf(&sb, " for students studying %s", req.Subject)
	}
	sb.WriteString(". Cover the key concepts, concrete examples, and learning objectives. ")
	sb.WriteString("Keep it engaging and age-appropriate.")
	return sb.String()
}

// placeholderBody is stored when the model yields nothing usable. It names
// the topic so the record is still identifiable in listings.
func placeholderBody(req ContentRequest) string {
	subject := req.Subject
	if subject == "" {
		subject = "this subject"
	}
	return fmt.Sprintf("Study content for %s: an overview of %s in %s. "+
		"Content generation was unavailable; regenerate this topic to fill it in.",
		req.Topic, req.Topic, subject)
}
