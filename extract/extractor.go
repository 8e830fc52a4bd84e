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

// Package extract turns uploaded material bytes into page texts ready
// for indexing.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dslipak/pdf"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/learnmate/learnmate/core"
)

// pdfMagic marks the start of a PDF file.
var pdfMagic = []byte("%PDF-")

// maxBlockRunes bounds a single page of plain text before the recursive
// splitter breaks it up.
const maxBlockRunes = 4000

// Extractor converts raw document bytes into ordered page texts.
// Implementations return one string per page; undecodable pages come
// back empty so the rest of the document survives.
type Extractor interface {
	Pages(ctx context.Context, data []byte) ([]string, error)
}

// DocumentExtractor sniffs the document format and extracts page texts.
// PDF files yield one string per PDF page. Plain UTF-8 text splits on
// form feeds, then paragraph breaks for oversized blocks. Anything else
// is core.ErrUnsupportedFormat.
type DocumentExtractor struct {
	logger   *slog.Logger
	splitter textsplitter.RecursiveCharacter
}

// Option configures a DocumentExtractor.
type Option func(*DocumentExtractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *DocumentExtractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewDocumentExtractor creates an extractor for PDF and plain text.
func NewDocumentExtractor(opts ...Option) (*DocumentExtractor, error) {
	e := &DocumentExtractor{
		logger: slog.Default(),
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(maxBlockRunes),
			textsplitter.WithChunkOverlap(0),
		),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.logger = e.logger.With("component", "extract")
	return e, nil
}

// Pages extracts ordered page texts from data.
func (e *DocumentExtractor) Pages(ctx context.Context, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, core.ErrUnsupportedFormat
	}

	if bytes.HasPrefix(data, pdfMagic) {
		return e.pdfPages(data)
	}
	if utf8.Valid(data) {
		return e.textPages(string(data))
	}
	return nil, core.ErrUnsupportedFormat
}

// pdfPages extracts one text per PDF page. A page whose content stream
// cannot be decoded yields an empty string rather than failing the
// whole document.
func (e *DocumentExtractor) pdfPages(data []byte) (pages []string, err error) {
	// The reader also panics on some truncated files.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", core.ErrUnsupportedFormat, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUnsupportedFormat, err)
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for num := 1; num <= total; num++ {
		text, err := e.pdfPageText(reader, num)
		if err != nil {
			e.logger.Warn("failed to decode page", "page", num, "error", err)
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// pdfPageText reads one page. The underlying reader panics on some
// malformed content streams, so those are recovered into errors.
func (e *DocumentExtractor) pdfPageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page decode panic: %v", r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// textPages splits plain text into pages. Form feeds are hard page
// breaks; any block still longer than maxBlockRunes splits further on
// paragraph boundaries.
func (e *DocumentExtractor) textPages(text string) ([]string, error) {
	var pages []string
	for _, block := range strings.Split(text, "\f") {
		if utf8.RuneCountInString(block) <= maxBlockRunes {
			pages = append(pages, block)
			continue
		}

		parts, err := e.splitter.SplitText(block)
		if err != nil {
			return nil, fmt.Errorf("failed to split text block: %w", err)
		}
		pages = append(pages, parts...)
	}
	return pages, nil
}
