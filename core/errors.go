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

package core

import "errors"

// Domain errors
var (
	// ErrUnsupportedFormat indicates an uploaded document could not be parsed
	// as any supported format. Fatal to ingestion; surfaced to the caller.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoIndexableContent indicates a document produced zero non-blank pages.
	ErrNoIndexableContent = errors.New("no indexable content")

	// ErrInvalidMaterial indicates a Material failed validation.
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidQuiz indicates a Quiz failed validation.
	ErrInvalidQuiz = errors.New("invalid quiz")

	// ErrInvalidAttempt indicates a QuizAttempt failed validation.
	ErrInvalidAttempt = errors.New("invalid quiz attempt")

	// ErrInvalidStudyContent indicates a StudyContent failed validation.
	ErrInvalidStudyContent = errors.New("invalid study content")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrNoQuestions indicates a quiz has no questions.
	ErrNoQuestions = errors.New("quiz must have at least one question")

	// ErrBadQuestion indicates a question has no options or a correct-option
	// index outside its option list.
	ErrBadQuestion = errors.New("malformed quiz question")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrCorruptRecord indicates a stored record could not be decoded.
	// A length prefix that does not fit the remaining bytes is the usual cause.
	ErrCorruptRecord = errors.New("corrupt stored record")
)
