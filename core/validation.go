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

import (
	"fmt"
	"time"
)

// ValidateMaterial validates a Material according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - CreatedAt must not be in the future
//
// NOT validated (populated by the ingestion pipeline):
//   - Processed, PageCount, ChunkCount
func ValidateMaterial(material *Material) error {
	if material == nil {
		return fmt.Errorf("%w: material is nil", ErrInvalidMaterial)
	}

	if material.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrEmptyTitle)
	}

	if !material.CreatedAt.IsZero() && !IsValidTimestamp(material.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - MaterialId must be set
//   - Ordinal must not be negative
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	if chunk.MaterialId == 0 {
		return fmt.Errorf("%w: material id required", ErrInvalidChunk)
	}

	if chunk.Ordinal < 0 {
		return fmt.Errorf("%w: negative ordinal %d", ErrInvalidChunk, chunk.Ordinal)
	}

	return nil
}

// ValidateQuiz validates a Quiz according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Must have at least one question
//   - Every question must have options and a correct-option index in range
func ValidateQuiz(quiz *Quiz) error {
	if quiz == nil {
		return fmt.Errorf("%w: quiz is nil", ErrInvalidQuiz)
	}

	if quiz.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuiz, ErrEmptyTitle)
	}

	if len(quiz.Questions) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuiz, ErrNoQuestions)
	}

	for i, question := range quiz.Questions {
		if question.Prompt == "" || len(question.Options) == 0 {
			return fmt.Errorf("%w: %w at ordinal %d", ErrInvalidQuiz, ErrBadQuestion, i)
		}
		if question.CorrectOption < 0 || question.CorrectOption >= len(question.Options) {
			return fmt.Errorf("%w: %w at ordinal %d", ErrInvalidQuiz, ErrBadQuestion, i)
		}
	}

	return nil
}

// ValidateAttempt validates a QuizAttempt according to domain rules.
//
// Out-of-range question ordinals inside Answers are NOT an error here;
// the scorer ignores them by contract.
func ValidateAttempt(attempt *QuizAttempt) error {
	if attempt == nil {
		return fmt.Errorf("%w: attempt is nil", ErrInvalidAttempt)
	}

	if attempt.QuizId == 0 {
		return fmt.Errorf("%w: quiz id required", ErrInvalidAttempt)
	}

	if attempt.LearnerId == 0 {
		return fmt.Errorf("%w: learner id required", ErrInvalidAttempt)
	}

	if !attempt.CompletedAt.IsZero() && !IsValidTimestamp(attempt.CompletedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidAttempt, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateStudyContent validates a StudyContent according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Body must not be empty
func ValidateStudyContent(content *StudyContent) error {
	if content == nil {
		return fmt.Errorf("%w: content is nil", ErrInvalidStudyContent)
	}

	if content.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStudyContent, ErrEmptyTitle)
	}

	if content.Body == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStudyContent, ErrEmptyText)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
