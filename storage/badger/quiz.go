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

package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// QuizRepository implements storage.QuizRepository for BadgerDB.
type QuizRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QuizRepository = (*QuizRepository)(nil)

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(backend *Backend) (storage.QuizRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}

	idSeq, err := backend.GetSequence(quizIDSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz ID sequence: %w", err)
	}

	return &QuizRepository{backend: backend, idSeq: idSeq}, nil
}

// Close releases the ID sequence.
func (r *QuizRepository) Close() error {
	if r.idSeq != nil {
		return r.idSeq.Release()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *QuizRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// nextID returns the next quiz ID, skipping zero.
func (r *QuizRepository) nextID() (core.ID, error) {
	for {
		id, err := r.idSeq.Next()
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return core.ID(id), nil
		}
	}
}

// AddQuiz stores a new quiz.
func (r *QuizRepository) AddQuiz(ctx context.Context, quiz *core.Quiz) (*core.Quiz, error) {
	if err := core.ValidateQuiz(quiz); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if quiz.Id == 0 {
			id, err := r.nextID()
			if err != nil {
				return err
			}
			quiz.Id = id
		}
		if quiz.CreatedAt.IsZero() {
			quiz.CreatedAt = time.Now().UTC()
		}

		if err := tx.Set(makeQuizKey(quiz.Id), storage.MarshalQuiz(quiz)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return quiz, err
}

// GetQuiz retrieves a quiz by ID.
func (r *QuizRepository) GetQuiz(ctx context.Context, id core.ID) (*core.Quiz, error) {
	var result *core.Quiz
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeQuizKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalQuiz(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListQuizzes retrieves all stored quizzes.
func (r *QuizRepository) ListQuizzes(ctx context.Context) ([]*core.Quiz, error) {
	var results []*core.Quiz
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(quizPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var quiz *core.Quiz
			err := iter.Item().Value(func(val []byte) error {
				var err error
				quiz, err = storage.UnmarshalQuiz(val)
				return err
			})
			if err != nil {
				return err
			}
			if quiz != nil {
				results = append(results, quiz)
			}
		}
		return nil
	}, false)
	return results, err
}
