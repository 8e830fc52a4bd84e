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

// ContentRepository implements storage.ContentRepository for BadgerDB.
type ContentRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(backend *Backend) (storage.ContentRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}

	idSeq, err := backend.GetSequence(contentIDSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to create content ID sequence: %w", err)
	}

	return &ContentRepository{backend: backend, idSeq: idSeq}, nil
}

// Close releases the ID sequence.
func (r *ContentRepository) Close() error {
	if r.idSeq != nil {
		return r.idSeq.Release()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *ContentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// nextID returns the next content ID, skipping zero.
func (r *ContentRepository) nextID() (core.ID, error) {
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

// AddContent stores a new study content record.
func (r *ContentRepository) AddContent(ctx context.Context, content *core.StudyContent) (*core.StudyContent, error) {
	if err := core.ValidateStudyContent(content); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if content.Id == 0 {
			id, err := r.nextID()
			if err != nil {
				return err
			}
			content.Id = id
		}
		if content.CreatedAt.IsZero() {
			content.CreatedAt = time.Now().UTC()
		}

		if err := tx.Set(makeContentKey(content.Id), storage.MarshalStudyContent(content)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return content, err
}

// GetContent retrieves a study content record by ID.
func (r *ContentRepository) GetContent(ctx context.Context, id core.ID) (*core.StudyContent, error) {
	var result *core.StudyContent
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeContentKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalStudyContent(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListContent retrieves stored study content matching the filter.
func (r *ContentRepository) ListContent(ctx context.Context, filter storage.ContentFilter) ([]*core.StudyContent, error) {
	var results []*core.StudyContent
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(contentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var content *core.StudyContent
			err := iter.Item().Value(func(val []byte) error {
				var err error
				content, err = storage.UnmarshalStudyContent(val)
				return err
			})
			if err != nil {
				return err
			}
			if content == nil {
				continue
			}
			if filter.Subject != "" && content.Subject != filter.Subject {
				continue
			}
			if filter.GradeLevel != "" && content.GradeLevel != filter.GradeLevel {
				continue
			}
			results = append(results, content)
		}
		return nil
	}, false)
	return results, err
}
