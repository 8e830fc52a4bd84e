package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// PathRepository implements storage.PathRepository for BadgerDB. Each
// learner has at most one learning path, keyed by learner ID.
type PathRepository struct {
	backend *Backend
}

var _ storage.PathRepository = (*PathRepository)(nil)

// NewPathRepository creates a new PathRepository.
func NewPathRepository(backend *Backend) (storage.PathRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &PathRepository{backend: backend}, nil
}

// Close is a no-op; paths hold no sequences.
func (r *PathRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *PathRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertPath stores a learning path, replacing the learner's existing one.
func (r *PathRepository) UpsertPath(ctx context.Context, path *core.LearningPath) (*core.LearningPath, error) {
	if path == nil || path.LearnerId == 0 {
		return nil, storage.ErrInvalidQuery
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		path.UpdatedAt = time.Now().UTC()
		if err := tx.Set(makePathKey(path.LearnerId), storage.MarshalPath(path)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return path, err
}

// GetPath retrieves a learner's learning path.
func (r *PathRepository) GetPath(ctx context.Context, learnerID core.ID) (*core.LearningPath, error) {
	var result *core.LearningPath
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePathKey(learnerID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalPath(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}
