package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// AttemptRepository implements storage.AttemptRepository for BadgerDB.
type AttemptRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AttemptRepository = (*AttemptRepository)(nil)

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(backend *Backend) (storage.AttemptRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}

	idSeq, err := backend.GetSequence(attemptIDSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempt ID sequence: %w", err)
	}

	return &AttemptRepository{backend: backend, idSeq: idSeq}, nil
}

// Close releases the ID sequence.
func (r *AttemptRepository) Close() error {
	if r.idSeq != nil {
		return r.idSeq.Release()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *AttemptRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// nextID returns the next attempt ID, skipping zero.
func (r *AttemptRepository) nextID() (core.ID, error) {
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

// AddAttempt stores a new quiz attempt.
func (r *AttemptRepository) AddAttempt(ctx context.Context, attempt *core.QuizAttempt) (*core.QuizAttempt, error) {
	if err := core.ValidateAttempt(attempt); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if attempt.Id == 0 {
			id, err := r.nextID()
			if err != nil {
				return err
			}
			attempt.Id = id
		}
		if attempt.CompletedAt.IsZero() {
			attempt.CompletedAt = time.Now().UTC()
		}

		if err := tx.Set(makeAttemptKey(attempt.Id), storage.MarshalAttempt(attempt)); err != nil {
			return err
		}

		learnerKey := makeAttemptLearnerKey(attempt.LearnerId, attempt.CompletedAt, attempt.Id)
		if err := tx.Set(learnerKey, storage.MarshalID(attempt.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return attempt, err
}

// GetAttempt retrieves an attempt by ID.
func (r *AttemptRepository) GetAttempt(ctx context.Context, id core.ID) (*core.QuizAttempt, error) {
	var result *core.QuizAttempt
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readAttempt(tx, makeAttemptKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAttemptsByLearner retrieves all attempts of a learner ordered by
// completion time, oldest first. The learner index key embeds the
// big-endian timestamp so iteration order is chronological.
func (r *AttemptRepository) GetAttemptsByLearner(ctx context.Context, learnerID core.ID) ([]*core.QuizAttempt, error) {
	var results []*core.QuizAttempt
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialAttemptLearnerKey(learnerID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var attemptID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				attemptID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			attempt, err := readAttempt(tx, makeAttemptKey(attemptID))
			if err != nil {
				return err
			}
			if attempt != nil {
				results = append(results, attempt)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetRecentAttempts retrieves the most recent attempts of a learner,
// newest first, up to limit.
func (r *AttemptRepository) GetRecentAttempts(ctx context.Context, learnerID core.ID, limit int) ([]*core.QuizAttempt, error) {
	attempts, err := r.GetAttemptsByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	slices.Reverse(attempts)
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}

// readAttempt reads an attempt from the transaction.
func readAttempt(tx *badger.Txn, key []byte) (*core.QuizAttempt, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var attempt *core.QuizAttempt
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		attempt, unmarshalErr = storage.UnmarshalAttempt(val)
		return unmarshalErr
	})
	return attempt, err
}
