package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// AnalysisRepository implements storage.AnalysisRepository for BadgerDB.
// Analyses are keyed by attempt ID, so re-analyzing an attempt replaces
// the stored record.
type AnalysisRepository struct {
	backend *Backend
}

var _ storage.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(backend *Backend) (storage.AnalysisRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &AnalysisRepository{backend: backend}, nil
}

// Close is a no-op; analyses hold no sequences.
func (r *AnalysisRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *AnalysisRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutAnalysis stores an analysis, replacing any earlier one for the
// same attempt.
func (r *AnalysisRepository) PutAnalysis(ctx context.Context, analysis *core.QuizAnalysis) (*core.QuizAnalysis, error) {
	if analysis == nil || analysis.AttemptId == 0 {
		return nil, storage.ErrInvalidQuery
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if analysis.CreatedAt.IsZero() {
			analysis.CreatedAt = time.Now().UTC()
		}
		if err := tx.Set(makeAnalysisKey(analysis.AttemptId), storage.MarshalAnalysis(analysis)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return analysis, err
}

// GetAnalysisByAttempt retrieves the analysis stored for an attempt.
func (r *AnalysisRepository) GetAnalysisByAttempt(ctx context.Context, attemptID core.ID) (*core.QuizAnalysis, error) {
	var result *core.QuizAnalysis
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAnalysisKey(attemptID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalAnalysis(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}
