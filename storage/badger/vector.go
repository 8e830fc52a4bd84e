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
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// VectorStore implements storage.VectorStore for BadgerDB. Records live
// under per-collection key prefixes; a single sequence assigns insertion
// order across all collections.
type VectorStore struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.VectorStore = (*VectorStore)(nil)

// NewVectorStore creates a new VectorStore.
func NewVectorStore(backend *Backend) (storage.VectorStore, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}

	seq, err := backend.GetSequence(vectorSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector sequence: %w", err)
	}

	return &VectorStore{backend: backend, seq: seq}, nil
}

// Close releases the insertion sequence.
func (s *VectorStore) Close() error {
	if s.seq != nil {
		return s.seq.Release()
	}
	return nil
}

// EnsureCollection registers a collection key. Idempotent.
func (s *VectorStore) EnsureCollection(ctx context.Context, key string) error {
	if key == "" || strings.Contains(key, ":") {
		return storage.ErrInvalidQuery
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCollectionKey(key), []byte{1}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Collections lists all registered collection keys.
func (s *VectorStore) Collections(ctx context.Context) ([]string, error) {
	var results []string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(collectionPrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			results = append(results, string(key[len(prefix):]))
		}
		return nil
	}, false)
	return results, err
}

// DropCollection removes a collection and all its records.
func (s *VectorStore) DropCollection(ctx context.Context, key string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeCollectionKey(key)); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrUnknownCollection
			}
			return err
		}

		startKey := makePartialVectorRecordKey(key)
		var recordKeys [][]byte

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			k := iter.Item().Key()
			if len(k) < len(startKey) || slices.Compare(k[:len(startKey)], startKey) != 0 {
				break
			}
			recordKeys = append(recordKeys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, k := range recordKeys {
			if err := tx.Delete(k); err != nil {
				return err
			}
		}
		if err := tx.Delete(makeCollectionKey(key)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// PutRecord stores a record in a collection. Overwriting an existing
// record keeps its original Seq.
func (s *VectorStore) PutRecord(ctx context.Context, key string, record *core.VectorRecord) error {
	if record == nil || record.Id == 0 || len(record.Vector) == 0 {
		return storage.ErrInvalidQuery
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeCollectionKey(key)); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrUnknownCollection
			}
			return err
		}

		recordKey := makeVectorRecordKey(key, record.Id)
		if item, err := tx.Get(recordKey); err == nil {
			var existing *core.VectorRecord
			if err := item.Value(func(val []byte) error {
				var unmarshalErr error
				existing, unmarshalErr = storage.UnmarshalVectorRecord(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			record.Seq = existing.Seq
		} else if err == badger.ErrKeyNotFound {
			seq, err := s.seq.Next()
			if err != nil {
				return err
			}
			record.Seq = seq
		} else {
			return err
		}

		if err := tx.Set(recordKey, storage.MarshalVectorRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ScanRecords visits every record of a collection.
func (s *VectorStore) ScanRecords(ctx context.Context, key string, fn func(*core.VectorRecord) error) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeCollectionKey(key)); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrUnknownCollection
			}
			return err
		}

		startKey := makePartialVectorRecordKey(key)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			k := iter.Item().Key()
			if len(k) < len(startKey) || slices.Compare(k[:len(startKey)], startKey) != 0 {
				break
			}

			var record *core.VectorRecord
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				record, unmarshalErr = storage.UnmarshalVectorRecord(val)
				return unmarshalErr
			}); err != nil {
				return err
			}

			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// CountRecords returns the number of records in a collection.
func (s *VectorStore) CountRecords(ctx context.Context, key string) (int, error) {
	count := 0
	err := s.ScanRecords(ctx, key, func(*core.VectorRecord) error {
		count++
		return nil
	})
	return count, err
}
