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

package index

import (
	"context"
	"log/slog"

	"github.com/learnmate/learnmate/storage"
)

// Manager creates and opens vector collections backed by a
// storage.VectorStore.
type Manager struct {
	store  storage.VectorStore
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewManager creates a collection manager over the given vector store.
func NewManager(store storage.VectorStore, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	m := &Manager{
		store:  store,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.logger = m.logger.With("component", "index")
	return m, nil
}

// CreateOrOpen returns a handle to the named collection, registering it
// if it does not exist yet. Idempotent.
func (m *Manager) CreateOrOpen(ctx context.Context, key string) (*Collection, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if err := m.store.EnsureCollection(ctx, key); err != nil {
		return nil, err
	}
	return &Collection{key: key, store: m.store, logger: m.logger}, nil
}

// List returns the keys of all known collections.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.Collections(ctx)
}

// Drop removes a collection and all its records. Dropping a collection
// that does not exist returns storage.ErrUnknownCollection.
func (m *Manager) Drop(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	err := m.store.DropCollection(ctx, key)
	if err == nil {
		m.logger.Info("dropped collection", "key", key)
	}
	return err
}
