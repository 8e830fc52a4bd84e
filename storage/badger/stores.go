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

import "github.com/learnmate/learnmate/storage"

// Stores bundles every repository backed by one BadgerDB instance.
type Stores struct {
	Materials storage.MaterialRepository
	Chunks    storage.ChunkRepository
	Quizzes   storage.QuizRepository
	Contents  storage.ContentRepository
	Attempts  storage.AttemptRepository
	Analyses  storage.AnalysisRepository
	Paths     storage.PathRepository
	Vectors   storage.VectorStore

	backend *Backend
}

// OpenStores opens a BadgerDB backend at filePath and constructs all
// repositories on top of it. An empty filePath with inMemory set opens
// an in-memory database.
func OpenStores(filePath string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	s := &Stores{backend: backend}

	closers := []func() error{backend.Close}
	fail := func(err error) (*Stores, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		return nil, err
	}

	if s.Materials, err = NewMaterialRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Materials.Close)

	if s.Chunks, err = NewChunkRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Chunks.Close)

	if s.Quizzes, err = NewQuizRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Quizzes.Close)

	if s.Contents, err = NewContentRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Contents.Close)

	if s.Attempts, err = NewAttemptRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Attempts.Close)

	if s.Analyses, err = NewAnalysisRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Analyses.Close)

	if s.Paths, err = NewPathRepository(backend); err != nil {
		return fail(err)
	}
	closers = append(closers, s.Paths.Close)

	if s.Vectors, err = NewVectorStore(backend); err != nil {
		return fail(err)
	}

	return s, nil
}

// Backend exposes the underlying backend for callers that need direct
// transaction control.
func (s *Stores) Backend() *Backend {
	return s.backend
}

// Close releases all repositories and the backend.
func (s *Stores) Close() error {
	var firstErr error
	for _, closeFn := range []func() error{
		s.Vectors.Close,
		s.Paths.Close,
		s.Analyses.Close,
		s.Attempts.Close,
		s.Contents.Close,
		s.Quizzes.Close,
		s.Chunks.Close,
		s.Materials.Close,
		s.backend.Close,
	} {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
