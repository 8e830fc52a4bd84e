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

// Package index maintains per-material vector collections and answers
// similarity queries over them.
//
// A Manager owns collection handles over a storage.VectorStore. Each
// collection is an isolated unit: adding to, querying, or dropping one
// collection never touches another. Queries score records by cosine
// similarity and return the best matches first; equal scores break by
// insertion order so results stay deterministic.
package index
