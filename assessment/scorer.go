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

package assessment

// ScoreResult is the outcome of scoring one quiz submission.
type ScoreResult struct {
	// Score is the number of correctly answered questions.
	Score int

	// TotalMarks is the number of questions in the key.
	TotalMarks int

	// Percentage is Score over TotalMarks as a percentage, 0 for an
	// empty key.
	Percentage float64
}

// Score grades a submission against an answer key. The key holds the
// correct option index per question ordinal; the submission maps
// question ordinals to selected option indexes. Ordinals outside the
// key are ignored. A selection that does not equal the key entry is
// simply incorrect, whether or not it indexes a real option. The result
// does not depend on map iteration order.
func Score(key []int, submission map[int]int) ScoreResult {
	result := ScoreResult{TotalMarks: len(key)}
	if len(key) == 0 {
		return result
	}

	for ordinal, selected := range submission {
		if ordinal < 0 || ordinal >= len(key) {
			continue
		}
		if selected == key[ordinal] {
			result.Score++
		}
	}

	result.Percentage = float64(result.Score) / float64(result.TotalMarks) * 100
	return result
}
