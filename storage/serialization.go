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

package storage

import (
	"github.com/learnmate/learnmate/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalMaterial serializes a Material to bytes.
func MarshalMaterial(material *core.Material) []byte {
	buf := make([]byte, core.MaterialMUS.Size(*material))
	core.MaterialMUS.Marshal(*material, buf)
	return buf
}

// UnmarshalMaterial deserializes a Material from bytes.
func UnmarshalMaterial(data []byte) (*core.Material, error) {
	material, _, err := core.MaterialMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, core.ChunkMUS.Size(*chunk))
	core.ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := core.ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalVectorRecord serializes a VectorRecord to bytes.
func MarshalVectorRecord(record *core.VectorRecord) []byte {
	buf := make([]byte, core.VectorRecordMUS.Size(*record))
	core.VectorRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalVectorRecord deserializes a VectorRecord from bytes.
func UnmarshalVectorRecord(data []byte) (*core.VectorRecord, error) {
	record, _, err := core.VectorRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalQuiz serializes a Quiz to bytes.
func MarshalQuiz(quiz *core.Quiz) []byte {
	buf := make([]byte, core.QuizMUS.Size(*quiz))
	core.QuizMUS.Marshal(*quiz, buf)
	return buf
}

// UnmarshalQuiz deserializes a Quiz from bytes.
func UnmarshalQuiz(data []byte) (*core.Quiz, error) {
	quiz, _, err := core.QuizMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// MarshalAttempt serializes a QuizAttempt to bytes.
func MarshalAttempt(attempt *core.QuizAttempt) []byte {
	buf := make([]byte, core.QuizAttemptMUS.Size(*attempt))
	core.QuizAttemptMUS.Marshal(*attempt, buf)
	return buf
}

// UnmarshalAttempt deserializes a QuizAttempt from bytes.
func UnmarshalAttempt(data []byte) (*core.QuizAttempt, error) {
	attempt, _, err := core.QuizAttemptMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// MarshalAnalysis serializes a QuizAnalysis to bytes.
func MarshalAnalysis(analysis *core.QuizAnalysis) []byte {
	buf := make([]byte, core.QuizAnalysisMUS.Size(*analysis))
	core.QuizAnalysisMUS.Marshal(*analysis, buf)
	return buf
}

// UnmarshalAnalysis deserializes a QuizAnalysis from bytes.
func UnmarshalAnalysis(data []byte) (*core.QuizAnalysis, error) {
	analysis, _, err := core.QuizAnalysisMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// MarshalPath serializes a LearningPath to bytes.
func MarshalPath(path *core.LearningPath) []byte {
	buf := make([]byte, core.LearningPathMUS.Size(*path))
	core.LearningPathMUS.Marshal(*path, buf)
	return buf
}

// UnmarshalPath deserializes a LearningPath from bytes.
func UnmarshalPath(data []byte) (*core.LearningPath, error) {
	path, _, err := core.LearningPathMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// MarshalStudyContent serializes a StudyContent to bytes.
func MarshalStudyContent(content *core.StudyContent) []byte {
	buf := make([]byte, core.StudyContentMUS.Size(*content))
	core.StudyContentMUS.Marshal(*content, buf)
	return buf
}

// UnmarshalStudyContent deserializes a StudyContent from bytes.
func UnmarshalStudyContent(data []byte) (*core.StudyContent, error) {
	content, _, err := core.StudyContentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &content, nil
}
