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

package core

// Hand-maintained MUS serializers for the stored record types. Timestamps are
// encoded as Unix microseconds. Field order is part of the storage format; new
// fields go at the end.

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// IDMUS serializes core.ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

// timeMUS serializes time.Time as Unix microseconds.
type timeMUS struct{}

func (timeMUS) Marshal(t time.Time, bs []byte) (n int) {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeMUS) Unmarshal(bs []byte) (t time.Time, n int, err error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (timeMUS) Size(t time.Time) (size int) {
	return varint.Int64.Size(t.UnixMicro())
}

var timeSer = timeMUS{}

// stringsMUS serializes a []string with a varint length prefix.
type stringsMUS struct{}

func (stringsMUS) Marshal(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func (stringsMUS) Unmarshal(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	// Every element costs at least one length-prefix byte.
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrCorruptRecord
	}
	v = make([]string, length)
	for i := 0; i < length; i++ {
		var n1 int
		v[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
	}
	return v, n, nil
}

func (stringsMUS) Size(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

var stringsSer = stringsMUS{}

// floatsMUS serializes a []float32 with a varint length prefix.
type floatsMUS struct{}

func (floatsMUS) Marshal(v []float32, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	return n
}

func (floatsMUS) Unmarshal(bs []byte) (v []float32, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	// Each float32 occupies four raw bytes.
	if length < 0 || length > (len(bs)-n)/4 {
		return nil, n, ErrCorruptRecord
	}
	v = make([]float32, length)
	for i := 0; i < length; i++ {
		var n1 int
		v[i], n1, err = raw.Float32.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
	}
	return v, n, nil
}

func (floatsMUS) Size(v []float32) (size int) {
	return varint.Int.Size(len(v)) + len(v)*raw.Float32.Size(0)
}

var floatsSer = floatsMUS{}

// intMapMUS serializes a map[int]int with a varint length prefix.
// Iteration order is not part of the format; readers rebuild the map.
type intMapMUS struct{}

func (intMapMUS) Marshal(v map[int]int, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for k, val := range v {
		n += varint.Int.Marshal(k, bs[n:])
		n += varint.Int.Marshal(val, bs[n:])
	}
	return n
}

func (intMapMUS) Unmarshal(bs []byte) (v map[int]int, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	// A key and value take at least one varint byte each.
	if length < 0 || length > (len(bs)-n)/2 {
		return nil, n, ErrCorruptRecord
	}
	v = make(map[int]int, length)
	for i := 0; i < length; i++ {
		var k, val, n1 int
		k, n1, err = varint.Int.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		val, n1, err = varint.Int.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		v[k] = val
	}
	return v, n, nil
}

func (intMapMUS) Size(v map[int]int) (size int) {
	size = varint.Int.Size(len(v))
	for k, val := range v {
		size += varint.Int.Size(k) + varint.Int.Size(val)
	}
	return size
}

var intMapSer = intMapMUS{}

// MaterialMUS serializes core.Material values.
var MaterialMUS = materialMUS{}

type materialMUS struct{}

func (materialMUS) Marshal(m Material, bs []byte) (n int) {
	n = IDMUS.Marshal(m.Id, bs)
	n += IDMUS.Marshal(m.OwnerId, bs[n:])
	n += ord.String.Marshal(m.Title, bs[n:])
	n += ord.String.Marshal(m.Subject, bs[n:])
	n += ord.String.Marshal(m.GradeLevel, bs[n:])
	n += stringsSer.Marshal(m.Tags, bs[n:])
	n += ord.Bool.Marshal(m.Processed, bs[n:])
	n += varint.Int.Marshal(m.PageCount, bs[n:])
	n += varint.Int.Marshal(m.ChunkCount, bs[n:])
	n += timeSer.Marshal(m.CreatedAt, bs[n:])
	n += timeSer.Marshal(m.UpdatedAt, bs[n:])
	return n
}

func (materialMUS) Unmarshal(bs []byte) (m Material, n int, err error) {
	var n1 int
	if m.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return m, n1, err
	}
	n = n1
	if m.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.Subject, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.GradeLevel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.Tags, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.Processed, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.PageCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.ChunkCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.CreatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	if m.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return m, n + n1, err
	}
	n += n1
	return m, n, nil
}

func (materialMUS) Size(m Material) (size int) {
	size = IDMUS.Size(m.Id)
	size += IDMUS.Size(m.OwnerId)
	size += ord.String.Size(m.Title)
	size += ord.String.Size(m.Subject)
	size += ord.String.Size(m.GradeLevel)
	size += stringsSer.Size(m.Tags)
	size += ord.Bool.Size(m.Processed)
	size += varint.Int.Size(m.PageCount)
	size += varint.Int.Size(m.ChunkCount)
	size += timeSer.Size(m.CreatedAt)
	size += timeSer.Size(m.UpdatedAt)
	return size
}

// ChunkMUS serializes core.Chunk values.
var ChunkMUS = chunkMUS{}

type chunkMUS struct{}

func (chunkMUS) Marshal(c Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(c.Id, bs)
	n += IDMUS.Marshal(c.MaterialId, bs[n:])
	n += varint.Int.Marshal(c.Ordinal, bs[n:])
	n += ord.String.Marshal(c.Text, bs[n:])
	n += ord.String.Marshal(c.Collection, bs[n:])
	n += timeSer.Marshal(c.InsertedAt, bs[n:])
	return n
}

func (chunkMUS) Unmarshal(bs []byte) (c Chunk, n int, err error) {
	var n1 int
	if c.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return c, n1, err
	}
	n = n1
	if c.MaterialId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Ordinal, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Collection, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.InsertedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	return c, n, nil
}

func (chunkMUS) Size(c Chunk) (size int) {
	size = IDMUS.Size(c.Id)
	size += IDMUS.Size(c.MaterialId)
	size += varint.Int.Size(c.Ordinal)
	size += ord.String.Size(c.Text)
	size += ord.String.Size(c.Collection)
	size += timeSer.Size(c.InsertedAt)
	return size
}

// VectorRecordMUS serializes core.VectorRecord values.
var VectorRecordMUS = vectorRecordMUS{}

type vectorRecordMUS struct{}

func (vectorRecordMUS) Marshal(r VectorRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += IDMUS.Marshal(r.MaterialId, bs[n:])
	n += floatsSer.Marshal(r.Vector, bs[n:])
	n += ord.String.Marshal(r.Text, bs[n:])
	n += varint.Uint64.Marshal(r.Seq, bs[n:])
	return n
}

func (vectorRecordMUS) Unmarshal(bs []byte) (r VectorRecord, n int, err error) {
	var n1 int
	if r.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return r, n1, err
	}
	n = n1
	if r.MaterialId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Vector, n1, err = floatsSer.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Seq, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	return r, n, nil
}

func (vectorRecordMUS) Size(r VectorRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += IDMUS.Size(r.MaterialId)
	size += floatsSer.Size(r.Vector)
	size += ord.String.Size(r.Text)
	size += varint.Uint64.Size(r.Seq)
	return size
}

// questionMUS serializes a single QuizQuestion.
type questionMUS struct{}

func (questionMUS) Marshal(q QuizQuestion, bs []byte) (n int) {
	n = ord.String.Marshal(q.Prompt, bs)
	n += stringsSer.Marshal(q.Options, bs[n:])
	n += varint.Int.Marshal(q.CorrectOption, bs[n:])
	n += ord.String.Marshal(q.Explanation, bs[n:])
	return n
}

func (questionMUS) Unmarshal(bs []byte) (q QuizQuestion, n int, err error) {
	var n1 int
	if q.Prompt, n1, err = ord.String.Unmarshal(bs); err != nil {
		return q, n1, err
	}
	n = n1
	if q.Options, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.CorrectOption, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.Explanation, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	return q, n, nil
}

func (questionMUS) Size(q QuizQuestion) (size int) {
	size = ord.String.Size(q.Prompt)
	size += stringsSer.Size(q.Options)
	size += varint.Int.Size(q.CorrectOption)
	size += ord.String.Size(q.Explanation)
	return size
}

var questionSer = questionMUS{}

// QuizMUS serializes core.Quiz values.
var QuizMUS = quizMUS{}

type quizMUS struct{}

func (quizMUS) Marshal(q Quiz, bs []byte) (n int) {
	n = IDMUS.Marshal(q.Id, bs)
	n += ord.String.Marshal(q.Title, bs[n:])
	n += ord.String.Marshal(q.Subject, bs[n:])
	n += ord.String.Marshal(q.GradeLevel, bs[n:])
	n += ord.String.Marshal(q.Topic, bs[n:])
	n += ord.String.Marshal(q.Difficulty, bs[n:])
	n += varint.Int.Marshal(len(q.Questions), bs[n:])
	for _, question := range q.Questions {
		n += questionSer.Marshal(question, bs[n:])
	}
	n += timeSer.Marshal(q.CreatedAt, bs[n:])
	return n
}

func (quizMUS) Unmarshal(bs []byte) (q Quiz, n int, err error) {
	var n1 int
	if q.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return q, n1, err
	}
	n = n1
	if q.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.Subject, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.GradeLevel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.Topic, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if q.Difficulty, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	var count int
	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	if count > 0 {
		// A question encodes to at least four bytes.
		if count > (len(bs)-n)/4 {
			return q, n, ErrCorruptRecord
		}
		q.Questions = make([]QuizQuestion, count)
		for i := 0; i < count; i++ {
			if q.Questions[i], n1, err = questionSer.Unmarshal(bs[n:]); err != nil {
				return q, n + n1, err
			}
			n += n1
		}
	}
	if q.CreatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return q, n + n1, err
	}
	n += n1
	return q, n, nil
}

func (quizMUS) Size(q Quiz) (size int) {
	size = IDMUS.Size(q.Id)
	size += ord.String.Size(q.Title)
	size += ord.String.Size(q.Subject)
	size += ord.String.Size(q.GradeLevel)
	size += ord.String.Size(q.Topic)
	size += ord.String.Size(q.Difficulty)
	size += varint.Int.Size(len(q.Questions))
	for _, question := range q.Questions {
		size += questionSer.Size(question)
	}
	size += timeSer.Size(q.CreatedAt)
	return size
}

// QuizAttemptMUS serializes core.QuizAttempt values.
var QuizAttemptMUS = quizAttemptMUS{}

type quizAttemptMUS struct{}

func (quizAttemptMUS) Marshal(a QuizAttempt, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += IDMUS.Marshal(a.QuizId, bs[n:])
	n += IDMUS.Marshal(a.LearnerId, bs[n:])
	n += intMapSer.Marshal(a.Answers, bs[n:])
	n += varint.Int.Marshal(a.Score, bs[n:])
	n += varint.Int.Marshal(a.TotalMarks, bs[n:])
	n += raw.Float64.Marshal(a.Percentage, bs[n:])
	n += timeSer.Marshal(a.CompletedAt, bs[n:])
	return n
}

func (quizAttemptMUS) Unmarshal(bs []byte) (a QuizAttempt, n int, err error) {
	var n1 int
	if a.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return a, n1, err
	}
	n = n1
	if a.QuizId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.LearnerId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Answers, n1, err = intMapSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Score, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.TotalMarks, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Percentage, n1, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.CompletedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	return a, n, nil
}

func (quizAttemptMUS) Size(a QuizAttempt) (size int) {
	size = IDMUS.Size(a.Id)
	size += IDMUS.Size(a.QuizId)
	size += IDMUS.Size(a.LearnerId)
	size += intMapSer.Size(a.Answers)
	size += varint.Int.Size(a.Score)
	size += varint.Int.Size(a.TotalMarks)
	size += raw.Float64.Size(a.Percentage)
	size += timeSer.Size(a.CompletedAt)
	return size
}

// QuizAnalysisMUS serializes core.QuizAnalysis values.
var QuizAnalysisMUS = quizAnalysisMUS{}

type quizAnalysisMUS struct{}

func (quizAnalysisMUS) Marshal(a QuizAnalysis, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += IDMUS.Marshal(a.AttemptId, bs[n:])
	n += IDMUS.Marshal(a.LearnerId, bs[n:])
	n += ord.String.Marshal(string(a.Trend), bs[n:])
	n += stringsSer.Marshal(a.Insights, bs[n:])
	n += stringsSer.Marshal(a.Recommendations, bs[n:])
	n += stringsSer.Marshal(a.ConceptGaps, bs[n:])
	n += varint.Int.Marshal(int(a.Source), bs[n:])
	n += timeSer.Marshal(a.CreatedAt, bs[n:])
	return n
}

func (quizAnalysisMUS) Unmarshal(bs []byte) (a QuizAnalysis, n int, err error) {
	var n1 int
	if a.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return a, n1, err
	}
	n = n1
	if a.AttemptId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.LearnerId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	var trend string
	if trend, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	a.Trend = TrendLabel(trend)
	n += n1
	if a.Insights, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Recommendations, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.ConceptGaps, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	var source int
	if source, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	a.Source = AnalysisSource(source)
	n += n1
	if a.CreatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	return a, n, nil
}

func (quizAnalysisMUS) Size(a QuizAnalysis) (size int) {
	size = IDMUS.Size(a.Id)
	size += IDMUS.Size(a.AttemptId)
	size += IDMUS.Size(a.LearnerId)
	size += ord.String.Size(string(a.Trend))
	size += stringsSer.Size(a.Insights)
	size += stringsSer.Size(a.Recommendations)
	size += stringsSer.Size(a.ConceptGaps)
	size += varint.Int.Size(int(a.Source))
	size += timeSer.Size(a.CreatedAt)
	return size
}

// StudyContentMUS serializes core.StudyContent values.
var StudyContentMUS = studyContentMUS{}

type studyContentMUS struct{}

func (studyContentMUS) Marshal(c StudyContent, bs []byte) (n int) {
	n = IDMUS.Marshal(c.Id, bs)
	n += IDMUS.Marshal(c.OwnerId, bs[n:])
	n += ord.String.Marshal(c.Title, bs[n:])
	n += ord.String.Marshal(c.Subject, bs[n:])
	n += ord.String.Marshal(c.GradeLevel, bs[n:])
	n += ord.String.Marshal(c.Topic, bs[n:])
	n += ord.String.Marshal(c.Body, bs[n:])
	n += ord.Bool.Marshal(c.AIGenerated, bs[n:])
	n += stringsSer.Marshal(c.Tags, bs[n:])
	n += timeSer.Marshal(c.CreatedAt, bs[n:])
	return n
}

func (studyContentMUS) Unmarshal(bs []byte) (c StudyContent, n int, err error) {
	var n1 int
	if c.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return c, n1, err
	}
	n = n1
	if c.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Subject, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.GradeLevel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Topic, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Body, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.AIGenerated, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.Tags, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	if c.CreatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return c, n + n1, err
	}
	n += n1
	return c, n, nil
}

func (studyContentMUS) Size(c StudyContent) (size int) {
	size = IDMUS.Size(c.Id)
	size += IDMUS.Size(c.OwnerId)
	size += ord.String.Size(c.Title)
	size += ord.String.Size(c.Subject)
	size += ord.String.Size(c.GradeLevel)
	size += ord.String.Size(c.Topic)
	size += ord.String.Size(c.Body)
	size += ord.Bool.Size(c.AIGenerated)
	size += stringsSer.Size(c.Tags)
	size += timeSer.Size(c.CreatedAt)
	return size
}

// LearningPathMUS serializes core.LearningPath values.
var LearningPathMUS = learningPathMUS{}

type learningPathMUS struct{}

func (learningPathMUS) Marshal(p LearningPath, bs []byte) (n int) {
	n = IDMUS.Marshal(p.LearnerId, bs)
	n += ord.String.Marshal(p.Level, bs[n:])
	n += stringsSer.Marshal(p.RecommendedTopics, bs[n:])
	n += stringsSer.Marshal(p.WeakAreas, bs[n:])
	n += stringsSer.Marshal(p.StrongAreas, bs[n:])
	n += stringsSer.Marshal(p.CompletedTopics, bs[n:])
	n += timeSer.Marshal(p.UpdatedAt, bs[n:])
	return n
}

func (learningPathMUS) Unmarshal(bs []byte) (p LearningPath, n int, err error) {
	var n1 int
	if p.LearnerId, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return p, n1, err
	}
	n = n1
	if p.Level, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	if p.RecommendedTopics, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	if p.WeakAreas, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	if p.StrongAreas, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	if p.CompletedTopics, n1, err = stringsSer.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	if p.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return p, n + n1, err
	}
	n += n1
	return p, n, nil
}

func (learningPathMUS) Size(p LearningPath) (size int) {
	size = IDMUS.Size(p.LearnerId)
	size += ord.String.Size(p.Level)
	size += stringsSer.Size(p.RecommendedTopics)
	size += stringsSer.Size(p.WeakAreas)
	size += stringsSer.Size(p.StrongAreas)
	size += stringsSer.Size(p.CompletedTopics)
	size += timeSer.Size(p.UpdatedAt)
	return size
}
