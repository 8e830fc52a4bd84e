package core

import (
	"testing"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("42:0")
		b := IDFromContent("42:0")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := IDFromContent("42:0")
		b := IDFromContent("42:1")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.NotZero(t, IDFromContent(""))
	})
}

func TestQuizAnswerKey(t *testing.T) {
	quiz := &Quiz{
		Questions: []QuizQuestion{
			{Prompt: "q1", Options: []string{"a", "b"}, CorrectOption: 1},
			{Prompt: "q2", Options: []string{"a", "b", "c"}, CorrectOption: 0},
			{Prompt: "q3", Options: []string{"a", "b", "c"}, CorrectOption: 2},
		},
	}

	assert.Equal(t, []int{1, 0, 2}, quiz.AnswerKey())
}

func TestSerializerRoundTrips(t *testing.T) {
	t.Run("material", func(t *testing.T) {
		m := Material{
			Id:         IDFromContent("material"),
			OwnerId:    7,
			Title:      "Photosynthesis Notes",
			Subject:    "Biology",
			GradeLevel: "Grade 10",
			Tags:       []string{"plants", "energy"},
			Processed:  true,
			PageCount:  3,
			ChunkCount: 2,
			CreatedAt:  time.UnixMicro(1700000000000000).UTC(),
			UpdatedAt:  time.UnixMicro(1700000500000000).UTC(),
		}
		buf := make([]byte, MaterialMUS.Size(m))
		n := MaterialMUS.Marshal(m, buf)
		require.Equal(t, len(buf), n)

		out, read, err := MaterialMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.Equal(t, n, read)
		assert.Equal(t, m, out)
	})

	t.Run("attempt with sparse answers", func(t *testing.T) {
		a := QuizAttempt{
			Id:         1,
			QuizId:     2,
			LearnerId:  3,
			Answers:    map[int]int{0: 1, 2: 9},
			Score:      1,
			TotalMarks: 3,
			Percentage: 33.3,
		}
		buf := make([]byte, QuizAttemptMUS.Size(a))
		QuizAttemptMUS.Marshal(a, buf)

		out, _, err := QuizAttemptMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.Equal(t, a.Answers, out.Answers)
		assert.Equal(t, a.Percentage, out.Percentage)
	})

	t.Run("study content", func(t *testing.T) {
		c := StudyContent{
			Id:          3,
			OwnerId:     8,
			Title:       "Fractions Overview",
			Subject:     "math",
			GradeLevel:  "6",
			Topic:       "fractions",
			Body:        "A fraction names part of a whole.",
			AIGenerated: true,
			Tags:        []string{"numbers"},
			CreatedAt:   time.UnixMicro(1700000000000000).UTC(),
		}
		buf := make([]byte, StudyContentMUS.Size(c))
		StudyContentMUS.Marshal(c, buf)

		out, _, err := StudyContentMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.Equal(t, c, out)
	})

	t.Run("vector record preserves seq", func(t *testing.T) {
		r := VectorRecord{
			Id:         9,
			MaterialId: 4,
			Vector:     []float32{0.25, -0.5, 1.0},
			Text:       "chlorophyll absorbs light",
			Seq:        17,
		}
		buf := make([]byte, VectorRecordMUS.Size(r))
		VectorRecordMUS.Marshal(r, buf)

		out, _, err := VectorRecordMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.Equal(t, r, out)
	})
}

func TestUnmarshalRejectsOversizedLengthPrefix(t *testing.T) {
	// A length prefix claiming more elements than the buffer could hold
	// must come back as a decode error, not an allocation.
	t.Run("strings", func(t *testing.T) {
		buf := make([]byte, 16)
		varint.Int.Marshal(1<<30, buf)
		_, _, err := stringsSer.Unmarshal(buf)
		assert.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("floats", func(t *testing.T) {
		buf := make([]byte, 16)
		varint.Int.Marshal(1<<30, buf)
		_, _, err := floatsSer.Unmarshal(buf)
		assert.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("int map", func(t *testing.T) {
		buf := make([]byte, 16)
		varint.Int.Marshal(1<<30, buf)
		_, _, err := intMapSer.Unmarshal(buf)
		assert.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("quiz questions", func(t *testing.T) {
		q := Quiz{Id: 1, Title: "Fractions", Subject: "Math"}
		buf := make([]byte, QuizMUS.Size(q)+16)
		n := IDMUS.Marshal(q.Id, buf)
		n += ord.String.Marshal(q.Title, buf[n:])
		n += ord.String.Marshal(q.Subject, buf[n:])
		n += ord.String.Marshal("", buf[n:])
		n += ord.String.Marshal("", buf[n:])
		n += ord.String.Marshal("", buf[n:])
		varint.Int.Marshal(1<<30, buf[n:])

		_, _, err := QuizMUS.Unmarshal(buf)
		assert.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("truncated strings payload", func(t *testing.T) {
		full := []string{"plants", "energy", "cells"}
		buf := make([]byte, stringsSer.Size(full))
		stringsSer.Marshal(full, buf)

		_, _, err := stringsSer.Unmarshal(buf[:2])
		assert.ErrorIs(t, err, ErrCorruptRecord)
	})
}
