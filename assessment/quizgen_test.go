package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/learnmate/ai"
)

func TestGenerateQuizPersistsModelQuestions(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()

	f.provider.GetMockQuizGenerator().GenerateQuizFunc =
		func(ctx context.Context, req ai.QuizRequest) ([]ai.GeneratedQuestion, error) {
			assert.Equal(t, "Math", req.Subject)
			return []ai.GeneratedQuestion{
				{
					Prompt:        "What is 1/2 + 1/4?",
					Options:       []string{"3/4", "2/6", "1/8", "2/4"},
					CorrectOption: 0,
					Explanation:   "Convert to a common denominator first.",
				},
			}, nil
		}

	quiz, err := f.analyzer.GenerateQuiz(ctx, ai.QuizRequest{
		Subject: "Math", Topic: "Fractions", NumQuestions: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Math: Fractions", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "What is 1/2 + 1/4?", quiz.Questions[0].Prompt)

	stored, err := f.stores.Quizzes.GetQuiz(ctx, quiz.Id)
	require.NoError(t, err)
	assert.Equal(t, quiz.Questions, stored.Questions)
}

func TestGenerateQuizFallsBackOnModelFailure(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()

	f.provider.GetMockQuizGenerator().GenerateQuizFunc =
		func(ctx context.Context, req ai.QuizRequest) ([]ai.GeneratedQuestion, error) {
			return nil, errors.New("model unreachable")
		}

	quiz, err := f.analyzer.GenerateQuiz(ctx, ai.QuizRequest{Topic: "Fractions", NumQuestions: 5})
	require.NoError(t, err)

	assert.Equal(t, "Fractions", quiz.Title)
	assert.NotEmpty(t, quiz.Questions)
	for _, q := range quiz.Questions {
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, len(q.Options), 2)
		assert.Less(t, q.CorrectOption, len(q.Options))
	}
}

func TestGenerateQuizRequiresSubjectOrTopic(t *testing.T) {
	f := newAnalyzerFixture(t)

	_, err := f.analyzer.GenerateQuiz(context.Background(), ai.QuizRequest{Subject: "  "})
	assert.ErrorIs(t, err, ErrEmptySubject)
	assert.Zero(t, f.provider.GetMockQuizGenerator().CallCount())
}
