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

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/ai/mock"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
	badgerstore "github.com/learnmate/learnmate/storage/badger"
)

type analyzerFixture struct {
	analyzer *Analyzer
	stores   *badgerstore.Stores
	provider *mock.MockProvider
}

func newAnalyzerFixture(t *testing.T) *analyzerFixture {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	provider := mock.NewMockProvider().(*mock.MockProvider)

	analyzer, err := NewAnalyzer(stores.Quizzes, stores.Attempts, stores.Analyses, stores.Paths, provider)
	require.NoError(t, err)

	return &analyzerFixture{analyzer: analyzer, stores: stores, provider: provider}
}

// addQuiz stores a quiz whose answer key is the given correct options.
func (f *analyzerFixture) addQuiz(t *testing.T, subject, topic string, key ...int) *core.Quiz {
	t.Helper()

	questions := make([]core.QuizQuestion, len(key))
	for i, correct := range key {
		questions[i] = core.QuizQuestion{
			Prompt:        "question",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: correct,
			Explanation:   "because",
		}
	}

	quiz, err := f.stores.Quizzes.AddQuiz(context.Background(), &core.Quiz{
		Title:     subject + " quiz",
		Subject:   subject,
		Topic:     topic,
		Questions: questions,
	})
	require.NoError(t, err)
	return quiz
}

func TestSubmitAttemptStoresScoreAndAnalysis(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	attempt, analysis, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 0, 1: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.TotalMarks)
	assert.InDelta(t, 50.0, attempt.Percentage, 0.001)

	assert.Equal(t, attempt.Id, analysis.AttemptId)
	assert.Equal(t, core.AnalysisSourceModel, analysis.Source)
	assert.NotEmpty(t, analysis.Insights)
	assert.Equal(t, core.TrendStable, analysis.Trend)

	stored, err := f.stores.Analyses.GetAnalysisByAttempt(ctx, attempt.Id)
	require.NoError(t, err)
	assert.Equal(t, analysis.Insights, stored.Insights)
}

func TestAnalysisFallsBackWhenModelFails(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	f.provider.GetMockInsightGenerator().GenerateInsightsFunc =
		func(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
			return nil, errors.New("model unreachable")
		}

	attempt, analysis, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 3, 1: 3})
	require.NoError(t, err)

	assert.Equal(t, core.AnalysisSourceFallback, analysis.Source)
	assert.NotEmpty(t, analysis.Insights)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.Contains(t, analysis.ConceptGaps, "Fractions")
	assert.Zero(t, attempt.Score)
}

func TestAnalysisFallsBackOnEmptyReport(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	f.provider.GetMockInsightGenerator().GenerateInsightsFunc =
		func(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
			return &ai.InsightReport{}, nil
		}

	_, analysis, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)
	assert.Equal(t, core.AnalysisSourceFallback, analysis.Source)
	assert.NotEmpty(t, analysis.Insights)
}

func TestAnalyzeOverwritesPriorAnalysis(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	attempt, _, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)

	f.provider.GetMockInsightGenerator().GenerateInsightsFunc =
		func(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
			return &ai.InsightReport{Insights: []string{"second pass"}}, nil
		}

	reanalysis, err := f.analyzer.Analyze(ctx, attempt.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"second pass"}, reanalysis.Insights)

	stored, err := f.stores.Analyses.GetAnalysisByAttempt(ctx, attempt.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"second pass"}, stored.Insights)
}

func TestTrendReflectsAttemptHistory(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	// 0%, then 50%, then 100%: a monotonic rise.
	submissions := []map[int]int{
		{0: 3, 1: 3},
		{0: 0, 1: 3},
		{0: 0, 1: 1},
	}

	var last *core.QuizAnalysis
	for _, answers := range submissions {
		var err error
		_, last, err = f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, answers)
		require.NoError(t, err)
	}

	assert.Equal(t, core.TrendImproving, last.Trend)
}

func TestPathLevelFollowsRollingAverage(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	cases := []struct {
		learner core.ID
		answers map[int]int
		level   string
	}{
		{101, map[int]int{0: 3, 1: 3}, "beginner"},     // 0%
		{102, map[int]int{0: 0, 1: 3}, "intermediate"}, // 50%
		{103, map[int]int{0: 0, 1: 1}, "advanced"},     // 100%
	}

	for _, tc := range cases {
		_, _, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, tc.learner, tc.answers)
		require.NoError(t, err)

		path, err := f.analyzer.GetPath(ctx, tc.learner)
		require.NoError(t, err)
		assert.Equal(t, tc.level, path.Level, "learner %d", tc.learner)
	}
}

func TestPathWeakAndStrongAreas(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	math := f.addQuiz(t, "Math", "Fractions", 0, 1)
	science := f.addQuiz(t, "Science", "Cells", 0, 1)

	// Fails math, aces science.
	_, _, err := f.analyzer.SubmitAttempt(ctx, math.Id, 7, map[int]int{0: 3, 1: 3})
	require.NoError(t, err)
	_, _, err = f.analyzer.SubmitAttempt(ctx, science.Id, 7, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)

	path, err := f.analyzer.GetPath(ctx, 7)
	require.NoError(t, err)
	assert.Contains(t, path.WeakAreas, "Math")
	assert.Contains(t, path.StrongAreas, "Science")
	assert.NotContains(t, path.WeakAreas, "Science")
}

func TestMarkTopicCompleted(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	quiz := f.addQuiz(t, "Math", "Fractions", 0, 1)

	f.provider.GetMockInsightGenerator().GenerateInsightsFunc =
		func(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
			return nil, errors.New("model unreachable")
		}

	// A failing attempt recommends the missed topic.
	_, _, err := f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 3, 1: 3})
	require.NoError(t, err)

	path, err := f.analyzer.GetPath(ctx, 7)
	require.NoError(t, err)
	require.Contains(t, path.RecommendedTopics, "Fractions")

	// Completion is case-insensitive and moves the topic over.
	path, err = f.analyzer.MarkTopicCompleted(ctx, 7, "fractions")
	require.NoError(t, err)
	assert.NotContains(t, path.RecommendedTopics, "Fractions")
	assert.Contains(t, path.CompletedTopics, "fractions")

	// A completed topic stays off the recommendations on the next refresh.
	_, _, err = f.analyzer.SubmitAttempt(ctx, quiz.Id, 7, map[int]int{0: 3, 1: 3})
	require.NoError(t, err)
	path, err = f.analyzer.GetPath(ctx, 7)
	require.NoError(t, err)
	assert.NotContains(t, path.RecommendedTopics, "Fractions")
}

func TestMarkTopicCompletedValidation(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()

	_, err := f.analyzer.MarkTopicCompleted(ctx, 7, "  ")
	assert.ErrorIs(t, err, ErrEmptyTopic)

	_, err = f.analyzer.MarkTopicCompleted(ctx, 999, "Fractions")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
