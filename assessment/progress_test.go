package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/learnmate/core"
)

func TestProgressSummary(t *testing.T) {
	f := newAnalyzerFixture(t)
	ctx := context.Background()
	math := f.addQuiz(t, "Math", "Fractions", 0, 1)
	science := f.addQuiz(t, "Science", "Cells", 0, 1)

	// Math: 100% then 50%. Science: 100%.
	_, _, err := f.analyzer.SubmitAttempt(ctx, math.Id, 7, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)
	_, _, err = f.analyzer.SubmitAttempt(ctx, math.Id, 7, map[int]int{0: 0, 1: 3})
	require.NoError(t, err)
	_, _, err = f.analyzer.SubmitAttempt(ctx, science.Id, 7, map[int]int{0: 0, 1: 1})
	require.NoError(t, err)

	progress, err := f.analyzer.ProgressSummary(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 3, progress.Attempts)
	assert.InDelta(t, 83.3, progress.AveragePercentage, 0.001)

	bySubject := make(map[string]SubjectProgress, len(progress.Subjects))
	for _, s := range progress.Subjects {
		bySubject[s.Subject] = s
	}
	require.Len(t, bySubject, 2)
	assert.Equal(t, 2, bySubject["Math"].Attempts)
	assert.InDelta(t, 75.0, bySubject["Math"].AveragePercentage, 0.001)
	assert.Equal(t, 1, bySubject["Science"].Attempts)
	assert.InDelta(t, 100.0, bySubject["Science"].AveragePercentage, 0.001)
}

func TestProgressSummaryNoAttempts(t *testing.T) {
	f := newAnalyzerFixture(t)

	progress, err := f.analyzer.ProgressSummary(context.Background(), 42)
	require.NoError(t, err)

	assert.Zero(t, progress.Attempts)
	assert.Zero(t, progress.AveragePercentage)
	assert.Equal(t, core.TrendStable, progress.Trend)
	assert.Empty(t, progress.Subjects)
}
