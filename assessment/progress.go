package assessment

import (
	"context"
	"math"

	"github.com/learnmate/learnmate/core"
)

// SubjectProgress summarizes a learner's attempts within one subject.
type SubjectProgress struct {
	Subject           string
	Attempts          int
	AveragePercentage float64
}

// Progress is a learner's overall attempt summary.
type Progress struct {
	LearnerId         core.ID
	Attempts          int
	AveragePercentage float64 // Rounded to one decimal place
	Trend             core.TrendLabel
	Subjects          []SubjectProgress
}

// ProgressSummary aggregates all of a learner's attempts into counts and
// averages, overall and per subject. A learner with no attempts gets a
// zero summary, not an error.
func (a *Analyzer) ProgressSummary(ctx context.Context, learnerID core.ID) (*Progress, error) {
	attempts, err := a.attempts.GetAttemptsByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	progress := &Progress{
		LearnerId: learnerID,
		Attempts:  len(attempts),
		Trend:     core.TrendStable,
	}
	if len(attempts) == 0 {
		return progress, nil
	}

	history := make([]float64, 0, len(attempts))
	for _, attempt := range attempts {
		history = append(history, attempt.Percentage)
	}
	progress.AveragePercentage = roundPercentage(rollingAverage(attempts))
	progress.Trend = ClassifyTrend(history)

	subjects, err := a.subjectAverages(ctx, attempts)
	if err != nil {
		return nil, err
	}
	progress.Subjects = make([]SubjectProgress, 0, len(subjects))
	for _, s := range subjects {
		progress.Subjects = append(progress.Subjects, SubjectProgress{
			Subject:           s.subject,
			Attempts:          s.attempts,
			AveragePercentage: roundPercentage(s.average),
		})
	}
	return progress, nil
}

// roundPercentage rounds to one decimal place for presentation.
func roundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}
