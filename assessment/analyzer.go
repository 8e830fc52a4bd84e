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
	"fmt"
	"log/slog"
	"time"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// Analyzer scores quiz attempts and derives trend-aware analyses and
// learning-path updates from them.
type Analyzer struct {
	quizzes  storage.QuizRepository
	attempts storage.AttemptRepository
	analyses storage.AnalysisRepository
	paths    storage.PathRepository
	insights ai.InsightGenerator
	quizGen  ai.QuizGenerator
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(
	quizRepository storage.QuizRepository,
	attemptRepository storage.AttemptRepository,
	analysisRepository storage.AnalysisRepository,
	pathRepository storage.PathRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Analyzer, error) {
	if quizRepository == nil {
		return nil, ErrQuizRepositoryRequired
	}
	if attemptRepository == nil {
		return nil, ErrAttemptRepositoryRequired
	}
	if analysisRepository == nil {
		return nil, ErrAnalysisRepositoryRequired
	}
	if pathRepository == nil {
		return nil, ErrPathRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	a := &Analyzer{
		quizzes:  quizRepository,
		attempts: attemptRepository,
		analyses: analysisRepository,
		paths:    pathRepository,
		insights: provider.InsightGenerator(),
		quizGen:  provider.QuizGenerator(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	a.logger = a.logger.With("component", "assessment")
	return a, nil
}

// SubmitAttempt scores a submission, persists the attempt, and produces
// its analysis.
func (a *Analyzer) SubmitAttempt(ctx context.Context, quizID, learnerID core.ID, answers map[int]int) (*core.QuizAttempt, *core.QuizAnalysis, error) {
	quiz, err := a.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}

	result := Score(quiz.AnswerKey(), answers)
	attempt := &core.QuizAttempt{
		QuizId:      quizID,
		LearnerId:   learnerID,
		Answers:     answers,
		Score:       result.Score,
		TotalMarks:  result.TotalMarks,
		Percentage:  result.Percentage,
		CompletedAt: time.Now().UTC(),
	}

	if _, err := a.attempts.AddAttempt(ctx, attempt); err != nil {
		return nil, nil, err
	}

	analysis, err := a.analyzeAttempt(ctx, quiz, attempt)
	if err != nil {
		return nil, nil, err
	}
	return attempt, analysis, nil
}

// Analyze recomputes the analysis of an existing attempt, overwriting
// any earlier analysis for it.
func (a *Analyzer) Analyze(ctx context.Context, attemptID core.ID) (*core.QuizAnalysis, error) {
	attempt, err := a.attempts.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	quiz, err := a.quizzes.GetQuiz(ctx, attempt.QuizId)
	if err != nil {
		return nil, err
	}

	return a.analyzeAttempt(ctx, quiz, attempt)
}

// analyzeAttempt derives the analysis of one attempt, persists it, and
// refreshes the learner's path. The generative branch is best-effort;
// parse or transport failures substitute the deterministic fallback so
// an analysis always exists.
func (a *Analyzer) analyzeAttempt(ctx context.Context, quiz *core.Quiz, attempt *core.QuizAttempt) (*core.QuizAnalysis, error) {
	history, err := a.historyThrough(ctx, attempt)
	if err != nil {
		return nil, err
	}
	trend := ClassifyTrend(history)

	wrong := wrongAnswers(quiz, attempt)
	report, err := a.insights.GenerateInsights(ctx, ai.InsightRequest{
		Subject:           quiz.Subject,
		GradeLevel:        quiz.GradeLevel,
		LatestPercentage:  attempt.Percentage,
		RecentPercentages: history[:len(history)-1],
		MissedPrompts:     missedPrompts(wrong),
	})

	source := core.AnalysisSourceModel
	if err != nil || report == nil || len(report.Insights) == 0 {
		a.logger.Warn("substituting fallback analysis", "attempt", attempt.Id, "err", err)
		report = fallbackReport(quiz, attempt, trend, wrong)
		source = core.AnalysisSourceFallback
	}

	analysis := &core.QuizAnalysis{
		Id:              attempt.Id,
		AttemptId:       attempt.Id,
		LearnerId:       attempt.LearnerId,
		Trend:           trend,
		Insights:        report.Insights,
		Recommendations: report.Recommendations,
		ConceptGaps:     report.ConceptGaps,
		Source:          source,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := a.analyses.PutAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	if err := a.refreshPath(ctx, attempt.LearnerId, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// historyThrough returns the learner's percentages oldest first, ending
// at the given attempt. Attempts completed after it are excluded so
// re-analysis of an old attempt sees the history as it was.
func (a *Analyzer) historyThrough(ctx context.Context, attempt *core.QuizAttempt) ([]float64, error) {
	all, err := a.attempts.GetAttemptsByLearner(ctx, attempt.LearnerId)
	if err != nil {
		return nil, err
	}

	history := make([]float64, 0, len(all))
	found := false
	for _, earlier := range all {
		history = append(history, earlier.Percentage)
		if earlier.Id == attempt.Id {
			found = true
			break
		}
	}

	if !found {
		history = append(history, attempt.Percentage)
	}
	return history, nil
}

// wrongAnswer pairs a missed question with what was selected.
type wrongAnswer struct {
	ordinal  int
	question core.QuizQuestion
	selected int // -1 when unanswered
}

// wrongAnswers lists the questions the attempt got wrong, in order.
func wrongAnswers(quiz *core.Quiz, attempt *core.QuizAttempt) []wrongAnswer {
	var wrong []wrongAnswer
	for ordinal, question := range quiz.Questions {
		selected, answered := attempt.Answers[ordinal]
		if answered && selected == question.CorrectOption {
			continue
		}
		if !answered {
			selected = -1
		}
		wrong = append(wrong, wrongAnswer{ordinal: ordinal, question: question, selected: selected})
	}
	return wrong
}

// missedPrompts extracts the prompt texts of the missed questions.
func missedPrompts(wrong []wrongAnswer) []string {
	prompts := make([]string, 0, len(wrong))
	for _, w := range wrong {
		prompts = append(prompts, w.question.Prompt)
	}
	return prompts
}

// fallbackReport derives guidance from the score data alone, for when
// the model is unavailable or unparseable. It is never empty.
func fallbackReport(quiz *core.Quiz, attempt *core.QuizAttempt, trend core.TrendLabel, wrong []wrongAnswer) *ai.InsightReport {
	report := &ai.InsightReport{
		Insights: []string{
			fmt.Sprintf("You scored %d out of %d (%.1f%%) on %s.",
				attempt.Score, attempt.TotalMarks, attempt.Percentage, quiz.Title),
		},
		Recommendations: []string{},
		ConceptGaps:     []string{},
	}

	switch trend {
	case core.TrendImproving:
		report.Insights = append(report.Insights, "Your recent scores are improving. Keep it up.")
	case core.TrendDeclining:
		report.Insights = append(report.Insights, "Your recent scores have been slipping.")
	default:
		report.Insights = append(report.Insights, "Your recent scores are holding steady.")
	}

	if len(wrong) > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Review the %d question(s) you missed and retake the quiz.", len(wrong)))
		if quiz.Topic != "" {
			report.ConceptGaps = append(report.ConceptGaps, quiz.Topic)
		} else if quiz.Subject != "" {
			report.ConceptGaps = append(report.ConceptGaps, quiz.Subject)
		}
	} else {
		report.Recommendations = append(report.Recommendations,
			"Try a harder quiz on the same topic to keep progressing.")
	}

	if attempt.Percentage < 50 && quiz.Subject != "" {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Revisit the %s fundamentals before the next quiz.", quiz.Subject))
	}

	return report
}
