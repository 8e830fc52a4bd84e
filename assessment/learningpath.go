package assessment

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/storage"
)

// Level thresholds over the learner's rolling average percentage.
const (
	levelBeginner     = "beginner"
	levelIntermediate = "intermediate"
	levelAdvanced     = "advanced"

	intermediateFloor = 50.0
	advancedFloor     = 80.0
)

// weakSubjectCeiling marks a subject as weak when its average sits below it.
const weakSubjectCeiling = 50.0

// refreshPath recomputes and upserts the learner's path after an analysis.
// Level comes from the rolling average of recent attempts, weak and strong
// areas from concept gaps and per-subject averages. CompletedTopics survive
// the recomputation and are filtered out of the recommendations.
func (a *Analyzer) refreshPath(ctx context.Context, learnerID core.ID, analysis *core.QuizAnalysis) error {
	attempts, err := a.attempts.GetRecentAttempts(ctx, learnerID, trendWindow)
	if err != nil {
		return err
	}

	path, err := a.paths.GetPath(ctx, learnerID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		path = &core.LearningPath{LearnerId: learnerID}
	}

	path.Level = levelFor(rollingAverage(attempts))

	subjects, err := a.subjectAverages(ctx, attempts)
	if err != nil {
		return err
	}

	weak := make([]string, 0, len(analysis.ConceptGaps))
	strong := make([]string, 0, len(subjects))
	weak = appendUnique(weak, analysis.ConceptGaps...)
	for _, s := range subjects {
		if s.average < weakSubjectCeiling {
			weak = appendUnique(weak, s.subject)
		} else if s.average >= advancedFloor {
			strong = appendUnique(strong, s.subject)
		}
	}
	path.WeakAreas = weak
	path.StrongAreas = strong

	recommended := make([]string, 0, len(weak))
	for _, topic := range weak {
		if !containsFold(path.CompletedTopics, topic) {
			recommended = append(recommended, topic)
		}
	}
	path.RecommendedTopics = recommended

	_, err = a.paths.UpsertPath(ctx, path)
	return err
}

// MarkTopicCompleted records that the learner finished a topic, moving it
// from the recommended list to the completed one. Completing a topic that
// was never recommended is allowed. Returns storage.ErrNotFound when the
// learner has no path yet.
func (a *Analyzer) MarkTopicCompleted(ctx context.Context, learnerID core.ID, topic string) (*core.LearningPath, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	path, err := a.paths.GetPath(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	path.RecommendedTopics = slices.DeleteFunc(path.RecommendedTopics, func(t string) bool {
		return strings.EqualFold(t, topic)
	})
	if !containsFold(path.CompletedTopics, topic) {
		path.CompletedTopics = append(path.CompletedTopics, topic)
	}

	return a.paths.UpsertPath(ctx, path)
}

// GetPath returns the learner's current path.
func (a *Analyzer) GetPath(ctx context.Context, learnerID core.ID) (*core.LearningPath, error) {
	return a.paths.GetPath(ctx, learnerID)
}

// subjectAverage is the mean percentage of one subject's attempts.
type subjectAverage struct {
	subject  string
	average  float64
	attempts int
}

// subjectAverages groups the given attempts by quiz subject and averages
// their percentages. Quizzes are looked up once each.
func (a *Analyzer) subjectAverages(ctx context.Context, attempts []*core.QuizAttempt) ([]subjectAverage, error) {
	quizzes := make(map[core.ID]*core.Quiz)
	totals := make(map[string]*subjectAverage)
	var order []string

	for _, attempt := range attempts {
		quiz, ok := quizzes[attempt.QuizId]
		if !ok {
			var err error
			quiz, err = a.quizzes.GetQuiz(ctx, attempt.QuizId)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					continue
				}
				return nil, err
			}
			quizzes[attempt.QuizId] = quiz
		}
		if quiz.Subject == "" {
			continue
		}

		s, ok := totals[quiz.Subject]
		if !ok {
			s = &subjectAverage{subject: quiz.Subject}
			totals[quiz.Subject] = s
			order = append(order, quiz.Subject)
		}
		s.average += attempt.Percentage
		s.attempts++
	}

	result := make([]subjectAverage, 0, len(order))
	for _, subject := range order {
		s := totals[subject]
		s.average /= float64(s.attempts)
		result = append(result, *s)
	}
	return result, nil
}

// rollingAverage is the mean percentage over the given attempts, 0 when empty.
func rollingAverage(attempts []*core.QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	var sum float64
	for _, attempt := range attempts {
		sum += attempt.Percentage
	}
	return sum / float64(len(attempts))
}

// levelFor maps a rolling average percentage to a path level.
func levelFor(average float64) string {
	switch {
	case average >= advancedFloor:
		return levelAdvanced
	case average >= intermediateFloor:
		return levelIntermediate
	default:
		return levelBeginner
	}
}

// appendUnique appends values not already present, case-insensitively.
func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || containsFold(list, v) {
			continue
		}
		list = append(list, v)
	}
	return list
}

// containsFold reports whether list holds value under case folding.
func containsFold(list []string, value string) bool {
	return slices.ContainsFunc(list, func(t string) bool {
		return strings.EqualFold(t, value)
	})
}
