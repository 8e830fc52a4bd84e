package ai

// InsightRequest carries everything the model needs to analyze a
// learner's recent quiz performance.
type InsightRequest struct {
	// Subject of the analyzed quiz, e.g. "math".
	Subject string

	// GradeLevel of the learner, free-form, e.g. "7".
	GradeLevel string

	// LatestPercentage is the score of the attempt being analyzed.
	LatestPercentage float64

	// RecentPercentages are earlier scores, oldest first, for trend context.
	RecentPercentages []float64

	// MissedPrompts are the question prompts the learner got wrong.
	MissedPrompts []string
}

// InsightReport is the structured analysis returned by the model.
type InsightReport struct {
	// Insights are observations about the learner's performance.
	Insights []string

	// Recommendations are concrete next steps for the learner.
	Recommendations []string

	// ConceptGaps name the concepts the learner appears to be missing.
	ConceptGaps []string
}

// QuizRequest describes the quiz to generate.
type QuizRequest struct {
	// Subject of the quiz, e.g. "science".
	Subject string

	// Topic narrows the subject, e.g. "photosynthesis".
	Topic string

	// GradeLevel of the intended audience, free-form.
	GradeLevel string

	// NumQuestions requested. Implementations may return fewer if the
	// model under-delivers, never more.
	NumQuestions int

	// Context is optional source text the questions should draw from.
	Context string
}

// GeneratedQuestion is one multiple-choice question from the model.
type GeneratedQuestion struct {
	// Prompt is the question text.
	Prompt string

	// Options are the answer choices, at least two.
	Options []string

	// CorrectOption indexes into Options.
	CorrectOption int

	// Explanation says why the correct option is correct. May be empty.
	Explanation string
}
