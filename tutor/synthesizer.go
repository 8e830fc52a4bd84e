package tutor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
)

const answerSystemPrompt = `You are a patient tutor. Answer the student's question using the study
material excerpts provided. If the excerpts do not cover the question,
fall back on your general knowledge and say the answer comes from outside the student's materials.
Keep the answer short and clear, suited to the student's level.
Do not mention the excerpts or their numbering in your answer.`

// apologyText is the canned reply when no study material covers the question.
const apologyText = "I couldn't find anything in your study materials about that. " +
	"Try uploading material that covers this topic, or ask about something in your uploaded materials."

// Synthesizer turns retrieved passages into an answer via the generation model.
type Synthesizer struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewSynthesizer creates a synthesizer over the given generator.
func NewSynthesizer(generator ai.Generator, logger *slog.Logger) (*Synthesizer, error) {
	if generator == nil {
		return nil, ErrAIProviderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Synthesizer{
		generator: generator,
		logger:    logger.With("component", "synthesizer"),
	}, nil
}

// Synthesize produces an answer grounded in the passages. With no
// passages the generator is never invoked and the canned apology comes
// back instead. A failing generator also yields the apology; this path
// never surfaces an error to the learner.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, hints Hints, passages []*core.Passage) (string, error) {
	if len(passages) == 0 {
		return apologyText, nil
	}

	answer, err := s.generator.Complete(ctx, answerSystemPrompt, formatQuestion(question, hints, passages))
	if err != nil {
		s.logger.Error("error generating answer", "err", err)
		return apologyText, nil
	}
	if strings.TrimSpace(answer) == "" {
		return apologyText, nil
	}
	return answer, nil
}

// formatQuestion renders the passages, hints, and question as the user prompt.
func formatQuestion(question string, hints Hints, passages []*core.Passage) string {
	var sb strings.Builder

	sb.WriteString("Study material excerpts:\n")
	for i, passage := range passages {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, passage.Text)
	}
	if hints.Subject != "" {
		sb.WriteString("\nSubject: ")
		sb.WriteString(hints.Subject)
	}
	if hints.GradeLevel != "" {
		sb.WriteString("\nStudent grade level: ")
		sb.WriteString(hints.GradeLevel)
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
