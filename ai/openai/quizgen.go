package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/learnmate/learnmate/ai"
)

// QuizGenerator implements ai.QuizGenerator using OpenAI-compatible chat APIs.
type QuizGenerator struct {
	client       llms.Model
	maxQuestions int
	logger       *slog.Logger
}

// quizQuestionPayload matches one question in the LLM's JSON response.
type quizQuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// quizPayload is the wrapper structure for the LLM's JSON response.
type quizPayload struct {
	Questions []quizQuestionPayload `json:"questions"`
}

// newQuizGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newQuizGenerator(config *ai.Config) (*QuizGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &QuizGenerator{
		client:       client,
		maxQuestions: config.MaxQuizQuestions,
		logger:       slog.Default().With("component", "openai-quizgen"),
	}, nil
}

// NewQuizGenerator creates a new quiz generator using the provided configuration.
//
// Returns ai.QuizGenerator interface to enforce abstraction.
func NewQuizGenerator(config *ai.Config) (ai.QuizGenerator, error) {
	return newQuizGenerator(config)
}

// GenerateQuiz asks the model for multiple-choice questions and keeps
// only the well-formed ones.
func (g *QuizGenerator) GenerateQuiz(ctx context.Context, req ai.QuizRequest) ([]ai.GeneratedQuestion, error) {
	count := req.NumQuestions
	if count < 1 {
		count = 1
	}
	if count > g.maxQuestions {
		count = g.maxQuestions
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(quizSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(formatQuizRequest(req, count)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var payload quizPayload
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			g.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			lastErr = fmt.Errorf("model returned no choices")
			continue
		}

		responseText := repairJSON(stripFences(response.Choices[0].Content))
		if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
			lastErr = err
			g.logger.Warn("error parsing quiz response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		g.logger.Error("failed to parse quiz response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Keep only well-formed questions, never more than requested.
	questions := make([]ai.GeneratedQuestion, 0, count)
	for _, q := range payload.Questions {
		if q.Question == "" || len(q.Options) < 2 {
			continue
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			continue
		}
		questions = append(questions, ai.GeneratedQuestion{
			Prompt:        q.Question,
			Options:       q.Options,
			CorrectOption: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
		if len(questions) == count {
			break
		}
	}

	g.logger.Debug("generated quiz questions",
		"requested", count,
		"returned", len(payload.Questions),
		"kept", len(questions))
	return questions, nil
}

// formatQuizRequest renders the quiz parameters as the user prompt.
func formatQuizRequest(req ai.QuizRequest, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Subject: %s\n", req.Subject)
	if req.Topic != "" {
		fmt.Fprintf(&sb, "Topic: %s\n", req.Topic)
	}
	if req.GradeLevel != "" {
		fmt.Fprintf(&sb, "Grade level: %s\n", req.GradeLevel)
	}
	fmt.Fprintf(&sb, "Number of questions: %d\n", count)

	if req.Context != "" {
		sb.WriteString("Source text:\n")
		sb.WriteString(req.Context)
		sb.WriteString("\n")
	}

	return sb.String()
}
