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

// InsightGenerator implements ai.InsightGenerator using OpenAI-compatible chat APIs.
type InsightGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// insightPayload matches the JSON structure expected from the LLM.
type insightPayload struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	ConceptGaps     []string `json:"concept_gaps"`
}

// newInsightGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newInsightGenerator(config *ai.Config) (*InsightGenerator, error) {
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

	return &InsightGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-insights"),
	}, nil
}

// NewInsightGenerator creates a new insight generator using the provided configuration.
//
// Returns ai.InsightGenerator interface to enforce abstraction.
func NewInsightGenerator(config *ai.Config) (ai.InsightGenerator, error) {
	return newInsightGenerator(config)
}

// GenerateInsights asks the model to analyze recent quiz performance.
func (g *InsightGenerator) GenerateInsights(ctx context.Context, req ai.InsightRequest) (*ai.InsightReport, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(insightSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(formatInsightRequest(req)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var payload insightPayload
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
			g.logger.Warn("error parsing insight response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		g.logger.Error("failed to parse insight response after retries", "err", lastErr)
		return nil, lastErr
	}

	return &ai.InsightReport{
		Insights:        payload.Insights,
		Recommendations: payload.Recommendations,
		ConceptGaps:     payload.ConceptGaps,
	}, nil
}

// formatInsightRequest renders the performance data as the user prompt.
func formatInsightRequest(req ai.InsightRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Subject: %s\n", req.Subject)
	if req.GradeLevel != "" {
		fmt.Fprintf(&sb, "Grade level: %s\n", req.GradeLevel)
	}
	fmt.Fprintf(&sb, "Latest quiz score: %.1f%%\n", req.LatestPercentage)

	if len(req.RecentPercentages) > 0 {
		sb.WriteString("Earlier scores, oldest first:")
		for _, pct := range req.RecentPercentages {
			fmt.Fprintf(&sb, " %.1f%%", pct)
		}
		sb.WriteString("\n")
	}

	if len(req.MissedPrompts) > 0 {
		sb.WriteString("Questions answered incorrectly:\n")
		for _, prompt := range req.MissedPrompts {
			fmt.Fprintf(&sb, "- %s\n", prompt)
		}
	} else {
		sb.WriteString("No questions were answered incorrectly.\n")
	}

	return sb.String()
}
