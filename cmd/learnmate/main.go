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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/learnmate/learnmate"
	"github.com/learnmate/learnmate/ai"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/reindex"
	"github.com/learnmate/learnmate/storage"
	"github.com/learnmate/learnmate/study"
	"github.com/learnmate/learnmate/tutor"
)

func main() {
	app := &cli.App{
		Name:  "learnmate",
		Usage: "AI tutoring platform over uploaded study materials",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest a document into the semantic index",
				Action: ingestCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the PDF or text document",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "owner",
						Usage:    "Owner (learner or teacher) ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Material title (defaults to the file name)",
					},
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Subject the material covers",
					},
					&cli.StringFlag{
						Name:  "grade",
						Usage: "Grade level of the material",
					},
				),
			},
			{
				Name:      "ask",
				Usage:     "Ask a question against a learner's materials",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: append(commonFlags(),
					&cli.Uint64Flag{
						Name:     "learner",
						Usage:    "Learner ID whose materials to search",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Optional subject hint for the answer",
					},
					&cli.StringFlag{
						Name:  "grade",
						Usage: "Optional grade-level hint for the answer",
					},
				),
			},
			{
				Name:   "quiz",
				Usage:  "Generate a quiz on a subject or topic",
				Action: quizCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Subject for the quiz",
					},
					&cli.StringFlag{
						Name:  "topic",
						Usage: "Topic for the quiz",
					},
					&cli.StringFlag{
						Name:  "grade",
						Usage: "Grade level for the quiz",
					},
					&cli.IntFlag{
						Name:  "questions",
						Usage: "Number of questions",
						Value: 5,
					},
				),
			},
			{
				Name:   "study",
				Usage:  "Generate or list study content for a topic",
				Action: studyCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "topic",
						Usage: "Topic to generate content for",
					},
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Subject the topic belongs to",
					},
					&cli.StringFlag{
						Name:  "grade",
						Usage: "Grade level of the audience",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title for the stored content (defaults to the topic)",
					},
					&cli.Uint64Flag{
						Name:  "owner",
						Usage: "Requesting learner or teacher ID",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag to store with the content (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "list",
						Usage: "List stored content instead of generating",
					},
				),
			},
			{
				Name:   "analyze",
				Usage:  "Recompute the analysis of a quiz attempt",
				Action: analyzeCommand,
				Flags: append(commonFlags(),
					&cli.Uint64Flag{
						Name:     "attempt",
						Usage:    "Attempt ID to analyze",
						Required: true,
					},
				),
			},
			{
				Name:   "progress",
				Usage:  "Show a learner's attempt history summary and path",
				Action: progressCommand,
				Flags: append(commonFlags(),
					&cli.Uint64Flag{
						Name:     "learner",
						Usage:    "Learner ID",
						Required: true,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed stored chunks with the configured embedding model",
				Action: reindexCommand,
				Flags: append(commonFlags(),
					&cli.Uint64Flag{
						Name:  "material",
						Usage: "Reindex only this material ID (default: all processed materials)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags are shared by every command: the database location and the
// AI service settings.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "generator-model",
			Usage: "Generative model name",
			Value: "qwen2.5:3b",
		},
	}
}

// openPlatform builds a Platform from the shared flags.
func openPlatform(c *cli.Context) (*learnmate.Platform, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	platform, err := learnmate.NewPlatform(c.String("db"), learnmate.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return platform, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	filePath := c.String("file")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	title := c.String("title")
	if title == "" {
		title = filepath.Base(filePath)
	}

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	pipeline, err := platform.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	material := &core.Material{
		OwnerId:    core.ID(c.Uint64("owner")),
		Title:      title,
		Subject:    c.String("subject"),
		GradeLevel: c.String("grade"),
	}

	report, err := pipeline.Ingest(ctx, material, data)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Ingested %q as material %d\n", material.Title, material.Id)
	fmt.Printf("Pages: %d total, %d indexed, %d skipped, %d failed\n",
		report.PagesTotal, report.PagesProcessed, report.PagesSkipped, report.PagesFailed)
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	tut, err := platform.NewTutor()
	if err != nil {
		return err
	}

	answer, err := tut.AskWithHints(ctx, core.ID(c.Uint64("learner")), question, tutor.Hints{
		Subject:    c.String("subject"),
		GradeLevel: c.String("grade"),
	})
	if err != nil {
		return fmt.Errorf("failed to answer: %w", err)
	}

	fmt.Println(answer.Text)
	if answer.Source == tutor.SourceMaterials {
		fmt.Printf("\n(grounded in %d passage(s) from your materials)\n", len(answer.Passages))
	}
	return nil
}

func quizCommand(c *cli.Context) error {
	ctx := context.Background()

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	analyzer, err := platform.NewAnalyzer()
	if err != nil {
		return err
	}

	quiz, err := analyzer.GenerateQuiz(ctx, ai.QuizRequest{
		Subject:      c.String("subject"),
		Topic:        c.String("topic"),
		GradeLevel:   c.String("grade"),
		NumQuestions: c.Int("questions"),
	})
	if err != nil {
		return fmt.Errorf("quiz generation failed: %w", err)
	}

	fmt.Printf("Created quiz %d: %q (%d questions)\n", quiz.Id, quiz.Title, len(quiz.Questions))
	for i, q := range quiz.Questions {
		fmt.Printf("\n%d. %s\n", i+1, q.Prompt)
		for j, option := range q.Options {
			fmt.Printf("   %c) %s\n", 'a'+j, option)
		}
	}
	return nil
}

func studyCommand(c *cli.Context) error {
	ctx := context.Background()

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	library, err := platform.NewStudyLibrary()
	if err != nil {
		return err
	}

	if c.Bool("list") {
		contents, err := library.ListContent(ctx, storage.ContentFilter{
			Subject:    c.String("subject"),
			GradeLevel: c.String("grade"),
		})
		if err != nil {
			return fmt.Errorf("failed to list study content: %w", err)
		}
		for _, content := range contents {
			fmt.Printf("%d\t%s\t%s\t%s\n", content.Id, content.Subject, content.GradeLevel, content.Title)
		}
		return nil
	}

	content, err := library.GenerateContent(ctx, study.ContentRequest{
		Title:      c.String("title"),
		Topic:      c.String("topic"),
		Subject:    c.String("subject"),
		GradeLevel: c.String("grade"),
		OwnerId:    core.ID(c.Uint64("owner")),
		Tags:       c.StringSlice("tag"),
	})
	if err != nil {
		return fmt.Errorf("content generation failed: %w", err)
	}

	fmt.Printf("Created study content %d: %q\n\n%s\n", content.Id, content.Title, content.Body)
	if !content.AIGenerated {
		fmt.Println("\n(placeholder content; the model was unavailable)")
	}
	return nil
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	analyzer, err := platform.NewAnalyzer()
	if err != nil {
		return err
	}

	analysis, err := analyzer.Analyze(ctx, core.ID(c.Uint64("attempt")))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Printf("Trend: %s\n", analysis.Trend)
	for _, insight := range analysis.Insights {
		fmt.Printf("- %s\n", insight)
	}
	if len(analysis.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range analysis.Recommendations {
			fmt.Printf("- %s\n", rec)
		}
	}
	if len(analysis.ConceptGaps) > 0 {
		fmt.Printf("\nConcept gaps: %s\n", strings.Join(analysis.ConceptGaps, ", "))
	}
	return nil
}

func progressCommand(c *cli.Context) error {
	ctx := context.Background()

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	analyzer, err := platform.NewAnalyzer()
	if err != nil {
		return err
	}

	learnerID := core.ID(c.Uint64("learner"))
	progress, err := analyzer.ProgressSummary(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("failed to summarize progress: %w", err)
	}

	fmt.Printf("Attempts: %d\n", progress.Attempts)
	if progress.Attempts > 0 {
		fmt.Printf("Average: %.1f%%\n", progress.AveragePercentage)
		fmt.Printf("Trend: %s\n", progress.Trend)
	}
	for _, subject := range progress.Subjects {
		fmt.Printf("  %s: %d attempt(s), %.1f%% average\n",
			subject.Subject, subject.Attempts, subject.AveragePercentage)
	}

	path, err := analyzer.GetPath(ctx, learnerID)
	if err != nil {
		// No path yet is normal for a learner with no analyzed attempts.
		return nil
	}
	fmt.Printf("Level: %s\n", path.Level)
	if len(path.RecommendedTopics) > 0 {
		fmt.Printf("Recommended: %s\n", strings.Join(path.RecommendedTopics, ", "))
	}
	if len(path.WeakAreas) > 0 {
		fmt.Printf("Weak areas: %s\n", strings.Join(path.WeakAreas, ", "))
	}
	if len(path.StrongAreas) > 0 {
		fmt.Printf("Strong areas: %s\n", strings.Join(path.StrongAreas, ", "))
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	platform, err := openPlatform(c)
	if err != nil {
		return err
	}
	defer platform.Close()

	reindexer := platform.NewReindexer(config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if materialID := c.Uint64("material"); materialID != 0 {
		err = reindexer.RunMaterial(ctx, core.ID(materialID))
	} else {
		err = reindexer.Run(ctx)
	}
	if err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
