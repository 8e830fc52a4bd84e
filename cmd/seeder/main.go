package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/learnmate/learnmate"
	"github.com/learnmate/learnmate/core"
	"github.com/learnmate/learnmate/ingestion"
)

// seedMaterial is one built-in study document. Pages are joined with
// form feeds so the extractor sees them as page boundaries.
type seedMaterial struct {
	title   string
	subject string
	grade   string
	pages   []string
}

var seeds = []seedMaterial{
	{
		title:   "Introduction to Photosynthesis",
		subject: "Science",
		grade:   "7",
		pages: []string{
			"Photosynthesis is the process by which green plants convert sunlight, water, and carbon dioxide into glucose and oxygen. The reaction takes place in the chloroplasts, small organelles that contain the green pigment chlorophyll.",
			"Chlorophyll absorbs light most strongly in the blue and red parts of the spectrum, which is why leaves appear green. The absorbed light energy drives the splitting of water molecules, releasing oxygen as a byproduct.",
			"The glucose produced during photosynthesis is used by the plant for energy and growth. Excess glucose is stored as starch in roots, stems, and seeds, where it can be broken down later by cellular respiration.",
		},
	},
	{
		title:   "Fractions and Decimals",
		subject: "Math",
		grade:   "6",
		pages: []string{
			"A fraction represents a part of a whole. The number above the line is called the numerator and tells how many parts we have. The number below the line is the denominator and tells how many equal parts the whole is divided into.",
			"To add fractions with different denominators, first rewrite them with a common denominator. The least common denominator is the smallest number that both denominators divide evenly. Then add the numerators and keep the denominator.",
			"Every fraction can be written as a decimal by dividing the numerator by the denominator. Some fractions, like one half, produce terminating decimals. Others, like one third, produce repeating decimals.",
		},
	},
	{
		title:   "The Water Cycle",
		subject: "Science",
		grade:   "5",
		pages: []string{
			"Water moves continuously between the oceans, the atmosphere, and the land in a process called the water cycle. The sun's heat causes water to evaporate from oceans, lakes, and rivers into water vapor.",
			"As water vapor rises it cools and condenses into tiny droplets, forming clouds. When the droplets grow heavy enough they fall as precipitation: rain, snow, sleet, or hail, depending on the temperature.",
			"Precipitation that falls on land may run off into rivers, soak into the ground to become groundwater, or be taken up by plants. Eventually the water returns to the oceans and the cycle begins again.",
		},
	},
}

var (
	seedFileName = flag.String("src", "", "text file to ingest instead of the built-in materials")
	ownerID      = flag.Uint64("owner", 1, "owner ID for the seeded materials")
	dbPath       = flag.String("db", "./learnmate_db", "path to the database directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	platform, err := learnmate.NewPlatform(*dbPath)
	if err != nil {
		panic(err)
	}
	defer platform.Close()

	pipeline, err := platform.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()
	owner := core.ID(*ownerID)

	if *seedFileName != "" {
		data, err := os.ReadFile(*seedFileName)
		if err != nil {
			panic(err)
		}
		material := &core.Material{
			OwnerId: owner,
			Title:   filepath.Base(*seedFileName),
		}
		ingest(ctx, pipeline, material, data)
		return
	}

	for _, seed := range seeds {
		material := &core.Material{
			OwnerId:    owner,
			Title:      seed.title,
			Subject:    seed.subject,
			GradeLevel: seed.grade,
		}
		ingest(ctx, pipeline, material, []byte(strings.Join(seed.pages, "\f")))
	}

	seedQuizAttempts(ctx, platform, owner)
}

// seedQuizAttempts stores a demo quiz and a short attempt history so the
// trend and path features have data to work with.
func seedQuizAttempts(ctx context.Context, platform *learnmate.Platform, learner core.ID) {
	stores := platform.Stores()

	quiz, err := stores.Quizzes.AddQuiz(ctx, &core.Quiz{
		Title:      "Photosynthesis Basics",
		Subject:    "Science",
		Topic:      "Photosynthesis",
		GradeLevel: "7",
		Questions: []core.QuizQuestion{
			{
				Prompt:        "Where does photosynthesis take place?",
				Options:       []string{"Mitochondria", "Chloroplasts", "Nucleus", "Cell wall"},
				CorrectOption: 1,
				Explanation:   "Chloroplasts contain the chlorophyll that captures light.",
			},
			{
				Prompt:        "Which gas is released during photosynthesis?",
				Options:       []string{"Carbon dioxide", "Nitrogen", "Oxygen", "Hydrogen"},
				CorrectOption: 2,
				Explanation:   "Splitting water molecules releases oxygen.",
			},
			{
				Prompt:        "What pigment absorbs light energy?",
				Options:       []string{"Melanin", "Carotene", "Hemoglobin", "Chlorophyll"},
				CorrectOption: 3,
				Explanation:   "Chlorophyll absorbs blue and red light most strongly.",
			},
		},
	})
	if err != nil {
		panic(err)
	}

	// A rising score history: one, two, then all three correct.
	answerSets := []map[int]int{
		{0: 1, 1: 0, 2: 0},
		{0: 1, 1: 2, 2: 0},
		{0: 1, 1: 2, 2: 3},
	}
	for _, answers := range answerSets {
		correct := 0
		for ordinal, selected := range answers {
			if selected == quiz.Questions[ordinal].CorrectOption {
				correct++
			}
		}
		attempt, err := stores.Attempts.AddAttempt(ctx, &core.QuizAttempt{
			QuizId:     quiz.Id,
			LearnerId:  learner,
			Answers:    answers,
			Score:      correct,
			TotalMarks: len(quiz.Questions),
			Percentage: float64(correct) / float64(len(quiz.Questions)) * 100,
		})
		if err != nil {
			panic(err)
		}
		slog.Info("seeded attempt", "id", attempt.Id, "score", attempt.Score)
	}
	slog.Info("seeded quiz", "id", quiz.Id, "title", quiz.Title)
}

func ingest(ctx context.Context, pipeline *ingestion.Pipeline, material *core.Material, data []byte) {
	report, err := pipeline.Ingest(ctx, material, data)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded material",
		"id", material.Id,
		"title", material.Title,
		"pages", report.PagesTotal,
		"indexed", report.PagesProcessed)
}
