package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommonFlags(t *testing.T) {
	flags := commonFlags()

	byName := make(map[string]cli.Flag)
	for _, flag := range flags {
		byName[flag.Names()[0]] = flag
	}

	t.Run("db is required", func(t *testing.T) {
		dbFlag, ok := byName["db"].(*cli.StringFlag)
		require.True(t, ok)
		assert.True(t, dbFlag.Required)
	})

	t.Run("host has default value", func(t *testing.T) {
		hostFlag, ok := byName["host"].(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})

	t.Run("models have defaults", func(t *testing.T) {
		embedFlag, ok := byName["embedding-model"].(*cli.StringFlag)
		require.True(t, ok)
		assert.NotEmpty(t, embedFlag.Value)

		genFlag, ok := byName["generator-model"].(*cli.StringFlag)
		require.True(t, ok)
		assert.NotEmpty(t, genFlag.Value)
	})
}

func TestIngestCommandRequiresFlags(t *testing.T) {
	app := &cli.App{
		Name: "learnmate",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Action: ingestCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "file", Required: true},
					&cli.Uint64Flag{Name: "owner", Required: true},
				),
			},
		},
	}

	err := app.Run([]string{"learnmate", "ingest", "--db", "/tmp/test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			app := &cli.App{
				Flags:  []cli.Flag{&cli.StringFlag{Name: "log-level", Value: "info"}},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			err := app.Run([]string{"learnmate", "--log-level", level})
			assert.NoError(t, err, "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		app := &cli.App{
			Flags:  []cli.Flag{&cli.StringFlag{Name: "log-level", Value: "info"}},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"learnmate", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
