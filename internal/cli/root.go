// Package cli implements the wordle commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/config"
)

var wordsPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:          "wordle",
	Short:        "Guess the five-letter word in six tries",
	Long:         "Wordle engine: an HTTP game server, a terminal player and a few dictionary tools.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&wordsPath, "words", "w", "", "Word list file (default: $WORDS_FILE or the built-in list)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if wordsPath != "" {
		cfg.WordsFile = wordsPath
	}
	return cfg, nil
}
