package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/httpserver"
	"github.com/robalobadob/wordle-engine/internal/store"
	"github.com/robalobadob/wordle-engine/internal/words"
)

const sweepInterval = time.Minute

var servePort string

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default: $PORT or 5175)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	closer, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	dict, err := words.Open(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	log.Info().Int("words", dict.Len()).Str("source", source(cfg.WordsFile)).Msg("dictionary loaded")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(store.NewMemoryStore(), dict, cfg)
	go srv.SweepIdle(ctx, sweepInterval, cfg.SessionIdle)

	log.Info().Str("port", cfg.Port).Msg("starting wordle server")
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func source(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
