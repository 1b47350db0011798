package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/daily"
	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/tui"
	"github.com/robalobadob/wordle-engine/internal/words"
)

var playDaily bool

func init() {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	cmd.Flags().BoolVar(&playDaily, "daily", false, "Play today's word instead of a random one")

	RootCmd.AddCommand(cmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("play needs an interactive terminal")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The board owns the terminal; logs go to LOG_FILE or nowhere.
	closer, err := setupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	var picker game.SecretPicker = game.RandomPicker
	if playDaily {
		picker = daily.NewPicker(cfg.DailySalt)
	}

	ctx := cmd.Context()
	m := tui.New(ctx, words.OpenFunc(cfg.WordsFile), picker)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
