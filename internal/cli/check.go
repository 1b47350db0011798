package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/words"
)

var checkJSON bool

func init() {
	cmd := &cobra.Command{
		Use:   "check <guess> <secret>",
		Short: "Score a guess against a secret",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}
	cmd.Flags().BoolVar(&checkJSON, "json", false, "Print statuses as JSON")

	RootCmd.AddCommand(cmd)
}

var tiles = map[game.LetterStatus]string{
	game.StatusCorrect: "🟩",
	game.StatusPresent: "🟨",
	game.StatusAbsent:  "⬛",
}

func runCheck(cmd *cobra.Command, args []string) error {
	guess, secret := normalizeWord(args[0]), normalizeWord(args[1])
	for _, w := range []string{guess, secret} {
		if !words.Valid(w) {
			return fmt.Errorf("%q is not a %d-letter word", w, words.WordLen)
		}
	}
	statuses := game.Evaluate(guess, secret)

	out := cmd.OutOrStdout()
	if checkJSON {
		return json.NewEncoder(out).Encode(map[string]any{
			"guess":    guess,
			"statuses": statuses,
		})
	}
	var b strings.Builder
	for _, s := range statuses {
		b.WriteString(tiles[s])
	}
	fmt.Fprintln(out, strings.ToUpper(guess))
	fmt.Fprintln(out, b.String())
	return nil
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
