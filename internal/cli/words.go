package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/words"
)

func init() {
	cmd := &cobra.Command{
		Use:   "words [word...]",
		Short: "Show the word list, or look words up in it",
		RunE:  runWords,
	}

	RootCmd.AddCommand(cmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dict, err := words.Open(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintf(out, "%d words (%s)\n", dict.Len(), source(cfg.WordsFile))
		return nil
	}
	for _, w := range args {
		verdict := "no"
		if dict.Contains(w) {
			verdict = "yes"
		}
		fmt.Fprintf(out, "%s\t%s\n", normalizeWord(w), verdict)
	}
	return nil
}
