package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/grammar"
)

var applyFixes bool

// grammarCmd represents the grammar command
var grammarCmd = &cobra.Command{
	Use:   "grammar [file]",
	Short: "Count common grammar faults, optionally fixing them",
	Long: `Grammar checks the text against a fixed list of common faults:
"should of", subject-verb disagreement, double negatives, "could care
less", "irregardless", and casual self-reference like "me and him".

By default the fault count is printed. With --fix the corrected text is
printed instead. Reads from stdin when no file is given.

Example:
  soap grammar comment.txt
  soap grammar comment.txt --fix`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrammar,
}

func init() {
	rootCmd.AddCommand(grammarCmd)

	grammarCmd.Flags().BoolVar(&applyFixes, "fix", false, "print the corrected text instead of the fault count")
}

func runGrammar(cmd *cobra.Command, args []string) error {
	_, _, text, err := readInput(args)
	if err != nil {
		return err
	}

	if applyFixes {
		fmt.Println(grammar.Correct(text))
		return nil
	}

	faults := grammar.Check(text)
	switch faults {
	case 0:
		fmt.Println("No grammar faults found.")
	case 1:
		fmt.Println("1 grammar fault found.")
	default:
		fmt.Printf("%d grammar faults found.\n", faults)
	}
	return nil
}
