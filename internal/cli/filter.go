package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/filter"
)

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:   "filter <patterns> [file]",
	Short: "Mask tokens matching glob patterns",
	Long: `Filter masks every token whose punctuation-trimmed core matches one of
the comma-separated glob patterns. '*' matches any run of characters and
matching is case-insensitive. Matched cores become equal-length asterisk
runs; everything else is preserved verbatim.

Reads from stdin when no file is given.

Example:
  soap filter "lo*er" comment.txt
  echo "You are a loser and a lover." | soap filter "lo*er"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	patterns := args[0]
	_, _, text, err := readInput(args[1:])
	if err != nil {
		return err
	}

	fmt.Println(filter.Filter(patterns, text))
	return nil
}
