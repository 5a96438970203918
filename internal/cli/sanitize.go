package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/filter"
)

var (
	useSuggestions bool
	maskPatterns   string
	customTerms    []string
)

// sanitizeCmd represents the sanitize command
var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [file]",
	Short: "Mask or replace flagged vocabulary in a text buffer",
	Long: `Sanitize masks every registered offensive and meme-speak term with
asterisks of equal length, preserving surrounding punctuation and spacing.

With --suggest, flagged terms are replaced by neutral synonyms instead
of being masked. With --patterns, only the given comma-separated glob
patterns are masked (* matches any sequence within a word).

Reads from stdin when no file is given.

Example:
  soap sanitize comment.txt
  soap sanitize comment.txt --suggest
  soap sanitize comment.txt --patterns "lo*er,id*t"
  soap sanitize comment.txt --custom vendorname`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().BoolVar(&useSuggestions, "suggest", false, "replace flagged terms with neutral synonyms instead of masking")
	sanitizeCmd.Flags().StringVar(&maskPatterns, "patterns", "", "comma-separated glob patterns to mask (overrides built-in lists)")
	sanitizeCmd.Flags().StringSliceVar(&customTerms, "custom", nil, "additional terms to register before sanitizing (repeatable)")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	_, _, text, err := readInput(args)
	if err != nil {
		return err
	}

	for _, term := range customTerms {
		if err := filter.AddCustomFilter(term); err != nil {
			return fmt.Errorf("register custom term %q: %w", term, err)
		}
	}

	var out string
	switch {
	case maskPatterns != "":
		out = filter.Filter(maskPatterns, text)
	case useSuggestions:
		out = filter.Suggest(text)
	default:
		out = filter.Sanitize(text)
	}

	fmt.Println(out)
	return nil
}
