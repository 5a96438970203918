package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/readability"
	"github.com/textsoap/soap/internal/style"
)

var (
	reflowWidth int
	capsMode    string
	summarize   bool
)

// styleCmd represents the style command
var styleCmd = &cobra.Command{
	Use:   "style [file]",
	Short: "Analyze or reshape the structure of a text buffer",
	Long: `Style analyzes sentence structure, passive voice, and readability.

With --reflow, the text is word-wrapped to the given width instead.
With --caps, the text is re-capitalized (sentence, title, upper, lower).
With --summary, a two-sentence extractive summary is printed.

Reads from stdin when no file is given.

Example:
  soap style essay.txt
  soap style essay.txt --reflow 72
  soap style essay.txt --caps title
  soap style essay.txt --summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStyle,
}

func init() {
	rootCmd.AddCommand(styleCmd)

	styleCmd.Flags().IntVar(&reflowWidth, "reflow", 0, "word-wrap the text to this width and print it")
	styleCmd.Flags().StringVar(&capsMode, "caps", "", "re-capitalize the text (sentence, title, upper, lower)")
	styleCmd.Flags().BoolVar(&summarize, "summary", false, "print a short extractive summary")
}

func capModeFromName(name string) (style.CapMode, error) {
	switch name {
	case "sentence":
		return style.CapSentence, nil
	case "title":
		return style.CapTitle, nil
	case "upper":
		return style.CapUpper, nil
	case "lower":
		return style.CapLower, nil
	default:
		return 0, fmt.Errorf("unknown capitalization mode: %s (supported: sentence, title, upper, lower)", name)
	}
}

func runStyle(cmd *cobra.Command, args []string) error {
	_, _, text, err := readInput(args)
	if err != nil {
		return err
	}

	switch {
	case reflowWidth > 0:
		fmt.Println(style.Reflow(text, reflowWidth))
		return nil

	case capsMode != "":
		mode, err := capModeFromName(capsMode)
		if err != nil {
			return err
		}
		fmt.Println(style.Capitalize(text, mode))
		return nil

	case summarize:
		fmt.Println(style.Summarize(text))
		return nil
	}

	read := readability.Analyze(text)
	sentences := style.SplitSentences(text)

	fmt.Printf("style:       %s\n", style.Analyze(text))
	fmt.Printf("passive:     %d%%\n", style.PassiveRatio(text))
	fmt.Printf("sentences:   %d\n", len(sentences))
	fmt.Printf("readability: %d/100 (%s)\n", read.Value, read.Label)
	return nil
}
