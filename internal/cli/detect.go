package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/classify"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Classify the tone and vocabulary of a text buffer",
	Long: `Detect runs every classifier over the text and prints the verdicts:
overall tone, vocabulary mix, and each boolean detector that fired.

Reads from stdin when no file is given.

Example:
  soap detect comment.txt
  cat comment.txt | soap detect`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	_, _, text, err := readInput(args)
	if err != nil {
		return err
	}

	fmt.Printf("tone:       %s\n", classify.DetectTone(text))
	fmt.Printf("vocabulary: %s (%d offensive, %d slang)\n",
		classify.ContextualTone(text), classify.CountOffensive(text), classify.CountSlang(text))

	checks := []struct {
		label string
		fn    func(string) bool
	}{
		{"ragebait", classify.DetectRagebait},
		{"clickbait", classify.DetectClickbait},
		{"spam", classify.DetectSpam},
		{"woke", classify.DetectWoke},
		{"bot", classify.DetectBot},
		{"sarcasm", classify.DetectSarcasm},
		{"formal", classify.DetectFormal},
		{"casual", classify.DetectCasual},
		{"snowflake", classify.DetectSnowflake},
		{"offensive", classify.DetectOffensive},
		{"hype", classify.DetectHype},
		{"quality", classify.DetectQuality},
		{"political", classify.DetectPolitical},
		{"conspiracy", classify.DetectConspiracy},
		{"marketing", classify.DetectMarketing},
		{"technobabble", classify.DetectTechnobabble},
		{"exaggeration", classify.DetectExaggeration},
	}

	fired := 0
	for _, c := range checks {
		if c.fn(text) {
			fmt.Printf("flagged:    %s\n", c.label)
			fired++
		}
	}
	if fired == 0 {
		fmt.Println("flagged:    none")
	}
	return nil
}
