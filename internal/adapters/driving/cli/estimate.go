package cli

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/tokens"
)

// estimateCmd represents the estimate command.
var estimateCmd = &cobra.Command{
	Use:   "estimate [content]",
	Short: "Estimate the embedding token cost of content",
	Long: `Estimate how many tokens content will cost to embed. Latin script
costs roughly a quarter token per character, CJK scripts one and a
half; mixed text sums both estimates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	cjk := 0
	for _, r := range content {
		if tokens.IsCJK(r) {
			cjk++
		}
	}

	cmd.Printf("Characters: %d (%d CJK)\n", utf8.RuneCountInString(content), cjk)
	cmd.Printf("Estimated tokens: %d\n", tokens.Estimate(content))
	return nil
}
