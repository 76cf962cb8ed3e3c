package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/chunkers"
)

// headingsCmd represents the headings command.
var headingsCmd = &cobra.Command{
	Use:   "headings [content]",
	Short: "List the markdown headings in content",
	Long: `Scan content for markdown headings and print each one with its rune
position. These are the boundaries the semantic splitter cuts at.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeadings,
}

func init() {
	rootCmd.AddCommand(headingsCmd)
}

func runHeadings(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	markers := chunkers.ExtractHeadings(content)
	if len(markers) == 0 {
		cmd.Println("No headings found.")
		return nil
	}

	cmd.Printf("Headings: %d\n\n", len(markers))
	for _, marker := range markers {
		cmd.Printf("%6d  %s\n", marker.Position, marker.Text)
	}
	return nil
}
