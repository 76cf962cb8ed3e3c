package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/chunkers"
	"github.com/custodia-labs/prepress/internal/cleaners"
	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/profiles"
)

var (
	chunkType string
	chunkJSON bool
)

// chunkCmd represents the chunk command.
var chunkCmd = &cobra.Command{
	Use:   "chunk [content]",
	Short: "Split content into chunks without quality gating",
	Long: `Clean content with its type profile and show the chunk boundaries
the splitter produces. Nothing is validated or scored; use this to
inspect how a target type cuts its text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChunk,
}

func init() {
	chunkCmd.Flags().StringVarP(&chunkType, "type", "t", "",
		"target type: product, post, gallery_item or comment")
	chunkCmd.Flags().BoolVar(&chunkJSON, "json", false,
		"output the chunks as JSON")
	rootCmd.AddCommand(chunkCmd)
}

func runChunk(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	raw := resolveTargetType(chunkType)
	target, err := domain.ParseTargetType(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", err, raw)
	}

	cleaned, _ := cleaners.Clean(content, profiles.CleaningFor(target))
	chunks, metadata := chunkers.ChunkContentForType(cleaned, target)

	if chunkJSON {
		return outputJSON(cmd, chunks)
	}

	cmd.Printf("Chunks: %d (%s strategy, %d runes cleaned)\n",
		metadata.TotalChunks, metadata.Strategy, metadata.OriginalLength)
	for _, chunk := range chunks {
		cmd.Printf("\n%d. [%d:%d] %d tokens\n   %s\n",
			chunk.Index, chunk.CharStart, chunk.CharEnd, chunk.TokenCount,
			truncate(chunk.Text, 76))
	}
	return nil
}
