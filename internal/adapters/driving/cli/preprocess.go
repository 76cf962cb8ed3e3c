package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

var (
	preprocessType     string
	preprocessFiltered bool
	preprocessJSON     bool
)

// preprocessCmd represents the preprocess command.
var preprocessCmd = &cobra.Command{
	Use:   "preprocess [content]",
	Short: "Clean, chunk, and quality-gate content",
	Long: `Run the full preprocessing pipeline on content: clean it with the
target type's profile, split it into positioned chunks, then validate,
score and deduplicate every chunk.

Content comes from the argument, or from stdin when no argument is
given. The target type comes from --type, falling back to the
configured default.

Examples:
  prepress preprocess --type product "<p>Hand-made oak desk.</p>"
  cat post.md | prepress preprocess --type post
  prepress preprocess --type comment --filtered --json "Great desk!"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreprocess,
}

func init() {
	preprocessCmd.Flags().StringVarP(&preprocessType, "type", "t", "",
		"target type: product, post, gallery_item or comment")
	preprocessCmd.Flags().BoolVar(&preprocessFiltered, "filtered", false,
		"drop failed chunks from the output")
	preprocessCmd.Flags().BoolVar(&preprocessJSON, "json", false,
		"output the result as JSON")
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	targetType := resolveTargetType(preprocessType)

	var run *domain.PreprocessingRun
	if preprocessFiltered {
		run, err = preprocessService.PreprocessForEmbedding(cmd.Context(), targetType, content)
	} else {
		run, err = preprocessService.Preprocess(cmd.Context(), targetType, content)
	}
	if err != nil {
		return fmt.Errorf("preprocess failed: %w", err)
	}

	switch resolveFormat(preprocessJSON) {
	case domain.OutputFormatJSON:
		return outputJSON(cmd, run.Result)
	case domain.OutputFormatText:
		outputResultText(cmd, run.Result)
	default:
		outputResultTable(cmd, run.Result)
	}
	return nil
}

// outputResultText prints chunk bodies separated by blank lines.
func outputResultText(cmd *cobra.Command, result domain.PreprocessingResult) {
	for i, chunk := range result.Chunks {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(chunk.Text)
	}
}

func outputResultTable(cmd *cobra.Command, result domain.PreprocessingResult) {
	m := result.Metadata
	cmd.Println(renderTitle("Preprocessing Report"))
	cmd.Printf("Type: %s\n", m.TargetType)
	cmd.Printf("Cleaning: %d -> %d runes (%.0f%% removed, %s)\n",
		m.Cleaning.OriginalLength, m.Cleaning.CleanedLength,
		m.Cleaning.CleaningRatio*100, strings.Join(m.Cleaning.CleanersApplied, ", "))
	cmd.Printf("Chunking: %s strategy, %d chunks\n\n", m.Chunking.Strategy, m.Chunking.TotalChunks)

	if len(result.Chunks) == 0 {
		cmd.Println("No chunks produced.")
		return
	}

	cmd.Printf("%-4s %-11s %-6s %-7s %-12s %s\n",
		"#", "STATUS", "SCORE", "TOKENS", "SPAN", "TEXT")
	for _, chunk := range result.Chunks {
		text := truncate(chunk.Text, 60)
		if chunk.Reason != "" {
			text = fmt.Sprintf("(%s) %s", chunk.Reason, text)
		}
		cmd.Printf("%-4d %s %.2f  %7d %-12s %s\n",
			chunk.Index,
			renderStatus(chunk.Status, 11),
			chunk.Score,
			chunk.TokenCount,
			fmt.Sprintf("%d:%d", chunk.CharStart, chunk.CharEnd),
			text)
	}

	q := m.Quality
	cmd.Printf("\nQuality: %d passed, %d incomplete, %d failed (%d total)\n",
		q.Passed, q.Incomplete, q.Failed, q.Total)
}
