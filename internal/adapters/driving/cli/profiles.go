package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/profiles"
)

var profilesJSON bool

// profilesCmd represents the profiles command.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show the preprocessing profile for each target type",
	Long: `Show how each target type is preprocessed: which cleaning steps run,
how the text is chunked, and what the quality gate demands.`,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false,
		"output the profiles as JSON")
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	if profilesJSON {
		byType := make(map[domain.TargetType]domain.TypeProfile, len(domain.AllTargetTypes()))
		for _, target := range domain.AllTargetTypes() {
			byType[target] = profiles.For(target)
		}
		return outputJSON(cmd, byType)
	}

	for i, target := range domain.AllTargetTypes() {
		if i > 0 {
			cmd.Println()
		}
		profile := profiles.For(target)
		cmd.Println(renderTitle(target.String()))
		cmd.Printf("  Cleaning: %s\n", strings.Join(cleanerNames(profile.Cleaning), ", "))
		cmd.Printf("  Chunking: %s\n", describeChunking(profile.Chunking))
		cmd.Printf("  Quality:  min length %d, max noise %.2f, min score %.2f, similarity %.2f\n",
			profile.Quality.MinLength, profile.Quality.MaxNoiseRatio,
			profile.Quality.MinQualityScore, profile.Quality.SimilarityThreshold)
	}
	return nil
}

func cleanerNames(cfg domain.CleaningConfig) []string {
	var names []string
	if cfg.StripHTML {
		names = append(names, "html")
	}
	if cfg.StripMarkdown {
		names = append(names, "markdown")
	}
	if cfg.NormaliseWhitespace {
		names = append(names, "whitespace")
	}
	return names
}

func describeChunking(cfg domain.ChunkingConfig) string {
	desc := fmt.Sprintf("%s, target %d chars, max %d tokens",
		cfg.SplitBy, cfg.TargetSize, cfg.MaxSize)
	if cfg.Overlap > 0 {
		desc += fmt.Sprintf(", overlap %d chars", cfg.Overlap)
	}
	if cfg.UseHeadingsAsBoundary {
		desc += ", headings as boundaries"
	}
	return desc
}
