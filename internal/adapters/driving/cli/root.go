// Package cli implements the command-line interface for prepress.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/core/ports/driving"
	"github.com/custodia-labs/prepress/internal/logger"
)

// version is the build version, overridden at release time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	preprocessService driving.Preprocessor
	settingsService   driving.SettingsService
)

var verbose bool

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "prepress",
	Short: "Turn raw platform content into embedding-ready chunks",
	Long: `prepress turns raw platform content into embedding-ready chunks.

Content is cleaned with a per-type profile, split into positioned
chunks, then every chunk is validated, scored and deduplicated. The
same input always produces the same output, so runs are safe to
repeat and results are safe to cache.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services holds the driving ports the commands depend on.
type Services struct {
	Preprocessor driving.Preprocessor
	Settings     driving.SettingsService
}

// SetServices wires the driving ports into the command tree.
// Call before Execute.
func SetServices(services *Services) {
	if services == nil {
		return
	}
	preprocessService = services.Preprocessor
	settingsService = services.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions shared by the commands.

// readContent returns the first argument, or everything on stdin when
// no argument is given.
func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// resolveTargetType picks the target type for a command: the --type
// flag when given, otherwise the configured default.
func resolveTargetType(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.DefaultType.String()
		}
	}
	return domain.DefaultAppSettings().DefaultType.String()
}

// resolveFormat picks the output format: --json when set, otherwise
// the configured default.
func resolveFormat(jsonFlag bool) domain.OutputFormat {
	if jsonFlag {
		return domain.OutputFormatJSON
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Output.Format
		}
	}
	return domain.OutputFormatTable
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// truncate shortens s to limit runes for single-line display.
func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
