package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default target type and output preferences.

Use subcommands to change individual settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsTypeCmd = &cobra.Command{
	Use:   "type <target-type>",
	Short: "Set the default target type",
	Long: `Set the target type assumed when --type is omitted.

Available types:
  product      - product listing descriptions
  post         - long-form articles and blog posts
  gallery_item - gallery captions and alt text
  comment      - short informal user comments`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsType,
}

var settingsFormatCmd = &cobra.Command{
	Use:   "format <format>",
	Short: "Set the default output format",
	Long: `Set the format commands render their results in.

Available formats:
  table - aligned columns, one row per chunk
  json  - indented JSON, machine readable
  text  - chunk bodies only, blank-line separated`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFormat,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTypeCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Preprocess]")
	cmd.Printf("  Default type: %s\n", settings.DefaultType)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	colour := "on"
	if !settings.Output.Colour {
		colour = "off"
	}
	cmd.Printf("  Colour: %s\n", colour)

	return nil
}

func runSettingsType(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	target := domain.TargetType(args[0])
	if err := settingsService.SetDefaultType(target); err != nil {
		return fmt.Errorf("failed to set default type: %w", err)
	}

	cmd.Printf("Default target type set to: %s\n", target)
	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format := domain.OutputFormat(args[0])
	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}

	cmd.Printf("Output format set to: %s\n", format)
	return nil
}
