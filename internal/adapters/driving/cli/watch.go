package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/prepress/internal/watcher"
)

var watchType string

// contentExtensions are the file types the watch command preprocesses.
var contentExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and preprocess files as they change",
	Long: `Watch a directory tree and run the preprocessing pipeline on every
content file that is created or modified, printing a quality summary
per file. Only .txt, .md, .markdown, .html and .htm files are
processed. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchType, "type", "t", "",
		"target type for watched files")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	dirWatcher := watcher.New(args[0])
	defer dirWatcher.Close() //nolint:errcheck // Shutting down

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := dirWatcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", args[0], err)
	}

	targetType := resolveTargetType(watchType)
	cmd.Printf("Watching %s (type: %s). Press Ctrl+C to stop.\n", args[0], targetType)

	for event := range events {
		if !isContentFile(event.Path) {
			continue
		}

		raw, err := os.ReadFile(event.Path)
		if err != nil {
			cmd.Printf("%s: read failed: %v\n", filepath.Base(event.Path), err)
			continue
		}

		run, err := preprocessService.Preprocess(ctx, targetType, string(raw))
		if err != nil {
			cmd.Printf("%s: %v\n", filepath.Base(event.Path), err)
			continue
		}

		q := run.Result.Metadata.Quality
		cmd.Printf("%s (%s): %d chunks, %d passed, %d incomplete, %d failed\n",
			filepath.Base(event.Path), event.Type,
			q.Total, q.Passed, q.Incomplete, q.Failed)
	}

	return nil
}

func isContentFile(path string) bool {
	return contentExtensions[strings.ToLower(filepath.Ext(path))]
}
