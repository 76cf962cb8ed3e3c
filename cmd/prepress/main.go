// Command prepress turns raw platform content into embedding-ready
// chunks from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/prepress/internal/adapters/driven/config/file"
	"github.com/custodia-labs/prepress/internal/adapters/driving/cli"
	"github.com/custodia-labs/prepress/internal/core/services"
)

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "prepress: %v\n", err)
		os.Exit(1)
	}

	cli.SetServices(&cli.Services{
		// No embedding service is wired: dispatch stays disabled and
		// the pipeline runs standalone.
		Preprocessor: services.NewPreprocessService(nil),
		Settings:     services.NewSettingsService(configStore),
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
