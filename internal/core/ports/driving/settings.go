package driving

import "github.com/custodia-labs/prepress/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultType updates the default target type used when a
	// command is run without an explicit --type flag.
	SetDefaultType(target domain.TargetType) error

	// SetOutputFormat updates the output format.
	SetOutputFormat(format domain.OutputFormat) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
