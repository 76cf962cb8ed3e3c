package services

import (
	"fmt"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/core/ports/driven"
	"github.com/custodia-labs/prepress/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultType  = "preprocess.default_type"
	keyOutputFormat = "output.format"
	keyOutputColour = "output.colour"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		DefaultType: s.getTargetType(defaults.DefaultType),
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
			Colour: s.getBool(keyOutputColour, defaults.Output.Colour),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDefaultType, settings.DefaultType.String()); err != nil {
		return fmt.Errorf("save default type: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputColour, settings.Output.Colour); err != nil {
		return fmt.Errorf("save output colour: %w", err)
	}

	return nil
}

// SetDefaultType updates the default target type.
func (s *SettingsService) SetDefaultType(target domain.TargetType) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid target type: %s", target)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.DefaultType = target

	return s.Save(settings)
}

// SetOutputFormat updates the output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Output.Format = format

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTargetType(defaultVal domain.TargetType) domain.TargetType {
	val := s.configStore.GetString(keyDefaultType)
	if val == "" {
		return defaultVal
	}
	target := domain.TargetType(val)
	if !target.IsValid() {
		return defaultVal
	}
	return target
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
