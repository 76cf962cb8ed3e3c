package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/prepress/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/prepress/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	// Verify defaults
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.DefaultType, settings.DefaultType)
	assert.Equal(t, defaults.Output.Format, settings.Output.Format)
	assert.Equal(t, defaults.Output.Colour, settings.Output.Colour)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("preprocess.default_type", "comment")
	_ = store.Set("output.format", "json")
	_ = store.Set("output.colour", false)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.TargetTypeComment, settings.DefaultType)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
	assert.False(t, settings.Output.Colour)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("preprocess.default_type", "invalid_type")
	_ = store.Set("output.format", "invalid_format")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	// Invalid values should fall back to defaults
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.DefaultType, settings.DefaultType)
	assert.Equal(t, defaults.Output.Format, settings.Output.Format)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		DefaultType: domain.TargetTypeGalleryItem,
		Output: domain.OutputSettings{
			Format: domain.OutputFormatText,
			Colour: false,
		},
	}

	err := service.Save(settings)
	require.NoError(t, err)

	// Verify values were stored
	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.TargetTypeGalleryItem, retrieved.DefaultType)
	assert.Equal(t, domain.OutputFormatText, retrieved.Output.Format)
	assert.False(t, retrieved.Output.Colour)
}

func TestSettingsService_SetDefaultType_Valid(t *testing.T) {
	tests := []struct {
		name   string
		target domain.TargetType
	}{
		{"product", domain.TargetTypeProduct},
		{"post", domain.TargetTypePost},
		{"gallery_item", domain.TargetTypeGalleryItem},
		{"comment", domain.TargetTypeComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.SetDefaultType(tt.target)
			require.NoError(t, err)

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.target, settings.DefaultType)
		})
	}
}

func TestSettingsService_SetDefaultType_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetDefaultType(domain.TargetType("wiki_page"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target type")
}

func TestSettingsService_SetOutputFormat_Valid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetOutputFormat(domain.OutputFormatJSON)
	require.NoError(t, err)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
}

func TestSettingsService_SetOutputFormat_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetOutputFormat(domain.OutputFormat("yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestSettingsService_SetOutputFormat_PreservesOtherSettings(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetDefaultType(domain.TargetTypeComment))
	require.NoError(t, service.SetOutputFormat(domain.OutputFormatJSON))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.TargetTypeComment, settings.DefaultType)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultAppSettings(), defaults)
}
