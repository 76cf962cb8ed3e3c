package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOutputFormat_IsValid tests all valid and invalid output formats
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{
			name:     "table is valid",
			format:   OutputFormatTable,
			expected: true,
		},
		{
			name:     "json is valid",
			format:   OutputFormatJSON,
			expected: true,
		},
		{
			name:     "text is valid",
			format:   OutputFormatText,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			format:   OutputFormat(""),
			expected: false,
		},
		{
			name:     "unknown format is invalid",
			format:   OutputFormat("yaml"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

// TestOutputFormat_Description tests human-readable descriptions
func TestOutputFormat_Description(t *testing.T) {
	for _, format := range AllOutputFormats() {
		assert.NotEqual(t, unknownDescription, format.Description())
		assert.NotEmpty(t, format.Description())
	}
	assert.Equal(t, unknownDescription, OutputFormat("yaml").Description())
}

// TestDefaultAppSettings tests that defaults are valid and usable
func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	require.True(t, settings.DefaultType.IsValid())
	require.True(t, settings.Output.Format.IsValid())
	assert.Equal(t, TargetTypePost, settings.DefaultType)
	assert.Equal(t, OutputFormatTable, settings.Output.Format)
	assert.True(t, settings.Output.Colour)
}
