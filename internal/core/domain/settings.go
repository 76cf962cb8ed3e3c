package domain

const unknownDescription = "Unknown"

// OutputFormat defines how CLI commands render their results.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatTable renders results as an aligned table.
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON renders results as indented JSON.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatText renders chunk texts separated by blank lines.
	OutputFormatText OutputFormat = "text"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatText:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatTable:
		return "Table (aligned columns)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	case OutputFormatText:
		return "Text (chunk bodies only)"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatTable,
		OutputFormatJSON,
		OutputFormatText,
	}
}

// OutputSettings holds CLI rendering preferences.
type OutputSettings struct {
	// Format is the default rendering format.
	Format OutputFormat

	// Colour enables styled terminal output. Ignored when stdout
	// is not a terminal.
	Colour bool
}

// AppSettings holds all tool settings.
type AppSettings struct {
	// DefaultType is the target type assumed when --type is omitted.
	DefaultType TargetType

	// Output holds rendering preferences.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultType: TargetTypePost,
		Output: OutputSettings{
			Format: OutputFormatTable,
			Colour: true,
		},
	}
}
