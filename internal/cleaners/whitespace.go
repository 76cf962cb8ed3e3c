package cleaners

import (
	"regexp"
	"strings"
)

var (
	wsMultiSpaces   = regexp.MustCompile(`[ \t]+`)
	wsLineTrailing  = regexp.MustCompile(`(?m)[ \t]+$`)
	wsMultiNewlines = regexp.MustCompile(`\n{3,}`)
	wsCarriage      = regexp.MustCompile(`\r\n?`)
)

// Whitespace collapses runs of spaces and blank lines. At most one
// blank line survives between paragraphs.
type Whitespace struct{}

// Name identifies the step in run metadata.
func (Whitespace) Name() string {
	return "whitespace"
}

// Apply normalises whitespace in text.
func (Whitespace) Apply(text string) string {
	// Normalise Windows and old Mac line endings first
	text = wsCarriage.ReplaceAllString(text, "\n")

	// Collapse runs of spaces and tabs
	text = wsMultiSpaces.ReplaceAllString(text, " ")

	// Drop trailing whitespace so blank-line detection is exact
	text = wsLineTrailing.ReplaceAllString(text, "")

	// Collapse runs of blank lines to a single paragraph break
	text = wsMultiNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
