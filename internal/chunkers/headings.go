package chunkers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

// ATX headings only: one to six marker characters at line start
// followed by whitespace.
var headingLine = regexp.MustCompile(`^#{1,6}\s+(.*)$`)

// ExtractHeadings returns the markdown headings in text, in document
// order. Position is the rune offset of the line's first marker
// character; Text has the markers stripped.
func ExtractHeadings(text string) []domain.HeadingMarker {
	var headings []domain.HeadingMarker

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		if m := headingLine.FindStringSubmatch(line); m != nil {
			headings = append(headings, domain.HeadingMarker{
				Text:     strings.TrimSpace(m[1]),
				Position: offset,
			})
		}
		offset += utf8.RuneCountInString(line) + 1
	}
	return headings
}

// HeadingContext returns the text of the nearest heading at or before
// position. Positions that precede every heading get an empty string:
// content before the first heading has no heading context.
func HeadingContext(headings []domain.HeadingMarker, position int) string {
	context := ""
	for _, h := range headings {
		if h.Position > position {
			break
		}
		context = h.Text
	}
	return context
}
