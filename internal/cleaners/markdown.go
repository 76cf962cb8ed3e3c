package cleaners

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for markdown stripping.
// There is no heading pattern here on purpose: heading markers are
// structural boundaries and must survive cleaning.
var (
	codeBlock      = regexp.MustCompile("(?s)```[^`]*```")
	inlineCode     = regexp.MustCompile("`[^`]+`")
	mdImages       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLinks        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	blockquote     = regexp.MustCompile(`(?m)^>\s*`)
	horizontalRule = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkers    = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedList   = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	mdMultiNewline = regexp.MustCompile(`\n{3,}`)
)

// Markdown removes inline markup while keeping the document structure:
// heading lines keep their markers, paragraph breaks keep their blank
// lines.
type Markdown struct{}

// Name identifies the step in run metadata.
func (Markdown) Name() string {
	return "markdown"
}

// Apply removes markdown formatting from text.
func (Markdown) Apply(text string) string {
	// Remove code blocks (```...```) and inline code (`code`)
	text = codeBlock.ReplaceAllString(text, "")
	text = inlineCode.ReplaceAllString(text, "")

	// Remove images ![alt](url)
	text = mdImages.ReplaceAllString(text, "")

	// Convert links [text](url) to just text
	text = mdLinks.ReplaceAllString(text, "$1")

	// Remove bold/italic markers
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")

	// Remove blockquote markers
	text = blockquote.ReplaceAllString(text, "")

	// Remove horizontal rules
	text = horizontalRule.ReplaceAllString(text, "")

	// Remove list markers (- * + and numbered)
	text = listMarkers.ReplaceAllString(text, "")
	text = numberedList.ReplaceAllString(text, "")

	// Remove remaining single emphasis markers
	text = strings.ReplaceAll(text, "*", "")

	// Collapse runs of blank lines
	text = mdMultiNewline.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
