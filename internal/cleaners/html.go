package cleaners

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML stripping performance.
var (
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag           = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag            = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	htmlMultiSpaces   = regexp.MustCompile(`[ \t]+`)
	htmlMultiNewlines = regexp.MustCompile(`\n{3,}`)
)

// HTML strips tags and decodes entities, leaving readable text.
// Block elements become line breaks so paragraph boundaries survive
// into the chunking stage.
type HTML struct{}

// Name identifies the step in run metadata.
func (HTML) Name() string {
	return "html"
}

// Apply removes HTML markup from text.
func (HTML) Apply(text string) string {
	// Remove script, style, noscript, head, and svg tags entirely
	text = scriptTag.ReplaceAllString(text, "")
	text = styleTag.ReplaceAllString(text, "")
	text = noscriptTag.ReplaceAllString(text, "")
	text = headTag.ReplaceAllString(text, "")
	text = svgTag.ReplaceAllString(text, "")

	// Remove HTML comments
	text = htmlComments.ReplaceAllString(text, "")

	// Turn block element boundaries into newlines
	text = openBlockElements.ReplaceAllString(text, "\n")
	text = blockElements.ReplaceAllString(text, "\n")

	// Convert <br> and <hr> to newlines
	text = brTags.ReplaceAllString(text, "\n")
	text = hrTags.ReplaceAllString(text, "\n")

	// Strip all remaining HTML tags
	text = allTags.ReplaceAllString(text, "")

	// Decode HTML entities
	text = html.UnescapeString(text)

	// Collapse runs of spaces, keep newlines
	text = htmlMultiSpaces.ReplaceAllString(text, " ")

	// Collapse runs of blank lines to a single paragraph break
	text = htmlMultiNewlines.ReplaceAllString(text, "\n\n")

	// Trim each line but keep blank lines: they mark paragraphs
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = htmlMultiNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
