package cleaners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

func TestClean_AllSteps(t *testing.T) {
	cfg := domain.CleaningConfig{
		StripHTML:           true,
		StripMarkdown:       true,
		NormaliseWhitespace: true,
	}

	cleaned, applied := Clean("<p>Solid **oak** desk.</p>", cfg)

	assert.Equal(t, "Solid oak desk.", cleaned)
	assert.Equal(t, []string{"html", "markdown", "whitespace"}, applied)
}

func TestClean_NoSteps(t *testing.T) {
	cleaned, applied := Clean("<b>unchanged</b>", domain.CleaningConfig{})

	assert.Equal(t, "<b>unchanged</b>", cleaned)
	assert.Empty(t, applied)
}

func TestClean_StepOrderIsFixed(t *testing.T) {
	cfg := domain.CleaningConfig{
		StripHTML:           true,
		StripMarkdown:       true,
		NormaliseWhitespace: true,
	}

	// HTML entities decode before the markdown step sees the text, so
	// &#42;&#42; becomes ** and is stripped as a bold marker.
	cleaned, applied := Clean("warm &#42;&#42;wool&#42;&#42; blanket", cfg)

	require.Equal(t, []string{"html", "markdown", "whitespace"}, applied)
	assert.Equal(t, "warm wool blanket", cleaned)
}

func TestClean_Deterministic(t *testing.T) {
	cfg := domain.CleaningConfig{StripHTML: true, NormaliseWhitespace: true}
	input := "<div>Ceramic   vase</div>\n\n\n<div>hand glazed</div>"

	first, _ := Clean(input, cfg)
	second, _ := Clean(input, cfg)

	assert.Equal(t, first, second)
}

func TestHTML_Apply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips simple tags",
			input:    "<p>Hello World</p>",
			expected: "Hello World",
		},
		{
			name:     "removes script content entirely",
			input:    "<p>visible</p><script>alert('x')</script>",
			expected: "visible",
		},
		{
			name:     "removes style content entirely",
			input:    "<style>p { color: red }</style><p>text</p>",
			expected: "text",
		},
		{
			name:     "removes comments",
			input:    "before<!-- hidden -->after",
			expected: "beforeafter",
		},
		{
			name:     "decodes entities",
			input:    "<p>Tom &amp; Jerry &lt;3</p>",
			expected: "Tom & Jerry <3",
		},
		{
			name:     "block elements become paragraph breaks",
			input:    "<p>first</p><p>second</p>",
			expected: "first\n\nsecond",
		},
		{
			name:     "br becomes line break",
			input:    "line one<br/>line two",
			expected: "line one\nline two",
		},
		{
			name:     "collapses runs of spaces",
			input:    "<p>too     many   spaces</p>",
			expected: "too many spaces",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "unclosed tag dropped without panic",
			input:    "<p>dangling",
			expected: "dangling",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTML{}.Apply(tc.input))
		})
	}
}

func TestMarkdown_Apply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips bold and italic",
			input:    "some **bold** and *italic* text",
			expected: "some bold and italic text",
		},
		{
			name:     "keeps link text drops url",
			input:    "see [the docs](https://example.com) here",
			expected: "see the docs here",
		},
		{
			name:     "removes images entirely",
			input:    "before ![alt text](img.png) after",
			expected: "before  after",
		},
		{
			name:     "removes code blocks",
			input:    "intro\n```\ncode here\n```\noutro",
			expected: "intro\n\noutro",
		},
		{
			name:     "removes inline code",
			input:    "run `go build` now",
			expected: "run  now",
		},
		{
			name:     "preserves heading markers",
			input:    "## Features\n\nGreat stuff.",
			expected: "## Features\n\nGreat stuff.",
		},
		{
			name:     "removes list markers",
			input:    "- first\n- second\n1. third",
			expected: "first\nsecond\nthird",
		},
		{
			name:     "removes blockquote markers",
			input:    "> quoted line",
			expected: "quoted line",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Markdown{}.Apply(tc.input))
		})
	}
}

// Heading markers must survive every cleaning profile so the semantic
// chunker can still find section boundaries.
func TestMarkdown_HeadingsSurviveAllLevels(t *testing.T) {
	input := "# One\n## Two\n### Three\n#### Four\n##### Five\n###### Six"
	assert.Equal(t, input, Markdown{}.Apply(input))
}

func TestWhitespace_Apply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses spaces and tabs",
			input:    "too \t many    spaces",
			expected: "too many spaces",
		},
		{
			name:     "collapses blank lines",
			input:    "para one\n\n\n\n\npara two",
			expected: "para one\n\npara two",
		},
		{
			name:     "keeps single paragraph break",
			input:    "para one\n\npara two",
			expected: "para one\n\npara two",
		},
		{
			name:     "normalises crlf",
			input:    "line one\r\nline two",
			expected: "line one\nline two",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "   padded   ",
			expected: "padded",
		},
		{
			name:     "whitespace only becomes empty",
			input:    " \t\n  \n ",
			expected: "",
		},
		{
			name:     "blank line with spaces still a paragraph break",
			input:    "one\n   \ntwo",
			expected: "one\n\ntwo",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Whitespace{}.Apply(tc.input))
		})
	}
}

func TestClean_CJKContentSurvives(t *testing.T) {
	cfg := domain.CleaningConfig{
		StripHTML:           true,
		StripMarkdown:       true,
		NormaliseWhitespace: true,
	}

	cleaned, _ := Clean("<p>这款产品采用**优质材料**制作。</p>", cfg)

	assert.Equal(t, "这款产品采用优质材料制作。", cleaned)
}
