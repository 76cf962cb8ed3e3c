package chunkers

import (
	"testing"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

func TestExtractHeadings_Basic(t *testing.T) {
	text := "# Title\n\nintro text\n\n## Section One\n\nbody\n\n### Nested\n\nmore"
	got := ExtractHeadings(text)

	if len(got) != 3 {
		t.Fatalf("expected 3 headings, got %d: %v", len(got), got)
	}
	if got[0].Text != "Title" || got[0].Position != 0 {
		t.Errorf("heading 0: got %+v", got[0])
	}
	if got[1].Text != "Section One" {
		t.Errorf("heading 1: got %+v", got[1])
	}
	if got[2].Text != "Nested" {
		t.Errorf("heading 2: got %+v", got[2])
	}
}

func TestExtractHeadings_PositionsAscending(t *testing.T) {
	text := "preamble\n# A\nbody\n## B\nbody\n### C\n"
	got := ExtractHeadings(text)

	if len(got) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Position <= got[i-1].Position {
			t.Errorf("positions must ascend: %d then %d", got[i-1].Position, got[i].Position)
		}
	}
}

func TestExtractHeadings_PositionIsRuneOffset(t *testing.T) {
	// The CJK preamble occupies 4 runes plus a newline
	text := "你好世界\n# 标题\nbody"
	got := ExtractHeadings(text)

	if len(got) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(got))
	}
	if got[0].Position != 5 {
		t.Errorf("expected rune position 5, got %d", got[0].Position)
	}
	if got[0].Text != "标题" {
		t.Errorf("expected heading text 标题, got %q", got[0].Text)
	}
}

func TestExtractHeadings_NotHeadings(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no space after markers", "#heading"},
		{"seven markers", "####### too deep"},
		{"mid-line hash", "see issue #42 for details"},
		{"indented hash", "  # not at line start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHeadings(tt.text); len(got) != 0 {
				t.Errorf("expected no headings, got %v", got)
			}
		})
	}
}

func TestExtractHeadings_Empty(t *testing.T) {
	if got := ExtractHeadings(""); len(got) != 0 {
		t.Errorf("expected no headings for empty text, got %v", got)
	}
}

func TestHeadingContext_Basic(t *testing.T) {
	headings := []domain.HeadingMarker{
		{Text: "Intro", Position: 0},
		{Text: "Details", Position: 50},
		{Text: "Summary", Position: 120},
	}

	tests := []struct {
		position int
		want     string
	}{
		{0, "Intro"},
		{10, "Intro"},
		{50, "Details"},
		{119, "Details"},
		{120, "Summary"},
		{500, "Summary"},
	}

	for _, tt := range tests {
		if got := HeadingContext(headings, tt.position); got != tt.want {
			t.Errorf("position %d: expected %q, got %q", tt.position, tt.want, got)
		}
	}
}

func TestHeadingContext_BeforeFirstHeading(t *testing.T) {
	headings := []domain.HeadingMarker{
		{Text: "Late Heading", Position: 100},
	}

	// Content before any heading has no heading context
	if got := HeadingContext(headings, 40); got != "" {
		t.Errorf("expected empty context before the first heading, got %q", got)
	}
}

func TestHeadingContext_NoHeadings(t *testing.T) {
	if got := HeadingContext(nil, 10); got != "" {
		t.Errorf("expected empty context with no headings, got %q", got)
	}
}
