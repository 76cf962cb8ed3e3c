package chunkers

import (
	"strings"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/tokens"
)

// SplitBySemantic keeps related content together. Text within the
// token budget stays whole. Oversized text splits at heading
// boundaries when cfg.UseHeadingsAsBoundary is set and headings exist,
// each section keeping its heading line. Sections still over budget
// fall back to paragraphs, and a single oversized paragraph is cut
// into plain target-size windows with no overlap.
//
// The fallback order is fixed so the same input always produces the
// same segments.
func SplitBySemantic(text string, cfg domain.ChunkingConfig) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	budget := cfg.MaxSize
	if budget <= 0 {
		budget = DefaultMaxTokens
	}

	if tokens.Estimate(trimmed) <= budget {
		return []string{trimmed}
	}

	var sections []string
	if cfg.UseHeadingsAsBoundary {
		sections = headingSections(text)
	}
	if len(sections) == 0 {
		sections = []string{trimmed}
	}

	var out []string
	for _, section := range sections {
		out = append(out, splitOversized(section, cfg, budget)...)
	}
	return out
}

// headingSections cuts text into heading-bounded sections. A section
// runs from its heading line to the next heading (or end of text), and
// any preamble before the first heading is its own section. Returns
// nil when the text has no headings.
func headingSections(text string) []string {
	headings := ExtractHeadings(text)
	if len(headings) == 0 {
		return nil
	}

	runes := []rune(text)
	var sections []string
	prev := 0
	for _, h := range headings {
		if h.Position > prev {
			if s := strings.TrimSpace(string(runes[prev:h.Position])); s != "" {
				sections = append(sections, s)
			}
		}
		prev = h.Position
	}
	if s := strings.TrimSpace(string(runes[prev:])); s != "" {
		sections = append(sections, s)
	}
	return sections
}

// splitOversized reduces a section to segments within the token
// budget: whole section, then paragraphs, then fixed windows.
func splitOversized(section string, cfg domain.ChunkingConfig, budget int) []string {
	if tokens.Estimate(section) <= budget {
		return []string{section}
	}

	size := cfg.TargetSize
	if size <= 0 {
		size = DefaultTargetSize
	}

	var out []string
	for _, para := range SplitByParagraphs(section) {
		if tokens.Estimate(para) <= budget {
			out = append(out, para)
			continue
		}
		out = append(out, SplitByFixedSize(para, size, 0)...)
	}
	return out
}
