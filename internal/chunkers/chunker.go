package chunkers

import (
	"strings"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/profiles"
	"github.com/custodia-labs/prepress/internal/tokens"
)

// Fallbacks for zero-valued configs. Profiles always set explicit
// values; these only matter for direct library use.
const (
	// DefaultTargetSize is the window size in runes.
	DefaultTargetSize = 800
	// DefaultMaxTokens is the token budget for semantic splitting.
	DefaultMaxTokens = 512
)

// ChunkContent splits cleaned text into positioned chunks using the
// strategy in cfg. Every chunk's CharStart and CharEnd are rune
// offsets into text, and slicing text by them reproduces the chunk.
// Indices are sequential from zero. Empty or whitespace-only text
// yields no chunks.
func ChunkContent(text string, cfg domain.ChunkingConfig) ([]domain.ContentChunk, domain.ChunkingMetadata) {
	runes := []rune(text)
	meta := domain.ChunkingMetadata{
		Strategy:       cfg.SplitBy,
		OriginalLength: len(runes),
	}

	if strings.TrimSpace(text) == "" {
		return nil, meta
	}

	var chunks []domain.ContentChunk
	if cfg.SplitBy == domain.SplitByFixed {
		chunks = fixedChunks(runes, cfg)
	} else {
		chunks = locateSegments(runes, segmentsFor(text, cfg))
	}

	meta.TotalChunks = len(chunks)
	return chunks, meta
}

// ChunkContentForType chunks text with the registered profile for the
// given target type.
func ChunkContentForType(text string, target domain.TargetType) ([]domain.ContentChunk, domain.ChunkingMetadata) {
	return ChunkContent(text, profiles.ChunkingFor(target))
}

// segmentsFor dispatches to the splitting strategy. Unrecognised
// strategies split by paragraph.
func segmentsFor(text string, cfg domain.ChunkingConfig) []string {
	switch cfg.SplitBy {
	case domain.SplitBySentence:
		return SplitBySentences(text)
	case domain.SplitBySemantic:
		return SplitBySemantic(text, cfg)
	default:
		return SplitByParagraphs(text)
	}
}

// fixedChunks builds chunks from window offsets directly. Fixed
// windows overlap, and on repetitive text a substring search would
// anchor a window before its true position, so the analytic offsets
// are the only reliable source.
func fixedChunks(runes []rune, cfg domain.ChunkingConfig) []domain.ContentChunk {
	size := cfg.TargetSize
	if size <= 0 {
		size = DefaultTargetSize
	}

	wins := fixedWindows(len(runes), size, cfg.Overlap)
	chunks := make([]domain.ContentChunk, 0, len(wins))
	for _, w := range wins {
		text := string(runes[w.start:w.end])
		chunks = append(chunks, domain.ContentChunk{
			Index:      len(chunks),
			Text:       text,
			CharStart:  w.start,
			CharEnd:    w.end,
			TokenCount: tokens.Estimate(text),
		})
	}
	return chunks
}

// locateSegments resolves each segment's position in the source text.
// Segments arrive trimmed but in document order, so the search for
// each one resumes where the previous chunk ended.
func locateSegments(runes []rune, segments []string) []domain.ContentChunk {
	var chunks []domain.ContentChunk
	searchFrom := 0
	for _, seg := range segments {
		segRunes := []rune(seg)
		if len(segRunes) == 0 {
			continue
		}

		start := indexRunes(runes, segRunes, searchFrom)
		if start < 0 {
			continue
		}
		end := start + len(segRunes)

		chunks = append(chunks, domain.ContentChunk{
			Index:      len(chunks),
			Text:       seg,
			CharStart:  start,
			CharEnd:    end,
			TokenCount: tokens.Estimate(seg),
		})
		searchFrom = end
	}
	return chunks
}

// indexRunes returns the rune offset of the first occurrence of
// needle in haystack at or after from, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

func matchAt(haystack, needle []rune, at int) bool {
	for j, r := range needle {
		if haystack[at+j] != r {
			return false
		}
	}
	return true
}
