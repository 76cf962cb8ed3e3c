package quality

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/tokens"
)

// Similarity returns the Jaccard similarity of the two texts' word
// sets in [0, 1]. Comparison is case-insensitive and ignores
// punctuation; CJK runes compare as single-rune words. Two texts with
// no words at all have nothing in common to measure and return 0.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// DetectDuplicates flags chunks that repeat earlier chunks. The first
// pass catches exact text repeats, the second flags near-duplicates
// whose similarity reaches the threshold. In every pair the LATER
// chunk is the duplicate; a first occurrence is never flagged.
func DetectDuplicates(chunks []domain.ContentChunk, threshold float64) map[int]bool {
	duplicates := make(map[int]bool)

	seen := make(map[string]bool, len(chunks))
	for i, chunk := range chunks {
		if seen[chunk.Text] {
			duplicates[i] = true
			continue
		}
		seen[chunk.Text] = true
	}

	for i := 0; i < len(chunks); i++ {
		for j := i + 1; j < len(chunks); j++ {
			if duplicates[j] {
				continue
			}
			if Similarity(chunks[i].Text, chunks[j].Text) >= threshold {
				duplicates[j] = true
			}
		}
	}

	return duplicates
}

// wordSet extracts the lowercased word set: maximal alphanumeric runs
// for spaced scripts, individual runes for CJK.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			set[strings.ToLower(current.String())] = true
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case tokens.IsCJK(r) && unicode.IsLetter(r):
			flush()
			set[string(r)] = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return set
}
