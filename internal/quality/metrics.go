package quality

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/prepress/internal/tokens"
)

// NoiseRatio returns the share of runes that are neither letters nor
// digits. Whitespace counts as noise: a chunk of scattered characters
// separated by spaces is exactly the kind of content the ratio is
// meant to catch. Empty text is all noise and returns 1.
func NoiseRatio(text string) float64 {
	total := 0
	noise := 0
	for _, r := range text {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			noise++
		}
	}
	if total == 0 {
		return 1
	}
	return float64(noise) / float64(total)
}

// CountWords counts words in mixed-script text. CJK ideographs do not
// use spaces, so each CJK letter rune counts as one word; the rest of
// the text splits on whitespace and a token counts only if it has at
// least one letter or digit in it.
func CountWords(text string) int {
	count := 0
	var latin strings.Builder
	for _, r := range text {
		if tokens.IsCJK(r) && unicode.IsLetter(r) {
			count++
			latin.WriteRune(' ')
			continue
		}
		latin.WriteRune(r)
	}

	for _, token := range strings.Fields(latin.String()) {
		if containsAlphanumeric(token) {
			count++
		}
	}
	return count
}

// IsPurelyPunctuation reports whether text has no letter or digit
// runes at all. True for empty and whitespace-only text.
func IsPurelyPunctuation(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
