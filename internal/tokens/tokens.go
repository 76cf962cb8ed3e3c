// Package tokens estimates embedding token costs without a model tokeniser.
package tokens

// Latin-script text averages ~4 characters per token. CJK ideographs
// carry more information per character and cost more tokens each, so
// the two scripts are counted separately and the estimates summed.
const (
	latinRunesPerToken = 4
	cjkTokensPerRune   = 1.5
)

// Estimate returns the approximate token count for text.
// It is deterministic, returns 0 for empty input, and never
// under-counts so badly that a budget check would let an oversized
// chunk through.
func Estimate(text string) int {
	if text == "" {
		return 0
	}

	var latin, cjk int
	for _, r := range text {
		if IsCJK(r) {
			cjk++
		} else {
			latin++
		}
	}

	return ceilDiv(latin, latinRunesPerToken) + ceilMul(cjk, cjkTokensPerRune)
}

// IsCJK reports whether the rune belongs to a CJK script.
// Covers the ideograph blocks plus Japanese kana and Korean hangul,
// which share the high per-character token cost.
func IsCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK Compatibility Ideographs
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // Hangul Syllables
		return true
	case r >= 0x1100 && r <= 0x11FF: // Hangul Jamo
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK Symbols and Punctuation
		return true
	}
	return false
}

// ceilDiv returns ceil(n / d) for positive d.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// ceilMul returns ceil(n * f) without drifting through float rounding
// for the half-token factor used here.
func ceilMul(n int, f float64) int {
	if n == 0 {
		return 0
	}
	product := float64(n) * f
	whole := int(product)
	if product > float64(whole) {
		whole++
	}
	return whole
}
