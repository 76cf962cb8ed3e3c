package chunkers

import (
	"regexp"
	"strings"
)

// Sentence terminators, Latin and CJK. A run of terminators ends one
// sentence, so ellipses and "?!" stay attached to their sentence.
var sentenceTerminators = map[rune]bool{
	'.': true, '!': true, '?': true,
	'。': true, '！': true, '？': true,
}

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// SplitBySentences splits text at sentence boundaries. Each sentence
// keeps its terminators and is trimmed of surrounding whitespace.
// Text after the last terminator becomes a final sentence.
func SplitBySentences(text string) []string {
	runes := []rune(text)
	n := len(runes)

	var sentences []string
	start := 0
	i := 0
	for i < n {
		if !sentenceTerminators[runes[i]] {
			i++
			continue
		}
		for i < n && sentenceTerminators[runes[i]] {
			i++
		}
		if s := strings.TrimSpace(string(runes[start:i])); s != "" {
			sentences = append(sentences, s)
		}
		start = i
	}
	if start < n {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SplitByParagraphs splits text at blank lines. Paragraphs are trimmed
// and empty segments dropped, so any number of consecutive blank lines
// acts as a single boundary.
func SplitByParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range paragraphBreak.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// SplitByFixedSize cuts text into windows of size runes, consecutive
// windows sharing overlap runes. The final window may be shorter. Text
// no longer than size comes back as a single segment.
func SplitByFixedSize(text string, size, overlap int) []string {
	runes := []rune(text)
	wins := fixedWindows(len(runes), size, overlap)
	if wins == nil {
		return nil
	}

	parts := make([]string, 0, len(wins))
	for _, w := range wins {
		parts = append(parts, string(runes[w.start:w.end]))
	}
	return parts
}

// window is a half-open rune range [start, end).
type window struct {
	start, end int
}

// fixedWindows computes the window offsets for fixed-size splitting
// over n runes. Invalid overlap values are clamped the same way the
// window sizes are checked: overlap below zero becomes zero, overlap
// at or above size is reduced to size-1.
//
// The window that reaches the end of the text is the last one. Without
// that stop a trailing stub window would appear whose content is
// entirely contained in its predecessor.
func fixedWindows(n, size, overlap int) []window {
	if n == 0 || size <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	if n <= size {
		return []window{{0, n}}
	}

	step := size - overlap
	var wins []window
	for start := 0; start < n; start += step {
		end := start + size
		if end > n {
			end = n
		}
		wins = append(wins, window{start, end})
		if end == n {
			break
		}
	}
	return wins
}
