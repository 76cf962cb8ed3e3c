// Package chunkers splits cleaned text into positioned chunks.
//
// Four strategies are provided: sentence, paragraph, fixed-size
// windows with overlap, and semantic splitting that respects markdown
// heading boundaries. All positions are rune offsets into the cleaned
// text, so a chunk can always be mapped back to the exact source span
// it was cut from, CJK content included.
package chunkers
