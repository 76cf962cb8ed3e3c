package domain

// ContentChunk represents a positioned segment of cleaned text.
// Chunks are the unit handed to the embedding service; positions let
// callers map a search hit back into the source text.
type ContentChunk struct {
	// Index is the 0-based ordinal of the chunk within its run.
	Index int

	// Text is the chunk content, a contiguous substring of the cleaned text.
	Text string

	// CharStart is the rune offset of the first character in the cleaned text.
	CharStart int

	// CharEnd is the rune offset one past the last character, so that
	// the cleaned text sliced by [CharStart, CharEnd) reproduces Text.
	CharEnd int

	// TokenCount is the estimated token cost of embedding this chunk.
	TokenCount int
}

// HeadingMarker records a markdown heading and where it occurs.
// Markers are produced in document order with ascending positions.
type HeadingMarker struct {
	// Text is the heading content with marker characters stripped.
	Text string

	// Position is the rune offset of the heading's first marker character.
	Position int
}

// ChunkStatus classifies a chunk after quality gating.
type ChunkStatus string

const (
	// ChunkStatusPassed marks a chunk that is valid, unique and scored
	// at or above the type's quality floor.
	ChunkStatusPassed ChunkStatus = "passed"
	// ChunkStatusIncomplete marks a valid, unique chunk whose score fell
	// below the quality floor. Usable, but flagged for review.
	ChunkStatusIncomplete ChunkStatus = "incomplete"
	// ChunkStatusFailed marks a chunk rejected as invalid or duplicate.
	// Failed chunks are never submitted for embedding.
	ChunkStatusFailed ChunkStatus = "failed"
)

// QualifiedChunk is a ContentChunk with its quality verdict attached.
type QualifiedChunk struct {
	ContentChunk

	// Status is the gate verdict: passed, incomplete or failed.
	Status ChunkStatus

	// Score is the computed quality score in [0, 1].
	Score float64

	// Reason explains a failed status ("duplicate", "too_short", ...).
	// Empty for passed and incomplete chunks.
	Reason string

	// Validity carries the full validation outcome and metrics.
	Validity ValidityResult
}

// ValidityMetrics are the measurements taken during validation.
// They are populated for every chunk, valid or not.
type ValidityMetrics struct {
	// CharCount is the chunk length in runes.
	CharCount int

	// WordCount is the number of words, counting CJK ideographs
	// individually.
	WordCount int

	// NoiseRatio is the share of runes that are neither letters nor digits.
	NoiseRatio float64
}

// ValidityResult is the outcome of validating a single chunk.
type ValidityResult struct {
	// IsValid is true when the chunk clears every validity check.
	IsValid bool

	// Reason names the first failed check ("too_noisy", "too_short",
	// "no_content"). Empty when IsValid.
	Reason string

	// Metrics holds the measurements behind the verdict.
	Metrics ValidityMetrics
}
