package domain

// SplitStrategy selects how cleaned text is divided into chunks.
type SplitStrategy string

const (
	// SplitBySentence cuts at sentence terminators, Latin and CJK.
	SplitBySentence SplitStrategy = "sentence"
	// SplitByParagraph cuts at blank-line boundaries.
	SplitByParagraph SplitStrategy = "paragraph"
	// SplitByFixed cuts fixed-size character windows with overlap.
	SplitByFixed SplitStrategy = "fixed"
	// SplitBySemantic keeps heading-bounded sections together where
	// the token budget allows, falling back to smaller units.
	SplitBySemantic SplitStrategy = "semantic"
)

// CleaningConfig controls which cleaning steps run on raw content.
type CleaningConfig struct {
	// StripHTML removes tags, scripts, styles and decodes entities.
	StripHTML bool

	// StripMarkdown removes inline markup while preserving heading
	// markers, which later stages use as structural boundaries.
	StripMarkdown bool

	// NormaliseWhitespace collapses runs of spaces and blank lines.
	NormaliseWhitespace bool
}

// ChunkingConfig controls how cleaned text is split into chunks.
type ChunkingConfig struct {
	// TargetSize is the preferred chunk size in characters.
	TargetSize int

	// MaxSize is the token budget a chunk should not exceed. The
	// semantic strategy uses it to decide when a unit must be split.
	MaxSize int

	// Overlap is the number of characters shared between consecutive
	// chunks under the fixed strategy. Must be smaller than TargetSize.
	Overlap int

	// SplitBy selects the splitting strategy.
	SplitBy SplitStrategy

	// UseHeadingsAsBoundary makes the semantic strategy cut sections
	// at markdown headings.
	UseHeadingsAsBoundary bool
}

// QualityGateConfig sets the acceptance thresholds for chunks.
type QualityGateConfig struct {
	// MinLength is the minimum chunk length in runes.
	MinLength int

	// MaxNoiseRatio is the highest tolerated share of non-alphanumeric
	// runes before a chunk is rejected as noise.
	MaxNoiseRatio float64

	// MinQualityScore is the floor below which a valid chunk is
	// marked incomplete rather than passed.
	MinQualityScore float64

	// SimilarityThreshold is the Jaccard similarity at or above which
	// a later chunk counts as a duplicate of an earlier one.
	SimilarityThreshold float64
}

// TypeProfile bundles the per-type settings for one target type.
type TypeProfile struct {
	// Cleaning selects the cleaning steps for this type.
	Cleaning CleaningConfig

	// Chunking selects strategy and sizing for this type.
	Chunking ChunkingConfig

	// Quality sets the gate thresholds for this type.
	Quality QualityGateConfig
}
