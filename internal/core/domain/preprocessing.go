package domain

// PreprocessingInput is one piece of raw platform content to process.
type PreprocessingInput struct {
	// TargetType selects the preprocessing profile.
	TargetType TargetType

	// RawContent is the text exactly as stored, markup included.
	RawContent string
}

// CleaningMetadata records what cleaning did to the raw content.
type CleaningMetadata struct {
	// OriginalLength is the raw content length in runes.
	OriginalLength int

	// CleanedLength is the cleaned content length in runes.
	CleanedLength int

	// CleaningRatio is the share of content removed by cleaning,
	// (original - cleaned) / original. Zero for empty input.
	CleaningRatio float64

	// CleanersApplied names the cleaning steps that ran, in order.
	CleanersApplied []string
}

// ChunkingMetadata records how the cleaned content was chunked.
type ChunkingMetadata struct {
	// TotalChunks is the number of chunks produced.
	TotalChunks int

	// Strategy is the splitting strategy that ran.
	Strategy SplitStrategy

	// OriginalLength is the cleaned content length in runes.
	OriginalLength int
}

// QualitySummary aggregates the gate verdicts for one run.
// Total always equals Passed + Incomplete + Failed.
type QualitySummary struct {
	// Total is the number of chunks gated.
	Total int

	// Passed counts chunks accepted outright.
	Passed int

	// Incomplete counts valid chunks below the quality floor.
	Incomplete int

	// Failed counts rejected chunks, duplicates included.
	Failed int
}

// PreprocessingMetadata carries the per-stage records for one run.
type PreprocessingMetadata struct {
	// TargetType is the profile the run used.
	TargetType TargetType

	// Cleaning describes the cleaning stage.
	Cleaning CleaningMetadata

	// Chunking describes the chunking stage.
	Chunking ChunkingMetadata

	// Quality summarises the gate verdicts before any filtering.
	Quality QualitySummary
}

// PreprocessingResult is the complete output of one preprocessing run.
type PreprocessingResult struct {
	// Chunks are the qualified chunks in document order.
	Chunks []QualifiedChunk

	// Metadata records what each stage did.
	Metadata PreprocessingMetadata
}

// PreprocessingRun is a service-level record of one pipeline execution.
// The result inside is a pure function of the input; the ID is minted
// per execution for logs and downstream tracking.
type PreprocessingRun struct {
	// ID uniquely identifies this execution.
	ID string

	// Input is the raw content and target type that were processed.
	Input PreprocessingInput

	// Result is the pipeline output for the input.
	Result PreprocessingResult
}

// DispatchSummary reports a hand-off of embeddable chunks to an
// embedding service.
type DispatchSummary struct {
	// RunID is the preprocessing run the chunks came from.
	RunID string

	// Submitted is the number of chunks sent for embedding.
	Submitted int

	// Skipped is the number of chunks withheld, failed ones included.
	Skipped int

	// Dimensions is the embedding vector size reported by the service.
	Dimensions int

	// Model is the embedding model name reported by the service.
	Model string
}
