// Package pipeline composes cleaning, chunking and quality gating into
// the full preprocessing run. Every stage is a pure function of its
// input, so the same raw content always yields the same result.
package pipeline

import (
	"unicode/utf8"

	"github.com/custodia-labs/prepress/internal/chunkers"
	"github.com/custodia-labs/prepress/internal/cleaners"
	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/profiles"
	"github.com/custodia-labs/prepress/internal/quality"
)

// Preprocess runs the complete preprocessing pipeline for the input's
// target type: clean the raw content, chunk the cleaned text, then gate
// every chunk. All chunks are returned, including failed ones, together
// with metadata describing each stage.
func Preprocess(input domain.PreprocessingInput) domain.PreprocessingResult {
	profile := profiles.For(input.TargetType)

	cleaned, applied := cleaners.Clean(input.RawContent, profile.Cleaning)
	cleaningMeta := cleaningMetadata(input.RawContent, cleaned, applied)

	chunks, chunkingMeta := chunkers.ChunkContent(cleaned, profile.Chunking)
	qualified := quality.GateChunks(chunks, profile.Quality)

	return domain.PreprocessingResult{
		Chunks: qualified,
		Metadata: domain.PreprocessingMetadata{
			TargetType: input.TargetType,
			Cleaning:   cleaningMeta,
			Chunking:   chunkingMeta,
			Quality:    quality.Summarise(qualified),
		},
	}
}

// PreprocessAndFilter runs Preprocess and drops failed chunks from the
// returned slice. Metadata still reflects the unfiltered run, so the
// quality summary reports what was removed and why the counts differ.
func PreprocessAndFilter(input domain.PreprocessingInput) domain.PreprocessingResult {
	result := Preprocess(input)

	kept := make([]domain.QualifiedChunk, 0, len(result.Chunks))
	for _, chunk := range result.Chunks {
		if chunk.Status != domain.ChunkStatusFailed {
			kept = append(kept, chunk)
		}
	}
	result.Chunks = kept

	return result
}

func cleaningMetadata(raw, cleaned string, applied []string) domain.CleaningMetadata {
	originalLength := utf8.RuneCountInString(raw)
	cleanedLength := utf8.RuneCountInString(cleaned)

	ratio := 0.0
	if originalLength > 0 {
		ratio = float64(originalLength-cleanedLength) / float64(originalLength)
	}

	return domain.CleaningMetadata{
		OriginalLength:  originalLength,
		CleanedLength:   cleanedLength,
		CleaningRatio:   ratio,
		CleanersApplied: applied,
	}
}
