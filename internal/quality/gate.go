package quality

import "github.com/custodia-labs/prepress/internal/core/domain"

// QualifyChunk attaches a gate verdict to one chunk. Duplicates and
// invalid chunks fail; valid chunks below the type's quality floor
// are incomplete; everything else passes. The score and validity
// metrics are attached whatever the verdict.
func QualifyChunk(chunk domain.ContentChunk, cfg domain.QualityGateConfig, isDuplicate bool) domain.QualifiedChunk {
	validity := CheckValidity(chunk, cfg)
	score := Score(chunk, cfg)

	qualified := domain.QualifiedChunk{
		ContentChunk: chunk,
		Score:        score,
		Validity:     validity,
	}

	switch {
	case isDuplicate:
		qualified.Status = domain.ChunkStatusFailed
		qualified.Reason = ReasonDuplicate
	case !validity.IsValid:
		qualified.Status = domain.ChunkStatusFailed
		qualified.Reason = validity.Reason
	case score < cfg.MinQualityScore:
		qualified.Status = domain.ChunkStatusIncomplete
	default:
		qualified.Status = domain.ChunkStatusPassed
	}

	return qualified
}

// GateChunks qualifies a whole run of chunks. Duplicate detection
// sees the full set before any chunk is judged, so a later duplicate
// fails even when the chunk it repeats also failed for its own
// reasons. Order and indices are preserved.
func GateChunks(chunks []domain.ContentChunk, cfg domain.QualityGateConfig) []domain.QualifiedChunk {
	duplicates := DetectDuplicates(chunks, cfg.SimilarityThreshold)

	qualified := make([]domain.QualifiedChunk, 0, len(chunks))
	for i, chunk := range chunks {
		qualified = append(qualified, QualifyChunk(chunk, cfg, duplicates[i]))
	}
	return qualified
}

// Summarise tallies verdicts for run metadata. Total always equals
// the sum of the three buckets.
func Summarise(qualified []domain.QualifiedChunk) domain.QualitySummary {
	summary := domain.QualitySummary{Total: len(qualified)}
	for _, q := range qualified {
		switch q.Status {
		case domain.ChunkStatusPassed:
			summary.Passed++
		case domain.ChunkStatusIncomplete:
			summary.Incomplete++
		case domain.ChunkStatusFailed:
			summary.Failed++
		}
	}
	return summary
}
