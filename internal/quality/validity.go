package quality

import (
	"unicode/utf8"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

// Rejection reasons carried on failed chunks.
const (
	// ReasonTooNoisy means the noise ratio exceeded the type's limit.
	ReasonTooNoisy = "too_noisy"
	// ReasonTooShort means the chunk is under the type's minimum length.
	ReasonTooShort = "too_short"
	// ReasonNoContent means the chunk has no countable words.
	ReasonNoContent = "no_content"
	// ReasonDuplicate means the chunk repeats an earlier one.
	ReasonDuplicate = "duplicate"
)

// CheckValidity measures a chunk and applies the validity checks in a
// fixed order: noise, then length, then word content. The first
// failure wins. Metrics are populated whatever the verdict, so
// rejected chunks can still be inspected.
func CheckValidity(chunk domain.ContentChunk, cfg domain.QualityGateConfig) domain.ValidityResult {
	metrics := domain.ValidityMetrics{
		CharCount:  utf8.RuneCountInString(chunk.Text),
		WordCount:  CountWords(chunk.Text),
		NoiseRatio: NoiseRatio(chunk.Text),
	}
	result := domain.ValidityResult{Metrics: metrics}

	switch {
	case metrics.NoiseRatio > cfg.MaxNoiseRatio:
		result.Reason = ReasonTooNoisy
	case metrics.CharCount < cfg.MinLength:
		result.Reason = ReasonTooShort
	case metrics.WordCount == 0:
		result.Reason = ReasonNoContent
	default:
		result.IsValid = true
	}
	return result
}
