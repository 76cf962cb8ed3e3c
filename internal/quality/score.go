package quality

import (
	"unicode/utf8"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

// Weights for the two score components.
const (
	lengthWeight = 0.6
	noiseWeight  = 0.4
)

// Score computes a quality score in [0, 1] from two signals: how
// adequate the chunk's length is and how clean its text is. Length
// adequacy saturates at twice the type's minimum length, so very long
// chunks stop earning extra credit.
func Score(chunk domain.ContentChunk, cfg domain.QualityGateConfig) float64 {
	adequacy := 1.0
	if cfg.MinLength > 0 {
		chars := utf8.RuneCountInString(chunk.Text)
		adequacy = float64(chars) / float64(2*cfg.MinLength)
		if adequacy > 1 {
			adequacy = 1
		}
	}

	cleanliness := 1 - NoiseRatio(chunk.Text)

	return lengthWeight*adequacy + noiseWeight*cleanliness
}
