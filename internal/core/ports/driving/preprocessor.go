package driving

import (
	"context"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

// Preprocessor provides content preprocessing to external actors.
type Preprocessor interface {
	// Preprocess cleans, chunks and quality-gates raw content for the
	// given target type. All chunks are returned, including failed
	// ones. Returns domain.ErrUnknownTargetType for types outside the
	// profile registry.
	Preprocess(ctx context.Context, targetType, content string) (*domain.PreprocessingRun, error)

	// PreprocessForEmbedding runs Preprocess and drops failed chunks
	// from the run. The run metadata still reflects the unfiltered
	// counts.
	PreprocessForEmbedding(ctx context.Context, targetType, content string) (*domain.PreprocessingRun, error)

	// Dispatch submits the run's embeddable chunks to the configured
	// embedding service. Failed chunks are never submitted. Returns
	// domain.ErrEmbeddingUnavailable when no service is configured.
	Dispatch(ctx context.Context, run *domain.PreprocessingRun) (*domain.DispatchSummary, error)
}
