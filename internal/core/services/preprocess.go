package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/prepress/internal/core/domain"
	"github.com/custodia-labs/prepress/internal/core/ports/driven"
	"github.com/custodia-labs/prepress/internal/core/ports/driving"
	"github.com/custodia-labs/prepress/internal/logger"
	"github.com/custodia-labs/prepress/internal/pipeline"
)

// Ensure PreprocessService implements the interface.
var _ driving.Preprocessor = (*PreprocessService)(nil)

// PreprocessService runs the preprocessing pipeline for external actors.
type PreprocessService struct {
	embedder driven.EmbeddingService
}

// NewPreprocessService creates a new preprocess service.
// The embedder parameter is optional (can be nil); without it Dispatch
// returns domain.ErrEmbeddingUnavailable.
func NewPreprocessService(embedder driven.EmbeddingService) *PreprocessService {
	return &PreprocessService{
		embedder: embedder,
	}
}

// Preprocess cleans, chunks and quality-gates raw content for the
// given target type.
func (s *PreprocessService) Preprocess(
	ctx context.Context, targetType, content string,
) (*domain.PreprocessingRun, error) {
	return s.run(targetType, content, false)
}

// PreprocessForEmbedding runs the pipeline and drops failed chunks
// from the run, keeping only what is eligible for embedding.
func (s *PreprocessService) PreprocessForEmbedding(
	ctx context.Context, targetType, content string,
) (*domain.PreprocessingRun, error) {
	return s.run(targetType, content, true)
}

func (s *PreprocessService) run(targetType, content string, filtered bool) (*domain.PreprocessingRun, error) {
	logger.Section("Preprocessing")
	logger.Debug("Target type: %q, content: %d bytes", targetType, len(content))

	target, err := domain.ParseTargetType(targetType)
	if err != nil {
		logger.Warn("Rejected target type %q", targetType)
		return nil, fmt.Errorf("parse target type: %w", err)
	}

	input := domain.PreprocessingInput{
		TargetType: target,
		RawContent: content,
	}

	var result domain.PreprocessingResult
	if filtered {
		result = pipeline.PreprocessAndFilter(input)
	} else {
		result = pipeline.Preprocess(input)
	}

	run := &domain.PreprocessingRun{
		ID:     uuid.New().String(),
		Input:  input,
		Result: result,
	}

	logger.Debug("Run %s: cleaned %d -> %d runes, %d chunks",
		run.ID,
		result.Metadata.Cleaning.OriginalLength,
		result.Metadata.Cleaning.CleanedLength,
		result.Metadata.Chunking.TotalChunks)
	logger.Info("Quality: %d passed, %d incomplete, %d failed",
		result.Metadata.Quality.Passed,
		result.Metadata.Quality.Incomplete,
		result.Metadata.Quality.Failed)

	return run, nil
}

// Dispatch submits the run's embeddable chunks to the embedding
// service. Chunks that failed the quality gate are never submitted.
func (s *PreprocessService) Dispatch(
	ctx context.Context, run *domain.PreprocessingRun,
) (*domain.DispatchSummary, error) {
	if run == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.embedder == nil {
		logger.Warn("Dispatch unavailable: embedding service is nil")
		return nil, domain.ErrEmbeddingUnavailable
	}

	logger.Section("Embedding Dispatch")

	texts := make([]string, 0, len(run.Result.Chunks))
	skipped := 0
	for _, chunk := range run.Result.Chunks {
		if chunk.Status == domain.ChunkStatusFailed {
			skipped++
			continue
		}
		texts = append(texts, chunk.Text)
	}
	logger.Debug("Run %s: %d embeddable chunks, %d skipped", run.ID, len(texts), skipped)

	summary := &domain.DispatchSummary{
		RunID:      run.ID,
		Skipped:    skipped,
		Dimensions: s.embedder.Dimensions(),
		Model:      s.embedder.ModelName(),
	}

	if len(texts) == 0 {
		logger.Info("Nothing to dispatch")
		return summary, nil
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		logger.Warn("Embedding dispatch failed: %v", err)
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d chunks", len(vectors), len(texts))
	}

	summary.Submitted = len(texts)
	logger.Info("Dispatched %d chunks to %s", summary.Submitted, summary.Model)

	return summary, nil
}
