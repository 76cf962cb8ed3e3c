package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTargetType indicates a target type outside the closed
	// set of supported content types. Callers must validate with
	// ParseTargetType before reaching the pipeline.
	ErrUnknownTargetType = errors.New("unknown target type")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Chunk dispatch is disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
