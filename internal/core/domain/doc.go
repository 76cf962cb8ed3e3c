// Package domain defines the core business entities for prepress.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentChunk: A positioned segment of cleaned text
//   - QualifiedChunk: A chunk with its quality verdict attached
//   - TargetType: The closed set of supported content types
//   - TypeProfile: Cleaning, chunking and quality settings per type
//   - PreprocessingResult: Chunks plus per-stage metadata for one run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
