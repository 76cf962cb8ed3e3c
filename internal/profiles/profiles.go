// Package profiles is the closed registry of per-type preprocessing
// settings. Each supported target type maps to a cleaning, chunking
// and quality configuration tuned for that kind of content.
//
// The registry is static: profiles are data, not user configuration,
// and changing them is a code change with review.
package profiles

import "github.com/custodia-labs/prepress/internal/core/domain"

// typeProfiles maps every supported target type to its settings.
//
// Products are marketing copy split per sentence. Posts are long-form
// markdown kept whole per section. Gallery items are short captions
// split per paragraph. Comments are informal, noisy and repetitive,
// so they get fixed windows, lax noise limits and the most aggressive
// duplicate detection.
var typeProfiles = map[domain.TargetType]domain.TypeProfile{
	domain.TargetTypeProduct: {
		Cleaning: domain.CleaningConfig{
			StripHTML:           true,
			StripMarkdown:       true,
			NormaliseWhitespace: true,
		},
		Chunking: domain.ChunkingConfig{
			TargetSize: 300,
			MaxSize:    256,
			Overlap:    0,
			SplitBy:    domain.SplitBySentence,
		},
		Quality: domain.QualityGateConfig{
			MinLength:           30,
			MaxNoiseRatio:       0.4,
			MinQualityScore:     0.5,
			SimilarityThreshold: 0.9,
		},
	},
	domain.TargetTypePost: {
		Cleaning: domain.CleaningConfig{
			StripHTML:           true,
			StripMarkdown:       true,
			NormaliseWhitespace: true,
		},
		Chunking: domain.ChunkingConfig{
			TargetSize:            800,
			MaxSize:               512,
			Overlap:               0,
			SplitBy:               domain.SplitBySemantic,
			UseHeadingsAsBoundary: true,
		},
		Quality: domain.QualityGateConfig{
			MinLength:           50,
			MaxNoiseRatio:       0.4,
			MinQualityScore:     0.5,
			SimilarityThreshold: 0.9,
		},
	},
	domain.TargetTypeGalleryItem: {
		Cleaning: domain.CleaningConfig{
			StripHTML:           true,
			StripMarkdown:       true,
			NormaliseWhitespace: true,
		},
		Chunking: domain.ChunkingConfig{
			TargetSize: 400,
			MaxSize:    256,
			Overlap:    0,
			SplitBy:    domain.SplitByParagraph,
		},
		Quality: domain.QualityGateConfig{
			MinLength:           15,
			MaxNoiseRatio:       0.5,
			MinQualityScore:     0.4,
			SimilarityThreshold: 0.9,
		},
	},
	domain.TargetTypeComment: {
		Cleaning: domain.CleaningConfig{
			StripHTML:           true,
			StripMarkdown:       false,
			NormaliseWhitespace: true,
		},
		Chunking: domain.ChunkingConfig{
			TargetSize: 240,
			MaxSize:    128,
			Overlap:    40,
			SplitBy:    domain.SplitByFixed,
		},
		Quality: domain.QualityGateConfig{
			MinLength:           10,
			MaxNoiseRatio:       0.6,
			MinQualityScore:     0.3,
			SimilarityThreshold: 0.85,
		},
	},
}

// For returns the full profile for a target type. Unknown types get
// the comment profile, the most conservative of the four; callers are
// expected to validate the type at the boundary first.
func For(target domain.TargetType) domain.TypeProfile {
	if profile, ok := typeProfiles[target]; ok {
		return profile
	}
	return typeProfiles[domain.TargetTypeComment]
}

// CleaningFor returns the cleaning configuration for a target type.
func CleaningFor(target domain.TargetType) domain.CleaningConfig {
	return For(target).Cleaning
}

// ChunkingFor returns the chunking configuration for a target type.
func ChunkingFor(target domain.TargetType) domain.ChunkingConfig {
	return For(target).Chunking
}

// QualityFor returns the quality gate configuration for a target type.
func QualityFor(target domain.TargetType) domain.QualityGateConfig {
	return For(target).Quality
}
