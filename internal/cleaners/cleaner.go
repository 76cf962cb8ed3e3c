package cleaners

import "github.com/custodia-labs/prepress/internal/core/domain"

// Step transforms text in one well-defined way.
// Steps must be pure: same input, same output, no side effects.
type Step interface {
	// Name identifies the step in run metadata.
	Name() string

	// Apply returns the transformed text.
	Apply(text string) string
}

// Clean runs the steps selected by cfg in fixed order and returns the
// cleaned text along with the names of the steps that ran.
// HTML is stripped before markdown so entity-decoded characters are
// visible to the markdown step, and whitespace runs last to tidy up
// whatever the earlier steps left behind.
func Clean(text string, cfg domain.CleaningConfig) (string, []string) {
	steps := stepsFor(cfg)

	applied := make([]string, 0, len(steps))
	for _, step := range steps {
		text = step.Apply(text)
		applied = append(applied, step.Name())
	}

	return text, applied
}

// stepsFor assembles the step chain for a cleaning configuration.
func stepsFor(cfg domain.CleaningConfig) []Step {
	var steps []Step
	if cfg.StripHTML {
		steps = append(steps, HTML{})
	}
	if cfg.StripMarkdown {
		steps = append(steps, Markdown{})
	}
	if cfg.NormaliseWhitespace {
		steps = append(steps, Whitespace{})
	}
	return steps
}
