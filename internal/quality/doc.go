// Package quality validates, scores and deduplicates chunks before
// they are submitted for embedding. Rejection is data, not error:
// every chunk comes back with a verdict and the measurements behind
// it, so callers can log or audit what the gate did and why.
package quality
