// Package services implements the driving port interfaces.
// Services contain the application logic around the preprocessing
// pipeline and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external infrastructure of their own.
package services
