// Package practice generates fresh multiple-choice questions for a
// course section using the LLM provider. Generated questions are
// validated before display and checked locally; practice never counts
// toward section or exam scores.
package practice

import "context"

// Generator produces practice questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
