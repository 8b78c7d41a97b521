package practice

import "fmt"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need exactly 4 options, got %d", len(q.Options)),
			Retryable: true,
		}
	}
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i),
				Retryable: true,
			}
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct index %d out of range", q.Correct),
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty != DifficultyEasy && q.Difficulty != DifficultyMedium && q.Difficulty != DifficultyHard {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}
	return nil
}
