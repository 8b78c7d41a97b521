package practice

import (
	"fmt"
	"strings"
)

// DedupValidator rejects questions whose prompt repeats one the learner
// already saw in this run. The prompt asks the model not to repeat
// itself, but models do; this is the backstop.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	prompt := normalizePrompt(q.Prompt)
	for _, seen := range input.RecentPrompts {
		if normalizePrompt(seen) == prompt {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question repeats an already-asked prompt",
				Retryable: true,
			}
		}
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// buildDedup formats already-asked prompts for the prompt, respecting
// the max limit. Returns "None" if there are no prior prompts.
func buildDedup(priorPrompts []string, max int) string {
	if len(priorPrompts) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(priorPrompts) > max {
		priorPrompts = priorPrompts[len(priorPrompts)-max:]
	}

	var b strings.Builder
	for i, p := range priorPrompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
