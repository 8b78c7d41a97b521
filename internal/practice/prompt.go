package practice

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an economics instructor writing practice questions for an introductory course.

Rules:
- Generate a single multiple-choice question for the given section and topics.
- The question must be answerable from introductory material alone. No graduate-level formalism.
- Use plain text for everything. Spell out changes concretely (e.g. "price rises from $4 to $5").
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random statements.
- Vary which position holds the correct option.
- The explanation should say why the correct option is right and why the strongest distractor is wrong.
- If the learner recently missed questions, target the same ideas from a different angle.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section: %s\n", input.Section.Title)
	b.WriteString("Topics:\n")
	for _, lesson := range input.Section.Lessons {
		fmt.Fprintf(&b, "- %s\n", lesson.Title)
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.RecentPrompts, cfg.MaxRecentPrompts))

	b.WriteString("\n\nQuestions the learner recently missed:\n")
	b.WriteString(buildMisses(input.RecentMisses, cfg.MaxRecentMisses))

	return b.String()
}

// buildMisses formats recently missed questions for the prompt,
// respecting the max limit.
func buildMisses(misses []string, max int) string {
	if len(misses) == 0 {
		return "None"
	}

	// Keep only the most recent N misses.
	if max > 0 && len(misses) > max {
		misses = misses[len(misses)-max:]
	}

	var b strings.Builder
	for i, m := range misses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	return strings.TrimRight(b.String(), "\n")
}
