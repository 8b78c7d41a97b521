package practice

import "github.com/kavitha/econ101/internal/course"

// Difficulty is the model's self-assessed difficulty of a generated
// question. Used for display and analytics, not for gating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question represents a generated practice question ready for display.
type Question struct {
	// Prompt is the question text shown to the learner. Plain text,
	// e.g. "The price of movie tickets rises 10% and quantity demanded
	// falls 25%. Demand for movie tickets is:"
	Prompt string

	// Options contains exactly 4 answer choices, one of which is correct.
	Options []string

	// Correct is the zero-based index of the correct option.
	Correct int

	// Explanation is a brief rationale shown after the learner answers.
	// Always present.
	Explanation string

	// Difficulty is the model's self-assessed difficulty.
	Difficulty Difficulty

	// SectionID is the course section this question was generated for.
	SectionID string
}

// Check reports whether the chosen option index is the correct one.
// Out-of-range choices are wrong, never a panic.
func (q *Question) Check(choice int) bool {
	return choice >= 0 && choice < len(q.Options) && choice == q.Correct
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Section is the course section to draw the question from. Lesson
	// titles become the topic list in the prompt.
	Section course.Section

	// RecentPrompts contains the Prompt of questions already shown in
	// this practice run. Used for deduplication.
	RecentPrompts []string

	// RecentMisses contains the prompts of questions the learner got
	// wrong on the last test for this section. When present, generation
	// targets the same ideas from a different angle.
	RecentMisses []string
}
