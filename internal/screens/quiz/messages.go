package quiz

import "github.com/kavitha/econ101/internal/assess"

// gradeProgressMsg is sent after each question finishes grading.
type gradeProgressMsg struct {
	done  int
	total int
}

// gradeCompleteMsg is sent when the whole set is graded and persisted.
// rec is set for final exams only; saveErr reports the first failed
// write, with the results still shown.
type gradeCompleteMsg struct {
	outcome assess.Outcome
	rec     *assess.Recommendation
	saveErr error
}
