package course

import (
	"fmt"
	"strings"
)

// testQuestionCount is how many questions every section test carries in
// the shipped content. The assessment engine accepts any length; this is
// an authoring invariant.
const testQuestionCount = 5

// validateCourse performs all structural checks on the given content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCourse(sections []Section, exam []Question, examSection map[string]string) error {
	var errs []string

	sectionIDs := make(map[string]bool, len(sections))
	for _, s := range sections {
		if sectionIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		sectionIDs[s.ID] = true

		if s.Title == "" {
			errs = append(errs, fmt.Sprintf("section %q has no title", s.ID))
		}
		if len(s.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no lessons", s.ID))
		}
		if len(s.Test) != testQuestionCount {
			errs = append(errs, fmt.Sprintf("section %q test has %d questions, want %d", s.ID, len(s.Test), testQuestionCount))
		}

		lessonIDs := make(map[string]bool, len(s.Lessons))
		for _, l := range s.Lessons {
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("section %q: duplicate lesson ID %q", s.ID, l.ID))
			}
			lessonIDs[l.ID] = true
			if strings.TrimSpace(l.Body) == "" {
				errs = append(errs, fmt.Sprintf("lesson %q has an empty body", LessonKey(s.ID, l.ID)))
			}
		}

		errs = append(errs, validateQuestions(s.Test, fmt.Sprintf("section %q test", s.ID))...)
	}

	errs = append(errs, validateQuestions(exam, "exam")...)

	examIDs := make(map[string]bool, len(exam))
	for _, q := range exam {
		examIDs[q.ID] = true
	}
	for qid, sid := range examSection {
		if !examIDs[qid] {
			errs = append(errs, fmt.Sprintf("exam mapping references nonexistent question %q", qid))
		}
		if !sectionIDs[sid] {
			errs = append(errs, fmt.Sprintf("exam question %q maps to nonexistent section %q", qid, sid))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("course validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateQuestions checks one question set and returns its problems.
func validateQuestions(questions []Question, where string) []string {
	var errs []string
	ids := make(map[string]bool, len(questions))
	for _, q := range questions {
		prefix := fmt.Sprintf("%s question %q", where, q.ID)
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate ID", prefix))
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty prompt", prefix))
		}
		if q.MaxScore <= 0 {
			errs = append(errs, fmt.Sprintf("%s: MaxScore must be > 0, got %d", prefix, q.MaxScore))
		}

		switch q.Kind {
		case MultipleChoice:
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range [0,%d)", prefix, q.CorrectIndex, len(q.Options)))
			}
		case ShortAnswer:
			if len(q.Rubric.Criteria) == 0 {
				errs = append(errs, fmt.Sprintf("%s: rubric has no criteria", prefix))
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, q.Kind))
		}
	}
	return errs
}
