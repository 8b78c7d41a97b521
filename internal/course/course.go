package course

import "fmt"

// QuestionKind distinguishes how a question is answered and graded.
type QuestionKind string

const (
	// MultipleChoice questions are graded locally by strict index equality.
	MultipleChoice QuestionKind = "multiple-choice"
	// ShortAnswer questions are graded against a rubric, locally or remotely.
	ShortAnswer QuestionKind = "short-answer"
)

// Rubric carries the criteria a short answer is scored against.
// Guidance is shown to a remote grader, never used by the local heuristic.
type Rubric struct {
	Criteria []string `yaml:"criteria"`
	Guidance string   `yaml:"guidance"`
}

// Question is a single test or exam question.
// Options and CorrectIndex apply to multiple-choice questions only;
// Rubric applies to short-answer questions only.
type Question struct {
	ID           string       `yaml:"id"`
	Kind         QuestionKind `yaml:"kind"`
	Prompt       string       `yaml:"prompt"`
	MaxScore     int          `yaml:"max_score"`
	Options      []string     `yaml:"options"`
	CorrectIndex int          `yaml:"correct"`
	Rubric       Rubric       `yaml:"rubric"`
}

// Lesson is one reading unit inside a section. Body is plain text with
// blank lines between paragraphs; wrapping is a rendering concern.
type Lesson struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Section groups lessons with the test that closes them.
type Section struct {
	ID      string     `yaml:"id"`
	Title   string     `yaml:"title"`
	Lessons []Lesson   `yaml:"lessons"`
	Test    []Question `yaml:"test"`
}

// LessonKey returns the canonical "sectionID/lessonID" key identifying a
// lesson across the progress record and the event log.
func LessonKey(sectionID, lessonID string) string {
	return fmt.Sprintf("%s/%s", sectionID, lessonID)
}
