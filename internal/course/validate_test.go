package course

import (
	"strings"
	"testing"
)

func TestValidate_EmbeddedContentPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("embedded content validation failed: %v", err)
	}
}

func TestValidateCourse_DetectsDuplicateSectionID(t *testing.T) {
	sections := []Section{makeValidSection("a"), makeValidSection("a")}
	err := validateCourse(sections, nil, nil)
	if err == nil {
		t.Fatal("expected error for duplicate section ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateCourse_DetectsBadCorrectIndex(t *testing.T) {
	s := makeValidSection("a")
	s.Test[0].CorrectIndex = 4
	err := validateCourse([]Section{s}, nil, nil)
	if err == nil {
		t.Fatal("expected error for out-of-range correct index, got nil")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error should mention range, got: %v", err)
	}
}

func TestValidateCourse_DetectsMissingRubric(t *testing.T) {
	s := makeValidSection("a")
	s.Test[4].Rubric.Criteria = nil
	err := validateCourse([]Section{s}, nil, nil)
	if err == nil {
		t.Fatal("expected error for empty rubric, got nil")
	}
	if !strings.Contains(err.Error(), "criteria") {
		t.Errorf("error should mention criteria, got: %v", err)
	}
}

func TestValidateCourse_DetectsZeroMaxScore(t *testing.T) {
	s := makeValidSection("a")
	s.Test[0].MaxScore = 0
	err := validateCourse([]Section{s}, nil, nil)
	if err == nil {
		t.Fatal("expected error for zero max score, got nil")
	}
	if !strings.Contains(err.Error(), "MaxScore") {
		t.Errorf("error should mention MaxScore, got: %v", err)
	}
}

func TestValidateCourse_DetectsUnknownKind(t *testing.T) {
	s := makeValidSection("a")
	s.Test[0].Kind = "essay"
	err := validateCourse([]Section{s}, nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
	if !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("error should mention unknown kind, got: %v", err)
	}
}

func TestValidateCourse_DetectsWrongTestLength(t *testing.T) {
	s := makeValidSection("a")
	s.Test = s.Test[:3]
	err := validateCourse([]Section{s}, nil, nil)
	if err == nil {
		t.Fatal("expected error for short test, got nil")
	}
	if !strings.Contains(err.Error(), "want 5") {
		t.Errorf("error should mention expected length, got: %v", err)
	}
}

func TestValidateCourse_DetectsDanglingExamMapping(t *testing.T) {
	s := makeValidSection("a")
	exam := []Question{{
		ID: "x1", Kind: MultipleChoice, Prompt: "p", MaxScore: 1,
		Options: []string{"a", "b"}, CorrectIndex: 0,
	}}

	err := validateCourse([]Section{s}, exam, map[string]string{"x1": "nonexistent"})
	if err == nil {
		t.Fatal("expected error for mapping to nonexistent section, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should name the missing section, got: %v", err)
	}

	err = validateCourse([]Section{s}, exam, map[string]string{"ghost": "a"})
	if err == nil {
		t.Fatal("expected error for mapping from nonexistent question, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the missing question, got: %v", err)
	}
}

// makeValidSection returns a section that passes validation on its own.
func makeValidSection(id string) Section {
	mc := func(qid string) Question {
		return Question{
			ID: qid, Kind: MultipleChoice, Prompt: "pick one", MaxScore: 1,
			Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0,
		}
	}
	return Section{
		ID:    id,
		Title: "Section " + id,
		Lessons: []Lesson{
			{ID: "l1", Title: "Lesson 1", Body: "Some body text."},
		},
		Test: []Question{
			mc(id + "-t1"), mc(id + "-t2"), mc(id + "-t3"), mc(id + "-t4"),
			{
				ID: id + "-t5", Kind: ShortAnswer, Prompt: "explain", MaxScore: 3,
				Rubric: Rubric{Criteria: []string{"one", "two"}, Guidance: "g"},
			},
		},
	}
}
