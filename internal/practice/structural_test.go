package practice

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Prompt:      "Opportunity cost is best described as:",
		Options:     []string{"The next best alternative given up", "The money spent", "The time spent", "The sticker price"},
		Correct:     0,
		Explanation: "Opportunity cost is the value of the next best alternative forgone, not just the cash outlay.",
		Difficulty:  DifficultyEasy,
		SectionID:   "scarcity",
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validQuestion(), GenerateInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyPrompt(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Prompt = ""
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_PromptTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Prompt = strings.Repeat("a", 501)
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for long prompt")
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}

	for _, n := range []int{0, 2, 3, 5} {
		q := validQuestion()
		q.Options = make([]string, n)
		for i := range q.Options {
			q.Options[i] = "option"
		}
		if err := v.Validate(q, GenerateInput{}); err == nil {
			t.Errorf("expected error for %d options", n)
		}
	}
}

func TestStructural_EmptyOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options[2] = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestStructural_CorrectOutOfRange(t *testing.T) {
	v := &StructuralValidator{}

	for _, idx := range []int{-1, 4, 10} {
		q := validQuestion()
		q.Correct = idx
		if err := v.Validate(q, GenerateInput{}); err == nil {
			t.Errorf("expected error for correct index %d", idx)
		}
	}
}

func TestStructural_EmptyExplanation(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Explanation = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestStructural_ExplanationTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Explanation = strings.Repeat("a", 1001)
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for long explanation")
	}
}

func TestStructural_InvalidDifficulty(t *testing.T) {
	v := &StructuralValidator{}

	for _, d := range []Difficulty{"", "brutal", "EASY"} {
		q := validQuestion()
		q.Difficulty = d
		if err := v.Validate(q, GenerateInput{}); err == nil {
			t.Errorf("expected error for difficulty %q", d)
		}
	}
}

func TestDedup_AllowsFreshPrompt(t *testing.T) {
	v := &DedupValidator{}
	q := validQuestion()
	input := GenerateInput{
		RecentPrompts: []string{"A completely different question about GDP?"},
	}
	if err := v.Validate(q, input); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDedup_RejectsWhitespaceAndCaseVariants(t *testing.T) {
	v := &DedupValidator{}
	q := validQuestion()
	input := GenerateInput{
		RecentPrompts: []string{"  opportunity COST is best\tdescribed as:  "},
	}
	err := v.Validate(q, input)
	if err == nil {
		t.Fatal("expected dedup rejection")
	}
	if err.Validator != "dedup" {
		t.Errorf("expected validator %q, got %q", "dedup", err.Validator)
	}
}
