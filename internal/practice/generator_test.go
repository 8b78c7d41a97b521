package practice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/llm"
)

func testSection() course.Section {
	return course.Section{
		ID:    "elasticity",
		Title: "Elasticity",
		Lessons: []course.Lesson{
			{ID: "price-elasticity", Title: "Price Elasticity of Demand"},
			{ID: "determinants", Title: "What Makes Demand Elastic"},
		},
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "The price of movie tickets rises 10% and quantity demanded falls 25%. Demand for movie tickets is:",
		"options": ["Elastic", "Inelastic", "Unit elastic", "Perfectly inelastic"],
		"correct": 0,
		"difficulty": "medium",
		"explanation": "The percentage change in quantity (25%) is larger than the percentage change in price (10%), so the elasticity ratio exceeds one. Inelastic would require the quantity response to be smaller than the price change."
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Section: testSection(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(q.Prompt, "The price of movie tickets") {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Correct != 0 {
		t.Errorf("expected correct index 0, got %d", q.Correct)
	}
	if q.Difficulty != DifficultyMedium {
		t.Errorf("expected medium difficulty, got %q", q.Difficulty)
	}
	if q.SectionID != "elasticity" {
		t.Errorf("expected sectionID elasticity, got %q", q.SectionID)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // no responses queued
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	if err == nil {
		t.Fatal("expected error from provider failure")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{not json`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"prompt": "Which curve shifts when income rises?",
		"options": ["Demand", "Supply", "Both"],
		"correct": 0,
		"difficulty": "easy",
		"explanation": "Income is a demand-side factor."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestGenerate_CorrectIndexOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"prompt": "Which curve shifts when income rises?",
		"options": ["Demand", "Supply", "Both", "Neither"],
		"correct": 7,
		"difficulty": "easy",
		"explanation": "Income is a demand-side factor."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestGenerate_RejectsRepeatedPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Section: testSection(),
		RecentPrompts: []string{
			"the price of MOVIE tickets rises 10% and quantity demanded falls 25%.  Demand for movie tickets is:",
		},
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Validator != "dedup" {
		t.Errorf("expected dedup validator, got %q", valErr.Validator)
	}
}

// easyOnlyValidator rejects anything harder than easy.
type easyOnlyValidator struct{}

func (v *easyOnlyValidator) Name() string { return "easy-only" }

func (v *easyOnlyValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Difficulty != DifficultyEasy {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question too hard",
			Retryable: true,
		}
	}
	return nil
}

func TestGenerate_CustomValidator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, &easyOnlyValidator{})
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if valErr.Validator != "easy-only" {
		t.Errorf("expected easy-only validator, got %q", valErr.Validator)
	}
}

func TestGenerate_SendsSectionAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Section: testSection()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "practice-question" {
		t.Error("expected practice-question schema on the request")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "Section: Elasticity") {
		t.Error("missing section title in user message")
	}
	if !strings.Contains(user, "Price Elasticity of Demand") {
		t.Error("missing lesson topics in user message")
	}
}

func TestQuestionCheck(t *testing.T) {
	q := &Question{
		Options: []string{"a", "b", "c", "d"},
		Correct: 2,
	}

	tests := []struct {
		choice int
		want   bool
	}{
		{2, true},
		{0, false},
		{-1, false},
		{4, false},
	}
	for _, tt := range tests {
		if got := q.Check(tt.choice); got != tt.want {
			t.Errorf("Check(%d) = %t, want %t", tt.choice, got, tt.want)
		}
	}
}
