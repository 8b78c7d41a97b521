package grading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/llm"
)

func shortAnswerQuestion() course.Question {
	return course.Question{
		ID:       "growth-q",
		Kind:     course.ShortAnswer,
		Prompt:   "How does investment in capital affect long-run growth?",
		MaxScore: 3,
		Rubric:   ppcRubric(),
	}
}

func TestNew_SelectsStrategyByProvider(t *testing.T) {
	if _, ok := New(nil).(HeuristicGrader); !ok {
		t.Errorf("New(nil) = %T, want HeuristicGrader", New(nil))
	}
	if _, ok := New(llm.NewMockProvider()).(*ModelGrader); !ok {
		t.Errorf("New(provider) = %T, want *ModelGrader", New(llm.NewMockProvider()))
	}
}

func TestHeuristicGrader(t *testing.T) {
	q := shortAnswerQuestion()
	answer := "Investment shifts the PPC outward because productivity rises over the long run"

	res := HeuristicGrader{}.Grade(context.Background(), q, answer)

	if res.Score != Score(answer, q.Rubric, q.MaxScore) {
		t.Errorf("score = %d, want rubric score %d", res.Score, Score(answer, q.Rubric, q.MaxScore))
	}
	if res.Source != SourceNoKey {
		t.Errorf("source = %q, want %q", res.Source, SourceNoKey)
	}
	if res.Feedback != noKeyFeedback {
		t.Errorf("feedback = %q, want the no-key wording", res.Feedback)
	}
}

func TestModelGrader_ParsesScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`2/3. Covers the outward shift and productivity link but never mentions the long run.`),
	})
	g := NewModelGrader(mock, DefaultGraderConfig())

	res := g.Grade(context.Background(), shortAnswerQuestion(), "The PPC shifts outward as productivity rises.")

	if res.Score != 2 {
		t.Errorf("score = %d, want 2", res.Score)
	}
	if res.Source != SourceModel {
		t.Errorf("source = %q, want %q", res.Source, SourceModel)
	}
	if !strings.Contains(res.Feedback, "long run") {
		t.Errorf("feedback should carry the model's commentary, got %q", res.Feedback)
	}
}

func TestModelGrader_RescalesForeignScale(t *testing.T) {
	// Model graded on its own 10-point scale for a 3-point question.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I'd give this 7/10. Solid but incomplete.`),
	})
	g := NewModelGrader(mock, DefaultGraderConfig())

	res := g.Grade(context.Background(), shortAnswerQuestion(), "some answer")

	// round(7/10 * 3) = round(2.1) = 2.
	if res.Score != 2 {
		t.Errorf("score = %d, want 2", res.Score)
	}
}

func TestModelGrader_ClampsAboveMax(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`5/3, went beyond the rubric!`),
	})
	g := NewModelGrader(mock, DefaultGraderConfig())

	res := g.Grade(context.Background(), shortAnswerQuestion(), "some answer")

	if res.Score != 3 {
		t.Errorf("score = %d, want 3 (clamped to max)", res.Score)
	}
}

func TestModelGrader_NoPatternFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Great answer, well done!`),
	})
	g := NewModelGrader(mock, DefaultGraderConfig())

	q := shortAnswerQuestion()
	answer := "productivity improves in the long run"
	res := g.Grade(context.Background(), q, answer)

	if res.Source != SourceFallback {
		t.Errorf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Score != Score(answer, q.Rubric, q.MaxScore) {
		t.Errorf("score = %d, want heuristic score %d", res.Score, Score(answer, q.Rubric, q.MaxScore))
	}
	if res.Feedback != fallbackFeedback {
		t.Errorf("feedback = %q, want the fallback wording", res.Feedback)
	}
}

func TestModelGrader_ErrorFallsBackWithoutRetry(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	g := NewModelGrader(mock, DefaultGraderConfig())

	q := shortAnswerQuestion()
	res := g.Grade(context.Background(), q, "outward shift")

	if res.Source != SourceFallback {
		t.Errorf("source = %q, want %q", res.Source, SourceFallback)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want exactly 1 (failures degrade, never retry)", mock.CallCount())
	}
}

func TestModelGrader_DistinguishableFromNoKey(t *testing.T) {
	q := shortAnswerQuestion()

	noKey := HeuristicGrader{}.Grade(context.Background(), q, "answer")
	failed := NewModelGrader(llm.NewMockProvider(), DefaultGraderConfig()).Grade(context.Background(), q, "answer")

	if noKey.Source == failed.Source {
		t.Errorf("no-key and fallback share source %q, want distinct", noKey.Source)
	}
	if noKey.Feedback == failed.Feedback {
		t.Error("no-key and fallback share feedback text, want distinct")
	}
}

func TestModelGrader_SendsRubricAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`3/3. Complete.`),
	})
	g := NewModelGrader(mock, DefaultGraderConfig())

	g.Grade(context.Background(), shortAnswerQuestion(), "my capital answer")

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("request should carry the grading system prompt")
	}
	user := req.Messages[0].Content
	for _, want := range []string{"Outward shift of PPC", "Maximum score: 3", "my capital answer"} {
		if !strings.Contains(user, want) {
			t.Errorf("user message missing %q:\n%s", want, user)
		}
	}
}

func TestParseScoreFraction(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantGot   float64
		wantTotal float64
		wantOK    bool
	}{
		{"plain", "2/3", 2, 3, true},
		{"labelled", "Score: 2/3. Nice work.", 2, 3, true},
		{"spaced decimal", "2.5 / 3", 2.5, 3, true},
		{"first match wins", "1/3 at first, later 3/3", 1, 3, true},
		{"no fraction", "a thoughtful answer", 0, 0, false},
		{"zero total", "4/0", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, ok := parseScoreFraction(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.wantGot || total != tt.wantTotal {
				t.Errorf("parsed %v/%v, want %v/%v", got, total, tt.wantGot, tt.wantTotal)
			}
		})
	}
}

func TestBuildGradeMessage(t *testing.T) {
	msg, err := buildGradeMessage(shortAnswerQuestion(), "the answer text")
	if err != nil {
		t.Fatalf("buildGradeMessage failed: %v", err)
	}
	for _, want := range []string{
		"How does investment in capital affect long-run growth?",
		"- Outward shift of PPC",
		"Grading guidance:",
		"Student answer: the answer text",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
