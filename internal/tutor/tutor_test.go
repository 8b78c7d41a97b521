package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kavitha/econ101/internal/llm"
)

func TestNew_SelectsStrategyByProvider(t *testing.T) {
	if _, ok := New(nil).(StaticTutor); !ok {
		t.Errorf("New(nil) = %T, want StaticTutor", New(nil))
	}
	if _, ok := New(llm.NewMockProvider()).(*ModelTutor); !ok {
		t.Errorf("New(provider) = %T, want *ModelTutor", New(llm.NewMockProvider()))
	}
}

func TestStaticTutor_DeterministicHints(t *testing.T) {
	ex := Exchange{Question: "What is elasticity?"}

	first := StaticTutor{}.Reply(context.Background(), ex)
	second := StaticTutor{}.Reply(context.Background(), Exchange{Question: "Totally different question"})

	if first.Text != second.Text {
		t.Error("static replies should not depend on the question")
	}
	if first.Source != SourceStatic {
		t.Errorf("source = %q, want %q", first.Source, SourceStatic)
	}
	for _, want := range []string{"1.", "2.", "3.", "4."} {
		if !strings.Contains(first.Text, want) {
			t.Errorf("hints missing item %q", want)
		}
	}
}

func TestModelTutor_ReturnsModelText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`What happens to quantity demanded when the price rises? Start there.`),
	})
	tut := NewModelTutor(mock, DefaultConfig())

	reply := tut.Reply(context.Background(), Exchange{Question: "Why does the demand curve slope down?"})

	if reply.Source != SourceModel {
		t.Errorf("source = %q, want %q", reply.Source, SourceModel)
	}
	if !strings.Contains(reply.Text, "quantity demanded") {
		t.Errorf("reply = %q, want the model's text verbatim", reply.Text)
	}
}

func TestModelTutor_FailureApologizesWithoutRetry(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	tut := NewModelTutor(mock, DefaultConfig())

	reply := tut.Reply(context.Background(), Exchange{Question: "help"})

	if reply.Source != SourceStatic {
		t.Errorf("source = %q, want %q", reply.Source, SourceStatic)
	}
	if !strings.Contains(reply.Text, "Sorry") {
		t.Errorf("reply = %q, want the apology wording", reply.Text)
	}
	if !strings.Contains(reply.Text, "1.") {
		t.Error("apology should still carry the study hints")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want exactly 1", mock.CallCount())
	}
}

func TestModelTutor_EmptyReplyFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})
	tut := NewModelTutor(mock, DefaultConfig())

	reply := tut.Reply(context.Background(), Exchange{Question: "help"})

	if reply.Source != SourceStatic {
		t.Errorf("source = %q, want %q for a blank model reply", reply.Source, SourceStatic)
	}
}

func TestModelTutor_SendsContextAndHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Good question.`),
	})
	tut := NewModelTutor(mock, DefaultConfig())

	tut.Reply(context.Background(), Exchange{
		Context: "Lesson: The Production Possibilities Curve",
		History: []Turn{
			{Role: RoleLearner, Text: "What does the curve show?"},
			{Role: RoleTutor, Text: "What two things is the economy choosing between?"},
		},
		Question: "Guns and butter?",
	})

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]

	if !strings.Contains(req.System, "Production Possibilities Curve") {
		t.Error("system prompt should carry the study context")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want history plus question", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleUser || req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history roles = %q, %q; want user, assistant",
			req.Messages[0].Role, req.Messages[1].Role)
	}
	if req.Messages[2].Content != "Guns and butter?" {
		t.Errorf("final message = %q, want the new question", req.Messages[2].Content)
	}
}

func TestModelTutor_NoContextKeepsSystemBare(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`Hi.`)})
	tut := NewModelTutor(mock, DefaultConfig())

	tut.Reply(context.Background(), Exchange{Question: "hello"})

	if got := mock.Calls[0].System; got != tutorSystemPrompt {
		t.Errorf("system = %q, want the bare tutor prompt", got)
	}
}
