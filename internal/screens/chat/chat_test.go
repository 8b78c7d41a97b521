package chat

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
)

// mockTutor implements tutor.Tutor for testing.
type mockTutor struct {
	reply tutor.Reply
}

func (m mockTutor) Reply(_ context.Context, _ tutor.Exchange) tutor.Reply {
	return m.reply
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct{}

func (mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error { return nil }
func (mockEventRepo) AppendAssessmentEvent(_ context.Context, _ store.AssessmentEventData) error {
	return nil
}
func (mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error { return nil }
func (mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error     { return nil }
func (mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (mockEventRepo) AssessmentHistory(_ context.Context, _ int) ([]store.AssessmentRecord, error) {
	return nil, nil
}
func (mockEventRepo) LLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (mockEventRepo) LLMRequest(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}

func testChat(contextText string) *ChatScreen {
	tut := mockTutor{reply: tutor.Reply{Text: "What happens to quantity demanded?", Source: tutor.SourceModel}}
	return New(tut, mockEventRepo{}, contextText)
}

func TestChatScreen_Title(t *testing.T) {
	c := testChat("")
	if c.Title() != "Tutor" {
		t.Errorf("Title = %q, want %q", c.Title(), "Tutor")
	}
}

func TestChatScreen_SendAppendsLearnerTurn(t *testing.T) {
	c := testChat("")
	c.input.SetValue("Why do prices rise?")

	var scr screen.Screen = c
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected an ask command after enter")
	}
	if len(c.history) != 1 {
		t.Fatalf("history = %d turns, want 1", len(c.history))
	}
	if c.history[0].Role != tutor.RoleLearner || c.history[0].Text != "Why do prices rise?" {
		t.Errorf("turn = %+v, want the learner's question", c.history[0])
	}
	if !c.waiting {
		t.Error("expected waiting while the tutor thinks")
	}
	if c.input.Value() != "" {
		t.Error("expected the input cleared after send")
	}
}

func TestChatScreen_EmptyQuestionIgnored(t *testing.T) {
	c := testChat("")
	c.input.SetValue("   ")

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for a blank question")
	}
	if len(c.history) != 0 {
		t.Error("expected no history for a blank question")
	}
}

func TestChatScreen_SendWhileWaitingIgnored(t *testing.T) {
	c := testChat("")
	c.waiting = true
	c.input.SetValue("Another question")

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command while a reply is pending")
	}
	if len(c.history) != 0 {
		t.Error("expected the question held until the tutor answers")
	}
}

func TestChatScreen_ReplyAppendsTutorTurn(t *testing.T) {
	c := testChat("")
	c.input.SetValue("Why do prices rise?")
	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	c.Update(replyMsg{reply: tutor.Reply{Text: "Think about scarcity.", Source: tutor.SourceModel}})

	if c.waiting {
		t.Error("expected waiting cleared after the reply")
	}
	if len(c.history) != 2 {
		t.Fatalf("history = %d turns, want 2", len(c.history))
	}
	if c.history[1].Role != tutor.RoleTutor || c.history[1].Text != "Think about scarcity." {
		t.Errorf("turn = %+v, want the tutor's reply", c.history[1])
	}
}

func TestChatScreen_ExchangeExcludesCurrentQuestion(t *testing.T) {
	c := testChat("Section: Supply and Demand · Lesson: Market Equilibrium")

	c.history = []tutor.Turn{
		{Role: tutor.RoleLearner, Text: "What is equilibrium?"},
		{Role: tutor.RoleTutor, Text: "Where supply meets demand. What clears there?"},
	}

	ex := c.exchange("Is that always stable?")

	if ex.Question != "Is that always stable?" {
		t.Errorf("Question = %q", ex.Question)
	}
	if len(ex.History) != 2 {
		t.Fatalf("History = %d turns, want the 2 prior turns only", len(ex.History))
	}
	if ex.Context != "Section: Supply and Demand · Lesson: Market Equilibrium" {
		t.Errorf("Context = %q, want the lesson context", ex.Context)
	}

	// The snapshot must not alias the live history.
	c.history = append(c.history, tutor.Turn{Role: tutor.RoleLearner, Text: "Is that always stable?"})
	if len(ex.History) != 2 {
		t.Error("exchange history must be a copy, not a view of the live slice")
	}
}

func TestChatScreen_Scrollback(t *testing.T) {
	c := testChat("")
	for i := 0; i < 10; i++ {
		c.history = append(c.history,
			tutor.Turn{Role: tutor.RoleLearner, Text: "question"},
			tutor.Turn{Role: tutor.RoleTutor, Text: "answer"},
		)
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.scrollBack != 1 {
		t.Errorf("scrollBack = %d, want 1", c.scrollBack)
	}
	c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.scrollBack != 0 {
		t.Errorf("scrollBack = %d, want 0 (clamped)", c.scrollBack)
	}
	if c.View(80, 24) == "" {
		t.Error("expected non-empty transcript view")
	}
}
