package practice

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/practice"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
)

// mockGen implements practice.Generator for testing.
type mockGen struct {
	question *practice.Question
}

func (m *mockGen) Generate(_ context.Context, input practice.GenerateInput) (*practice.Question, error) {
	q := *m.question
	q.SectionID = input.Section.ID
	return &q, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents     []store.AnswerEventData
	assessmentEvents []store.AssessmentEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAssessmentEvent(_ context.Context, data store.AssessmentEventData) error {
	m.assessmentEvents = append(m.assessmentEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}
func (m *mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AssessmentHistory(_ context.Context, _ int) ([]store.AssessmentRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMRequest(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() *practice.Question {
	return &practice.Question{
		Prompt:      "Demand for a good with many close substitutes tends to be:",
		Options:     []string{"Perfectly inelastic", "Inelastic", "Elastic", "Unit elastic"},
		Correct:     2,
		Explanation: "Close substitutes make it easy to switch away when the price rises.",
		Difficulty:  practice.DifficultyMedium,
	}
}

func testPractice() (*PracticeScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	s := New(&mockGen{question: testQuestion()}, events)
	return s, events
}

// serveQuestion moves the screen to an active question the way a
// finished generate command would.
func serveQuestion(s *PracticeScreen) {
	s.section = course.Sections()[0]
	q := *testQuestion()
	q.SectionID = s.section.ID
	s.Update(questionMsg{question: &q})
}

func TestPracticeScreen_Title(t *testing.T) {
	s, _ := testPractice()
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestPracticeScreen_StartsOnPicker(t *testing.T) {
	s, _ := testPractice()
	if s.phase != phasePick {
		t.Errorf("phase = %d, want phasePick", s.phase)
	}
	if len(s.menu.Items) != len(course.Sections()) {
		t.Errorf("menu items = %d, want %d", len(s.menu.Items), len(course.Sections()))
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty picker view")
	}
}

func TestPracticeScreen_CorrectAnswer(t *testing.T) {
	s, events := testPractice()
	serveQuestion(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	ps := scr.(*PracticeScreen)

	if !ps.mc.Submitted {
		t.Fatal("expected submitted component for instant feedback")
	}
	if ps.answered != 1 || ps.correct != 1 {
		t.Errorf("answered=%d correct=%d, want 1 and 1", ps.answered, ps.correct)
	}
	if len(ps.misses) != 0 {
		t.Errorf("misses = %v, want none", ps.misses)
	}

	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if ev.QuestionID != "practice-1" {
		t.Errorf("QuestionID = %q, want practice-1", ev.QuestionID)
	}
	if ev.Awarded != 1 || ev.MaxScore != 1 {
		t.Errorf("awarded %d/%d, want 1/1", ev.Awarded, ev.MaxScore)
	}
	if ev.AssessmentID != ps.runID {
		t.Error("expected the run ID on every practice answer")
	}
}

func TestPracticeScreen_WrongAnswerFeedsMisses(t *testing.T) {
	s, events := testPractice()
	serveQuestion(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ps := scr.(*PracticeScreen)

	if ps.correct != 0 || ps.answered != 1 {
		t.Errorf("answered=%d correct=%d, want 1 and 0", ps.answered, ps.correct)
	}
	if len(ps.misses) != 1 || len(ps.seen) != 1 {
		t.Fatalf("misses=%d seen=%d, want 1 and 1", len(ps.misses), len(ps.seen))
	}
	if events.answerEvents[0].Awarded != 0 {
		t.Errorf("Awarded = %d, want 0", events.answerEvents[0].Awarded)
	}

	// n asks for the next question.
	_, cmd := ps.Update(keyPress('n'))
	if ps.phase != phaseLoading {
		t.Errorf("phase = %d, want phaseLoading after n", ps.phase)
	}
	if cmd == nil {
		t.Error("expected a generate command after n")
	}
}

func TestPracticeScreen_RunAccumulates(t *testing.T) {
	s, events := testPractice()
	serveQuestion(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1')) // wrong
	ps := scr.(*PracticeScreen)
	serveQuestion(ps)
	scr, _ = ps.Update(keyPress('3')) // right
	ps = scr.(*PracticeScreen)

	if ps.qNum != 2 || ps.answered != 2 || ps.correct != 1 {
		t.Errorf("qNum=%d answered=%d correct=%d, want 2, 2, 1", ps.qNum, ps.answered, ps.correct)
	}
	if len(ps.seen) != 2 || len(ps.misses) != 1 {
		t.Errorf("seen=%d misses=%d, want 2 and 1", len(ps.seen), len(ps.misses))
	}
	if got := events.answerEvents[1].QuestionID; got != "practice-2" {
		t.Errorf("QuestionID = %q, want practice-2", got)
	}
	if events.answerEvents[0].AssessmentID != events.answerEvents[1].AssessmentID {
		t.Error("expected one run ID across the whole practice run")
	}
}

func TestPracticeScreen_GenerationFailure(t *testing.T) {
	s, _ := testPractice()
	s.section = course.Sections()[0]
	s.phase = phaseLoading

	var scr screen.Screen = s
	scr, _ = scr.Update(questionMsg{err: errors.New("model unavailable")})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseFailed {
		t.Fatalf("phase = %d, want phaseFailed", ps.phase)
	}
	if ps.View(80, 24) == "" {
		t.Error("expected non-empty failure view")
	}

	// n retries once, manually.
	_, cmd := ps.Update(keyPress('n'))
	if ps.phase != phaseLoading || cmd == nil {
		t.Error("expected a single manual retry after n")
	}

	// q leaves.
	ps.phase = phaseFailed
	_, cmd = ps.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command after q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after q")
	}
}

func TestPracticeScreen_NeverWritesAssessments(t *testing.T) {
	s, events := testPractice()
	serveQuestion(s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	ps := scr.(*PracticeScreen)
	scr, _ = ps.Update(keyPress('s'))
	ps = scr.(*PracticeScreen)

	if ps.phase != phasePick {
		t.Errorf("phase = %d, want phasePick after s", ps.phase)
	}
	if len(events.assessmentEvents) != 0 {
		t.Error("practice must never write assessment events")
	}
}
