package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
)

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

// mockRecords implements store.RecordRepo for testing.
type mockRecords struct {
	docs map[string][]byte
}

func (m *mockRecords) Get(_ context.Context, key string) ([]byte, error) {
	return m.docs[key], nil
}
func (m *mockRecords) Put(_ context.Context, key string, data []byte) error {
	if m.docs == nil {
		m.docs = map[string][]byte{}
	}
	m.docs[key] = data
	return nil
}
func (m *mockRecords) Delete(_ context.Context, key string) error {
	delete(m.docs, key)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSection() course.Section {
	return course.Section{
		ID:    "supply-demand",
		Title: "Supply and Demand",
		Test: []course.Question{
			{
				ID:           "q1",
				Kind:         course.MultipleChoice,
				Prompt:       "A rightward shift of demand raises:",
				MaxScore:     1,
				Options:      []string{"Price only", "Quantity only", "Both price and quantity", "Neither"},
				CorrectIndex: 2,
			},
			{
				ID:           "q2",
				Kind:         course.MultipleChoice,
				Prompt:       "A binding price ceiling sits:",
				MaxScore:     1,
				Options:      []string{"Above equilibrium", "Below equilibrium", "At equilibrium", "Anywhere"},
				CorrectIndex: 1,
			},
			{
				ID:       "q3",
				Kind:     course.ShortAnswer,
				Prompt:   "Explain why a price ceiling causes a shortage.",
				MaxScore: 4,
				Rubric: course.Rubric{
					Criteria: []string{"quantity demanded exceeds quantity supplied", "price cannot rise to clear the market"},
				},
			},
		},
	}
}

func testQuiz() (*QuizScreen, *mockEventRepo, *progress.Tracker) {
	events := &mockEventRepo{}
	tracker := progress.NewTracker(&mockRecords{})
	s := NewSectionTest(testSection(), assess.NewRunner(nil), tracker, events)
	s.Init()
	return s, events, tracker
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _ := testQuiz()
	if s.Title() != "Supply and Demand Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Supply and Demand Test")
	}
}

func TestQuizScreen_MultipleChoiceAdvances(t *testing.T) {
	s, _, _ := testQuiz()

	// Press 3 to pick the third option; the screen must record it and
	// move on in the same cycle, before the component can reveal the
	// correct answer.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	qs := scr.(*QuizScreen)

	if got, ok := qs.answers.Choice["q1"]; !ok || got != 2 {
		t.Errorf("Choice[q1] = %d (ok=%v), want 2", got, ok)
	}
	if qs.index != 1 {
		t.Errorf("index = %d, want 1", qs.index)
	}
	if qs.mc.Submitted {
		t.Error("next question's component should start unsubmitted")
	}
}

func TestQuizScreen_ShortAnswerSubmit(t *testing.T) {
	s, _, _ := testQuiz()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	qs.ta.Model.SetValue("Demand exceeds supply at the capped price.")
	scr, _ = qs.Update(keyPress('s')) // plain key goes to the text area
	qs = scr.(*QuizScreen)
	if qs.index != 2 {
		t.Fatalf("index = %d, want 2 (still on short answer)", qs.index)
	}

	qs.ta.Model.SetValue("Demand exceeds supply at the capped price.")
	scr, _ = qs.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	qs = scr.(*QuizScreen)

	if got := qs.answers.Text["q3"]; got != "Demand exceeds supply at the capped price." {
		t.Errorf("Text[q3] = %q, want the typed answer", got)
	}
	if qs.phase != phaseGrading {
		t.Errorf("phase = %d, want phaseGrading after the last question", qs.phase)
	}
}

func TestQuizScreen_EmptyShortAnswerAllowed(t *testing.T) {
	s, _, _ := testQuiz()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)

	scr, _ = qs.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	qs = scr.(*QuizScreen)

	if got, ok := qs.answers.Text["q3"]; !ok || got != "" {
		t.Errorf("Text[q3] = %q (ok=%v), want recorded empty answer", got, ok)
	}
	if qs.phase != phaseGrading {
		t.Errorf("phase = %d, want phaseGrading", qs.phase)
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, events, tracker := testQuiz()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.confirmQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	// N keeps the test going.
	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.confirmQuit {
		t.Error("expected confirmation dismissed after n")
	}

	// Y pops without recording anything.
	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuizScreen)
	_, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
	if len(events.answerEvents) != 0 || len(events.assessmentEvents) != 0 {
		t.Error("quitting midway must record no events")
	}
	if got := tracker.Current().SectionScore("supply-demand").Attempts; got != 0 {
		t.Errorf("attempts = %d, want 0 after quitting", got)
	}
}

func TestQuizScreen_GradesAndPersists(t *testing.T) {
	s, events, tracker := testQuiz()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3')) // correct
	scr, _ = scr.Update(keyPress('1')) // wrong
	qs := scr.(*QuizScreen)
	qs.ta.Model.SetValue("Quantity demanded exceeds quantity supplied because the price cannot rise to clear the market.")
	next, cmd := qs.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	qs = next.(*QuizScreen)

	// Drain the grading channel until the completion message lands.
	for i := 0; cmd != nil; i++ {
		if i > 20 {
			t.Fatal("grading did not complete")
		}
		next, cmd = qs.Update(cmd())
		qs = next.(*QuizScreen)
	}

	if qs.phase != phaseResults {
		t.Fatalf("phase = %d, want phaseResults", qs.phase)
	}
	if qs.saveErr != nil {
		t.Fatalf("saveErr = %v, want nil", qs.saveErr)
	}

	// One answer event per question, in question order.
	if len(events.answerEvents) != 3 {
		t.Fatalf("answer events = %d, want 3", len(events.answerEvents))
	}
	for i, wantID := range []string{"q1", "q2", "q3"} {
		if events.answerEvents[i].QuestionID != wantID {
			t.Errorf("answer event %d = %q, want %q", i, events.answerEvents[i].QuestionID, wantID)
		}
	}
	if got := events.answerEvents[0].LearnerAnswer; got != "Both price and quantity" {
		t.Errorf("LearnerAnswer = %q, want the chosen option text", got)
	}

	if len(events.assessmentEvents) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(events.assessmentEvents))
	}
	ae := events.assessmentEvents[0]
	if ae.Scope != "section-test" || ae.SectionID != "supply-demand" {
		t.Errorf("assessment event = %+v, want section-test on supply-demand", ae)
	}
	if ae.Percent != qs.outcome.Percent {
		t.Errorf("event percent = %d, want %d", ae.Percent, qs.outcome.Percent)
	}

	score := tracker.Current().SectionScore("supply-demand")
	if score.Attempts != 1 || score.Best != qs.outcome.Percent {
		t.Errorf("score = %+v, want one attempt at %d%%", score, qs.outcome.Percent)
	}
}

func TestQuizScreen_HandlesEsc(t *testing.T) {
	s, _, _ := testQuiz()
	if !s.HandlesEsc() {
		t.Error("expected esc claimed while answering")
	}
	s.phase = phaseResults
	if s.HandlesEsc() {
		t.Error("expected esc released on the results view")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _, _ := testQuiz()
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while answering")
	}
	s.phase = phaseResults
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints on results")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s, _, _ := testQuiz()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty answering view")
	}
	s.confirmQuit = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty confirm view")
	}
}
