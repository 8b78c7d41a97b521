package sections

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/screens/lesson"
	"github.com/kavitha/econ101/internal/screens/quiz"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
)

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

func testSections() *SectionsScreen {
	tracker := progress.NewTracker(&mockRecords{})
	return New(tracker, mockEventRepo{}, assess.NewRunner(nil), tutor.StaticTutor{})
}

func TestSectionsScreen_Title(t *testing.T) {
	s := testSections()
	if s.Title() != "Sections" {
		t.Errorf("Title = %q, want %q", s.Title(), "Sections")
	}

	s.Update(specialKey(tea.KeyEnter))
	want := course.Sections()[0].Title
	if s.Title() != want {
		t.Errorf("Title = %q, want %q after opening a section", s.Title(), want)
	}
}

func TestSectionsScreen_CursorStaysInBounds(t *testing.T) {
	s := testSections()

	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after up at the top", s.cursor)
	}

	for i := 0; i < len(s.sections)+3; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.cursor != len(s.sections)-1 {
		t.Errorf("cursor = %d, want %d after overshooting down", s.cursor, len(s.sections)-1)
	}

	s.Update(keyPress('k'))
	if s.cursor != len(s.sections)-2 {
		t.Errorf("cursor = %d, vim keys should move too", s.cursor)
	}
}

func TestSectionsScreen_EnterOpensSection(t *testing.T) {
	s := testSections()
	s.Update(keyPress('j'))

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SectionsScreen)

	if cmd != nil {
		t.Error("opening a section should not produce a command")
	}
	if !ss.inSection {
		t.Fatal("expected the lesson list after enter")
	}
	if want := course.Sections()[1].ID; ss.active.ID != want {
		t.Errorf("active = %q, want %q", ss.active.ID, want)
	}
	if ss.lessonCursor != 0 {
		t.Errorf("lessonCursor = %d, want 0 on entry", ss.lessonCursor)
	}
}

func TestSectionsScreen_LessonCursorReachesTestRow(t *testing.T) {
	s := testSections()
	s.Update(specialKey(tea.KeyEnter))

	for i := 0; i < len(s.active.Lessons)+3; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.lessonCursor != len(s.active.Lessons) {
		t.Errorf("lessonCursor = %d, want %d (the test row)", s.lessonCursor, len(s.active.Lessons))
	}

	for i := 0; i < len(s.active.Lessons)+3; i++ {
		s.Update(specialKey(tea.KeyUp))
	}
	if s.lessonCursor != 0 {
		t.Errorf("lessonCursor = %d, want 0 after overshooting up", s.lessonCursor)
	}
}

func TestSectionsScreen_EnterLessonPushesLessonScreen(t *testing.T) {
	s := testSections()
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command for the first lesson")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("pushed %T, want *lesson.LessonScreen", push.Screen)
	}
}

func TestSectionsScreen_EnterTestRowPushesQuiz(t *testing.T) {
	s := testSections()
	s.Update(specialKey(tea.KeyEnter))

	for i := 0; i < len(s.active.Lessons); i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command for the section test")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("pushed %T, want *quiz.QuizScreen", push.Screen)
	}
}

func TestSectionsScreen_EscBacksOutOneLevel(t *testing.T) {
	s := testSections()
	s.Update(specialKey(tea.KeyEnter))

	if !s.HandlesEsc() {
		t.Error("expected HandlesEsc while inside a section")
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("backing out to the list should not produce a command")
	}
	if s.inSection {
		t.Fatal("expected the section list after esc")
	}
	if s.HandlesEsc() {
		t.Error("expected HandlesEsc false at the list level")
	}

	_, cmd = s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command from the list level")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd produced %T, want router.PopScreenMsg", cmd())
	}
}

func TestSectionsScreen_ViewShowsProgress(t *testing.T) {
	s := testSections()
	sec := course.Sections()[0]

	ctx := context.Background()
	s.tracker.CompleteLesson(ctx, sec.ID, sec.Lessons[0].ID)
	s.tracker.RecordSectionTest(ctx, sec.ID, 80)

	view := s.View(100, 30)
	if !strings.Contains(view, "1/3 lessons") {
		t.Errorf("section list should show the lesson count, got:\n%s", view)
	}
	if !strings.Contains(view, "test best 80%") {
		t.Errorf("section list should show the best test score, got:\n%s", view)
	}

	s.Update(specialKey(tea.KeyEnter))
	view = s.View(100, 30)
	if !strings.Contains(view, "best 80%, 1 attempt") {
		t.Errorf("lesson list should show the test record, got:\n%s", view)
	}
}

func TestSectionsScreen_KeyHints(t *testing.T) {
	s := testSections()
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints = %d entries, want 3", len(s.KeyHints()))
	}
}
