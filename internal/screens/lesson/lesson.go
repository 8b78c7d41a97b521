package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/screens/chat"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// completeDoneMsg reports the outcome of marking the lesson complete.
type completeDoneMsg struct {
	err error
}

// LessonScreen renders one lesson body with scrolling and lets the
// learner mark it complete or open the tutor with lesson context.
type LessonScreen struct {
	section course.Section
	lesson  course.Lesson
	tracker *progress.Tracker
	events  store.EventRepo
	tut     tutor.Tutor

	alreadyDone  bool
	completing   bool
	saveErr      error
	scrollOffset int

	// wrapped body cache, rebuilt when the width changes
	wrapped      []string
	wrappedWidth int
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a lesson reading screen.
func New(sec course.Section, les course.Lesson, tracker *progress.Tracker, events store.EventRepo, tut tutor.Tutor) *LessonScreen {
	return &LessonScreen{
		section:     sec,
		lesson:      les,
		tracker:     tracker,
		events:      events,
		tut:         tut,
		alreadyDone: tracker.Current().LessonDone(sec.ID, les.ID),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.scrollOffset > 0 {
				l.scrollOffset--
			}
		case "down", "j":
			l.scrollOffset++
		case "pgup":
			l.scrollOffset -= 10
			if l.scrollOffset < 0 {
				l.scrollOffset = 0
			}
		case "pgdown", " ":
			l.scrollOffset += 10
		case "t":
			ctxLine := fmt.Sprintf("Section: %s · Lesson: %s", l.section.Title, l.lesson.Title)
			target := chat.New(l.tut, l.events, ctxLine)
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: target}
			}
		case "enter", "c":
			return l, l.complete()
		}

	case completeDoneMsg:
		l.completing = false
		if msg.err != nil {
			l.saveErr = msg.err
			return l, nil
		}
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return l, nil
}

// complete marks the lesson done on first completion and pops. Rereading
// a finished lesson records nothing.
func (l *LessonScreen) complete() tea.Cmd {
	if l.alreadyDone {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if l.completing {
		return nil
	}
	l.completing = true

	sec, les := l.section, l.lesson
	tracker, events := l.tracker, l.events
	return func() tea.Msg {
		ctx := context.Background()
		if err := tracker.CompleteLesson(ctx, sec.ID, les.ID); err != nil {
			return completeDoneMsg{err: err}
		}
		if events != nil {
			if err := events.AppendLessonEvent(ctx, store.LessonEventData{
				SectionID: sec.ID,
				LessonID:  les.ID,
				Title:     les.Title,
			}); err != nil {
				return completeDoneMsg{err: err}
			}
		}
		return completeDoneMsg{}
	}
}

func (l *LessonScreen) View(width, height int) string {
	body := l.wrapBody(width)

	// Reserve two lines for the status footer under the text.
	window := height - 2
	if window < 1 {
		window = 1
	}

	maxOffset := len(body) - window
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.scrollOffset > maxOffset {
		l.scrollOffset = maxOffset
	}

	end := l.scrollOffset + window
	if end > len(body) {
		end = len(body)
	}
	visible := strings.Join(body[l.scrollOffset:end], "\n")

	status := l.renderStatus(maxOffset)
	return visible + "\n\n" + status
}

// wrapBody wraps the lesson text at a readable measure, caching per width.
func (l *LessonScreen) wrapBody(width int) []string {
	if l.wrapped != nil && l.wrappedWidth == width {
		return l.wrapped
	}

	measure := min(width-8, 72)
	if measure < 20 {
		measure = 20
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(l.lesson.Title)

	text := theme.Body.Width(measure).Render(l.lesson.Body)

	indent := lipgloss.NewStyle().PaddingLeft(4)
	block := indent.Render(heading) + "\n\n" + indent.Render(text)

	l.wrapped = strings.Split(block, "\n")
	l.wrappedWidth = width
	return l.wrapped
}

func (l *LessonScreen) renderStatus(maxOffset int) string {
	if l.saveErr != nil {
		return "    " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("could not save progress: "+l.saveErr.Error())
	}

	var parts []string
	if l.alreadyDone {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("✓ completed"))
	}
	if maxOffset > 0 && l.scrollOffset < maxOffset {
		parts = append(parts, theme.Hint.Render("↓ more below"))
	}
	if len(parts) == 0 {
		return ""
	}
	return "    " + strings.Join(parts, "   ")
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

// KeyHints returns the key binding hints for the footer.
func (l *LessonScreen) KeyHints() []layout.KeyHint {
	done := "Done"
	if l.alreadyDone {
		done = "Back"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: done},
		{Key: "t", Description: "Tutor"},
		{Key: "Esc", Description: "Back"},
	}
}
