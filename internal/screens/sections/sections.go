package sections

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/screens/lesson"
	"github.com/kavitha/econ101/internal/screens/quiz"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// SectionsScreen browses the course outline. It has two levels: the
// section list, and a drill-in view of one section's lessons plus its
// test. Esc backs out one level at a time.
type SectionsScreen struct {
	tracker *progress.Tracker
	events  store.EventRepo
	runner  *assess.Runner
	tut     tutor.Tutor

	sections []course.Section

	inSection    bool
	active       course.Section
	cursor       int
	lessonCursor int
}

var _ screen.Screen = (*SectionsScreen)(nil)
var _ screen.EscHandler = (*SectionsScreen)(nil)

// New creates the section browser.
func New(tracker *progress.Tracker, events store.EventRepo, runner *assess.Runner, tut tutor.Tutor) *SectionsScreen {
	return &SectionsScreen{
		tracker:  tracker,
		events:   events,
		runner:   runner,
		tut:      tut,
		sections: course.Sections(),
	}
}

func (s *SectionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SectionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectRow()
		case "esc":
			if s.inSection {
				s.inSection = false
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// HandlesEsc claims esc while drilled into a section so the app router
// does not pop the whole screen.
func (s *SectionsScreen) HandlesEsc() bool {
	return s.inSection
}

func (s *SectionsScreen) moveCursor(delta int) {
	if s.inSection {
		// Lesson rows plus the trailing test row.
		next := s.lessonCursor + delta
		if next >= 0 && next <= len(s.active.Lessons) {
			s.lessonCursor = next
		}
		return
	}
	next := s.cursor + delta
	if next >= 0 && next < len(s.sections) {
		s.cursor = next
	}
}

// selectRow handles enter at either level.
func (s *SectionsScreen) selectRow() tea.Cmd {
	if !s.inSection {
		s.active = s.sections[s.cursor]
		s.inSection = true
		s.lessonCursor = 0
		return nil
	}

	if s.lessonCursor < len(s.active.Lessons) {
		les := s.active.Lessons[s.lessonCursor]
		target := lesson.New(s.active, les, s.tracker, s.events, s.tut)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: target}
		}
	}

	target := quiz.NewSectionTest(s.active, s.runner, s.tracker, s.events)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: target}
	}
}

func (s *SectionsScreen) View(width, height int) string {
	if s.inSection {
		return s.viewLessons(width, height)
	}
	return s.viewSections(width, height)
}

func (s *SectionsScreen) viewSections(width, height int) string {
	p := s.tracker.Current()

	var lines []string
	lines = append(lines, theme.Subtitle.Width(width).Render("Choose a section"))
	lines = append(lines, "")

	for i, sec := range s.sections {
		lines = append(lines, s.renderSectionRow(i, sec, p, width))
	}

	return strings.Join(lines, "\n")
}

func (s *SectionsScreen) renderSectionRow(i int, sec course.Section, p progress.Progress, width int) string {
	done := 0
	for _, les := range sec.Lessons {
		if p.LessonDone(sec.ID, les.ID) {
			done++
		}
	}

	rec := p.SectionScore(sec.ID)
	test := "test not taken"
	if rec.Attempts > 0 {
		test = fmt.Sprintf("test best %d%%", rec.Best)
	}
	summary := fmt.Sprintf("%d/%d lessons · %s", done, len(sec.Lessons), test)

	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.cursor {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	title := fmt.Sprintf("%d. %s", i+1, sec.Title)
	nameWidth := width - 8 - lipgloss.Width(summary)
	if nameWidth < 16 {
		nameWidth = 16
	}
	if len(title) > nameWidth {
		title = title[:nameWidth-1] + "…"
	}

	return fmt.Sprintf("  %s%s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, title)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary),
	)
}

func (s *SectionsScreen) viewLessons(width, height int) string {
	p := s.tracker.Current()

	var lines []string
	lines = append(lines, theme.Subtitle.Width(width).Render(s.active.Title))
	lines = append(lines, "")

	for i, les := range s.active.Lessons {
		icon := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		if p.LessonDone(s.active.ID, les.ID) {
			icon = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.lessonCursor {
			cursor = "▸ "
			nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, fmt.Sprintf("  %s%s %s", cursor, icon, nameStyle.Render(les.Title)))
	}

	lines = append(lines, "")
	lines = append(lines, s.renderTestRow(p))

	return strings.Join(lines, "\n")
}

func (s *SectionsScreen) renderTestRow(p progress.Progress) string {
	rec := p.SectionScore(s.active.ID)
	label := "Take the section test"
	status := "not taken"
	if rec.Attempts > 0 {
		status = fmt.Sprintf("best %d%%, %d attempts", rec.Best, rec.Attempts)
		if rec.Attempts == 1 {
			status = fmt.Sprintf("best %d%%, 1 attempt", rec.Best)
		}
	}

	cursor := "  "
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	if s.lessonCursor == len(s.active.Lessons) {
		cursor = "▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if rec.Attempts > 0 && rec.Best >= assess.PassPercent {
		statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	return fmt.Sprintf("  %s%s  %s", cursor, style.Render(label), statusStyle.Render(status))
}

func (s *SectionsScreen) Title() string {
	if s.inSection {
		return s.active.Title
	}
	return "Sections"
}

// KeyHints returns the key binding hints for the footer.
func (s *SectionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
