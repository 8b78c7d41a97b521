package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	courseprogress "github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

const recentLimit = 8

type historyMsg struct {
	recent []store.AssessmentRecord
	err    error
}

// ProgressScreen shows course standing: per-section lessons and test
// scores, the exam record, and recent test results from the event log.
type ProgressScreen struct {
	tracker *courseprogress.Tracker
	events  store.EventRepo

	recent       []store.AssessmentRecord
	loaded       bool
	errMsg       string
	scrollOffset int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(tracker *courseprogress.Tracker, events store.EventRepo) *ProgressScreen {
	return &ProgressScreen{
		tracker: tracker,
		events:  events,
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		recent, err := events.AssessmentHistory(context.Background(), recentLimit)
		return historyMsg{recent: recent, err: err}
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.recent = msg.recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	lines := s.reportLines(width)

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

func (s *ProgressScreen) reportLines(width int) []string {
	p := s.tracker.Current()
	barWidth := min(width-46, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	lines = append(lines, "")

	total := course.TotalLessons()
	overall := 0.0
	if total > 0 {
		overall = float64(p.LessonsDone()) / float64(total)
	}
	overallBar := components.NewProgressBar("Course", overall, true, barWidth+14).View()
	lines = append(lines, "    "+overallBar)
	lines = append(lines, "")

	for _, sec := range course.Sections() {
		lines = append(lines, s.sectionLine(sec, p, width, barWidth))
	}

	lines = append(lines, "")
	lines = append(lines, s.examLine())
	lines = append(lines, "")

	lines = append(lines, "    "+lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Recent results"))

	if s.errMsg != "" {
		lines = append(lines, "    "+lipgloss.NewStyle().Foreground(theme.Error).
			Render("could not load history: "+s.errMsg))
		return lines
	}
	if len(s.recent) == 0 {
		lines = append(lines, "    "+theme.Hint.Render("No tests taken yet."))
		return lines
	}

	for _, rec := range s.recent {
		lines = append(lines, s.recentLine(rec))
	}
	return lines
}

func (s *ProgressScreen) sectionLine(sec course.Section, p courseprogress.Progress, width, barWidth int) string {
	done := 0
	for _, les := range sec.Lessons {
		if p.LessonDone(sec.ID, les.ID) {
			done++
		}
	}
	rec := p.SectionScore(sec.ID)

	title := sec.Title
	if len(title) > 26 {
		title = title[:25] + "…"
	}

	pct := float64(rec.Best) / 100
	bar := components.NewProgressBar("", pct, false, barWidth).View()

	status := fmt.Sprintf("%d%%", rec.Best)
	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if rec.Attempts == 0 {
		status = "—"
	} else if rec.Best >= assess.PassPercent {
		statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	return fmt.Sprintf("    %s %s  %s %s",
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-26s", title)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", done, len(sec.Lessons))),
		bar,
		statusStyle.Render(fmt.Sprintf("%4s", status)),
	)
}

func (s *ProgressScreen) examLine() string {
	rec := s.tracker.Current().Exam
	if rec.Attempts == 0 {
		return "    " + lipgloss.NewStyle().Foreground(theme.Text).Render("Final exam") +
			"  " + theme.Hint.Render("not attempted")
	}

	style := lipgloss.NewStyle().Foreground(theme.Error)
	if rec.Best >= assess.PassPercent {
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	attempts := fmt.Sprintf("%d attempts", rec.Attempts)
	if rec.Attempts == 1 {
		attempts = "1 attempt"
	}
	return fmt.Sprintf("    %s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.Text).Render("Final exam"),
		style.Bold(true).Render(fmt.Sprintf("best %d%%", rec.Best)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(attempts),
	)
}

func (s *ProgressScreen) recentLine(rec store.AssessmentRecord) string {
	name := "Final exam"
	if rec.Scope == "section-test" {
		name = rec.SectionID
		if sec, err := course.GetSection(rec.SectionID); err == nil {
			name = sec.Title
		}
	}
	if len(name) > 26 {
		name = name[:25] + "…"
	}

	pctStyle := lipgloss.NewStyle().Foreground(theme.Error)
	if rec.Percent >= assess.PassPercent {
		pctStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	return fmt.Sprintf("    %s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(rec.Timestamp.Format("Jan 02")),
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-26s", name)),
		pctStyle.Render(fmt.Sprintf("%3d%%", rec.Percent)),
	)
}

func (s *ProgressScreen) Title() string {
	return "My Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
