package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/practice"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/screens/chat"
	"github.com/kavitha/econ101/internal/screens/lesson"
	practicescreen "github.com/kavitha/econ101/internal/screens/practice"
	progressscreen "github.com/kavitha/econ101/internal/screens/progress"
	"github.com/kavitha/econ101/internal/screens/quiz"
	"github.com/kavitha/econ101/internal/screens/sections"
	"github.com/kavitha/econ101/internal/screens/settings"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	tracker     *progress.Tracker
	displayName string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A nil generator disables the practice
// entry; modelID is empty when no provider is configured.
func New(tracker *progress.Tracker, records store.RecordRepo, events store.EventRepo, runner *assess.Runner, tut tutor.Tutor, gen practice.Generator, modelID string) *HomeScreen {
	settingsData := progress.LoadSettings(context.Background(), records)

	practiceNote := ""
	if gen == nil {
		practiceNote = "needs an API key"
	}

	items := []components.MenuItem{
		{Label: "Resume course", Action: func() tea.Cmd {
			target := resumeTarget(tracker, events, tut, runner)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: target}
			}
		}},
		{Label: "Browse sections", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sections.New(tracker, events, runner, tut)}
			}
		}},
		{Label: "Final exam", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.NewExam(runner, tracker, events)}
			}
		}},
		{Label: "Ask the tutor", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(tut, events, "")}
			}
		}},
		{Label: "Practice", Note: practiceNote, Disabled: gen == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(gen, events)}
			}
		}},
		{Label: "My progress", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(tracker, events)}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(records, modelID)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		tracker:     tracker,
		displayName: settingsData.DisplayName,
	}
}

// resumeTarget picks the first incomplete lesson, or the section browser
// when every lesson is done.
func resumeTarget(tracker *progress.Tracker, events store.EventRepo, tut tutor.Tutor, runner *assess.Runner) screen.Screen {
	p := tracker.Current()
	for _, sec := range course.Sections() {
		for _, les := range sec.Lessons {
			if !p.LessonDone(sec.ID, les.ID) {
				return lesson.New(sec, les, tracker, events, tut)
			}
		}
	}
	return sections.New(tracker, events, runner, tut)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var parts []string

	greeting := "Welcome back"
	if h.displayName != "" {
		greeting = "Welcome back, " + h.displayName
	}
	parts = append(parts, theme.Title.Width(width).Render(greeting))
	parts = append(parts, theme.Subtitle.Width(width).Render("Principles of Economics"))

	parts = append(parts, "")
	parts = append(parts, h.renderSummaryCard(width))
	parts = append(parts, "")

	menu := h.menu.View()
	parts = append(parts, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return strings.Join(parts, "\n")
}

// renderSummaryCard shows course standing at a glance. Computed on every
// render so finishing a quiz refreshes it on return.
func (h *HomeScreen) renderSummaryCard(width int) string {
	p := h.tracker.Current()

	lessonsDone := p.LessonsDone()
	lessonsTotal := course.TotalLessons()

	passed := 0
	secs := course.Sections()
	for _, sec := range secs {
		if p.SectionScore(sec.ID).Best >= assess.PassPercent {
			passed++
		}
	}

	examStr := "not taken"
	if p.Exam.Attempts > 0 {
		examStr = fmt.Sprintf("best %d%%", p.Exam.Best)
	}

	line := fmt.Sprintf("Lessons %d/%d   Sections passed %d/%d   Exam %s",
		lessonsDone, lessonsTotal, passed, len(secs), examStr)

	card := theme.Card.Render(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
