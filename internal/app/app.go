package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/practice"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/screens/home"
	"github.com/kavitha/econ101/internal/screens/welcome"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
	"github.com/kavitha/econ101/internal/ui/layout"
)

// Options carries the services the UI runs on. Generator and ModelID are
// empty without an API key; the screens degrade on their own.
type Options struct {
	Tracker   *progress.Tracker
	Records   store.RecordRepo
	Events    store.EventRepo
	Runner    *assess.Runner
	Tutor     tutor.Tutor
	Generator practice.Generator
	ModelID   string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	width   int
	height  int
}

// newAppModel creates an AppModel opening on the welcome animation.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Tracker, opts.Records, opts.Events, opts.Runner,
			opts.Tutor, opts.Generator, opts.ModelID)
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory)),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen mid-flow (an unfinished test, a drilled-in list)
			// handles esc itself; otherwise esc walks back one screen.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	lessonsDone := 0
	if m.tracker != nil {
		lessonsDone = m.tracker.Current().LessonsDone()
	}
	header := layout.RenderHeader(title, lessonsDone, course.TotalLessons(), m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen first and falls back to generic
// navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
