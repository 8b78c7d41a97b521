package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/practice"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// questionMsg delivers a generated question or the failure to make one.
type questionMsg struct {
	question *practice.Question
	err      error
}

// genTickMsg animates the loading indicator.
type genTickMsg time.Time

type phase int

const (
	phasePick phase = iota
	phaseLoading
	phaseQuestion
	phaseFailed
)

// PracticeScreen serves an open-ended run of generated questions for one
// section. Practice answers are logged but never touch lesson or test
// progress, so drilling is free.
type PracticeScreen struct {
	gen    practice.Generator
	events store.EventRepo

	runID   string
	section course.Section

	phase     phase
	menu      components.Menu
	mc        components.MultiChoice
	question  *practice.Question
	genErr    error
	tickCount int

	qNum     int
	answered int
	correct  int
	seen     []string
	misses   []string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen. The caller must pass a non-nil
// generator; without a provider the home menu disables this entry.
func New(gen practice.Generator, events store.EventRepo) *PracticeScreen {
	s := &PracticeScreen{
		gen:    gen,
		events: events,
		runID:  uuid.New().String(),
	}

	var items []components.MenuItem
	for _, sec := range course.Sections() {
		sec := sec
		items = append(items, components.MenuItem{
			Label: sec.Title,
			Action: func() tea.Cmd {
				return s.startSection(sec)
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		if msg.err != nil {
			s.phase = phaseFailed
			s.genErr = msg.err
			return s, nil
		}
		s.question = msg.question
		s.qNum++
		s.mc = components.NewMultiChoice(msg.question.Prompt, msg.question.Options, msg.question.Correct)
		s.phase = phaseQuestion
		return s, nil

	case genTickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.tickCount++
		return s, genTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePick:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseLoading:
		// Generation keeps its own pace; nothing to press.

	case phaseQuestion:
		if s.mc.Submitted {
			switch key {
			case "n":
				return s, s.generate()
			case "s":
				s.phase = phasePick
				return s, nil
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			s.recordAnswer()
		}
		return s, cmd

	case phaseFailed:
		switch key {
		case "n":
			return s, s.generate()
		case "s":
			s.phase = phasePick
			return s, nil
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *PracticeScreen) startSection(sec course.Section) tea.Cmd {
	s.section = sec
	return s.generate()
}

// generate asks for one question. A failure lands on the failed screen
// with a manual retry; there is no automatic retry loop.
func (s *PracticeScreen) generate() tea.Cmd {
	s.phase = phaseLoading
	s.tickCount = 0
	s.genErr = nil

	gen := s.gen
	input := practice.GenerateInput{
		Section:       s.section,
		RecentPrompts: append([]string(nil), s.seen...),
		RecentMisses:  append([]string(nil), s.misses...),
	}
	ask := func() tea.Msg {
		q, err := gen.Generate(context.Background(), input)
		return questionMsg{question: q, err: err}
	}
	return tea.Batch(ask, genTick())
}

func genTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return genTickMsg(t)
	})
}

// recordAnswer updates run stats and logs the answer. Practice runs
// share the answer log with tests but never write progress records.
func (s *PracticeScreen) recordAnswer() {
	q := s.question
	right := q.Check(s.mc.ChosenIndex)

	s.answered++
	if right {
		s.correct++
	} else {
		s.misses = append(s.misses, q.Prompt)
	}
	s.seen = append(s.seen, q.Prompt)

	awarded := 0
	if right {
		awarded = 1
	}
	var learnerAnswer string
	if s.mc.ChosenIndex >= 0 && s.mc.ChosenIndex < len(q.Options) {
		learnerAnswer = q.Options[s.mc.ChosenIndex]
	}

	if s.events != nil {
		_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			AssessmentID:  s.runID,
			SectionID:     q.SectionID,
			QuestionID:    fmt.Sprintf("practice-%d", s.qNum),
			Kind:          string(course.MultipleChoice),
			Prompt:        q.Prompt,
			LearnerAnswer: learnerAnswer,
			Awarded:       awarded,
			MaxScore:      1,
			Feedback:      q.Explanation,
		})
	}
}

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phasePick:
		return s.viewPick(width)
	case phaseLoading:
		return s.viewLoading(width)
	case phaseFailed:
		return s.viewFailed(width)
	}
	return s.viewQuestion(width)
}

func (s *PracticeScreen) viewPick(width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a section to drill"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Practice never counts toward your scores."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}

func (s *PracticeScreen) viewLoading(width int) string {
	dots := strings.Repeat(".", s.tickCount%4)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\nWriting a question on " + s.section.Title + dots)
}

func (s *PracticeScreen) viewFailed(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Could not generate a question"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.genErr.Error()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[n] try again   [s] switch section   [q] leave"))
	return b.String()
}

func (s *PracticeScreen) viewQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Practice · " + s.section.Title)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered · %d correct", s.answered, s.correct))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	measure := min(width-8, 72)
	if measure < 20 {
		measure = 20
	}
	indent := lipgloss.NewStyle().PaddingLeft(4)

	block := lipgloss.NewStyle().Width(measure).Render(s.mc.View())
	b.WriteString(indent.Render(block))

	if s.mc.Submitted {
		b.WriteString("\n\n")
		verdict := theme.Correct.Render("Correct!")
		if !s.mc.IsCorrect() {
			verdict = theme.Incorrect.Render("Not quite")
		}
		b.WriteString(indent.Render(verdict))
		if s.question.Explanation != "" {
			b.WriteString("\n\n")
			exp := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(measure).
				Render(s.question.Explanation)
			b.WriteString(indent.Render(exp))
		}
	}

	return b.String()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePick:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		if s.mc.Submitted {
			return []layout.KeyHint{
				{Key: "n", Description: "Next question"},
				{Key: "s", Description: "Switch section"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}
