package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// replyMsg carries the tutor's answer back to the screen.
type replyMsg struct {
	reply tutor.Reply
}

// thinkTickMsg animates the waiting indicator.
type thinkTickMsg time.Time

// ChatScreen is a question-and-answer conversation with the tutor. It
// can be opened bare from the home menu or with lesson context, which
// the tutor sees but the learner does not retype.
type ChatScreen struct {
	tut         tutor.Tutor
	events      store.EventRepo
	contextText string
	sessionID   string

	history []tutor.Turn
	input   components.TextInput

	waiting   bool
	tickCount int

	// lines scrolled up from the transcript bottom
	scrollBack int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen. contextText names the material the chat was
// opened from; empty means a general question.
func New(tut tutor.Tutor, events store.EventRepo, contextText string) *ChatScreen {
	return &ChatScreen{
		tut:         tut,
		events:      events,
		contextText: contextText,
		sessionID:   uuid.New().String(),
		input:       components.NewTextInput("Ask about the material...", 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		c.history = append(c.history, tutor.Turn{Role: tutor.RoleTutor, Text: msg.reply.Text})
		c.scrollBack = 0
		return c, nil

	case thinkTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.tickCount++
		return c, thinkTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.send()
		case "up":
			c.scrollBack++
			return c, nil
		case "down":
			if c.scrollBack > 0 {
				c.scrollBack--
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// exchange snapshots the conversation for the tutor: everything said so
// far, not including the question being asked now.
func (c *ChatScreen) exchange(question string) tutor.Exchange {
	return tutor.Exchange{
		Context:  c.contextText,
		History:  append([]tutor.Turn(nil), c.history...),
		Question: question,
	}
}

// send submits the typed question.
func (c *ChatScreen) send() tea.Cmd {
	if c.waiting {
		return nil
	}
	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}

	ex := c.exchange(question)

	c.history = append(c.history, tutor.Turn{Role: tutor.RoleLearner, Text: question})
	c.input.Reset()
	c.waiting = true
	c.tickCount = 0
	c.scrollBack = 0

	tut, events := c.tut, c.events
	sessionID, contextText := c.sessionID, c.contextText
	ask := func() tea.Msg {
		ctx := context.Background()
		reply := tut.Reply(ctx, ex)

		if events != nil {
			_ = events.AppendChatEvent(ctx, store.ChatEventData{
				SessionID: sessionID,
				ContextID: contextText,
				Question:  question,
				Reply:     reply.Text,
				Source:    string(reply.Source),
			})
		}
		return replyMsg{reply: reply}
	}
	return tea.Batch(ask, thinkTick())
}

func thinkTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return thinkTickMsg(t)
	})
}

func (c *ChatScreen) View(width, height int) string {
	measure := min(width-8, 72)
	if measure < 20 {
		measure = 20
	}

	var header string
	headerLines := 0
	if c.contextText != "" {
		header = "    " + theme.Hint.Render(c.contextText)
		headerLines = 2
	}

	// input block pinned at the bottom, transcript above it
	inputBlock := "    " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("> ") + c.input.View()
	transcriptHeight := height - headerLines - 2
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	lines := c.transcriptLines(measure)

	// pin to the bottom, then apply manual scrollback
	maxBack := len(lines) - transcriptHeight
	if maxBack < 0 {
		maxBack = 0
	}
	if c.scrollBack > maxBack {
		c.scrollBack = maxBack
	}
	end := len(lines) - c.scrollBack
	start := end - transcriptHeight
	if start < 0 {
		start = 0
	}
	transcript := strings.Join(lines[start:end], "\n")
	if pad := transcriptHeight - (end - start); pad > 0 {
		transcript = strings.Repeat("\n", pad) + transcript
	}

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}
	b.WriteString(transcript)
	b.WriteString("\n\n")
	b.WriteString(inputBlock)
	return b.String()
}

// transcriptLines renders the whole conversation as wrapped lines.
func (c *ChatScreen) transcriptLines(measure int) []string {
	youLabel := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You")
	tutorLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Tutor")

	var lines []string
	if len(c.history) == 0 && !c.waiting {
		empty := theme.Hint.Render("Ask anything about the course. The tutor answers with questions\nthat nudge you toward working it out yourself.")
		for _, l := range strings.Split(empty, "\n") {
			lines = append(lines, "    "+l)
		}
		return lines
	}

	for _, turn := range c.history {
		label := tutorLabel
		if turn.Role == tutor.RoleLearner {
			label = youLabel
		}
		lines = append(lines, "    "+label)
		wrapped := theme.Body.Width(measure).Render(turn.Text)
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, "    "+l)
		}
		lines = append(lines, "")
	}

	if c.waiting {
		dots := strings.Repeat(".", c.tickCount%4)
		lines = append(lines, "    "+theme.Hint.Render("Tutor is thinking"+dots))
	}
	return lines
}

func (c *ChatScreen) Title() string {
	return "Tutor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
