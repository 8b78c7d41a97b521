package settings

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/layout"
	"github.com/kavitha/econ101/internal/ui/theme"
)

// savedMsg reports the outcome of writing settings.
type savedMsg struct {
	err        error
	keyChanged bool
}

const (
	fieldName = iota
	fieldKey
	fieldCount
)

// SettingsScreen edits the display name and the API key. The provider
// stack is wired at startup, so a changed key takes effect on the next
// run; the screen says so instead of pretending otherwise.
type SettingsScreen struct {
	records store.RecordRepo
	modelID string

	name    components.TextInput
	key     components.TextInput
	focused int

	origKey    string
	saved      bool
	keyChanged bool
	saveErr    error
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen. modelID is the active grading model,
// empty when no provider is configured.
func New(records store.RecordRepo, modelID string) *SettingsScreen {
	current := progress.LoadSettings(context.Background(), records)

	name := components.NewTextInput("How should we greet you?", 40)
	name.SetValue(current.DisplayName)

	key := components.NewTextInput("sk-... (Anthropic, OpenAI, or Gemini)", 200)
	key.Model.EchoMode = textinput.EchoPassword
	key.SetValue(current.APIKey)
	key.Blur()

	return &SettingsScreen{
		records: records,
		modelID: modelID,
		name:    name,
		key:     key,
		origKey: current.APIKey,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saveErr = msg.err
		s.saved = msg.err == nil
		if msg.err == nil {
			s.keyChanged = msg.keyChanged
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	if s.focused == fieldName {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.key, cmd = s.key.Update(msg)
	}
	return s, cmd
}

func (s *SettingsScreen) focusField(i int) tea.Cmd {
	s.focused = i
	if i == fieldName {
		s.key.Blur()
		return s.name.Focus()
	}
	s.name.Blur()
	return s.key.Focus()
}

func (s *SettingsScreen) save() tea.Cmd {
	records := s.records
	next := progress.Settings{
		DisplayName: strings.TrimSpace(s.name.Value()),
		APIKey:      strings.TrimSpace(s.key.Value()),
	}
	keyChanged := next.APIKey != s.origKey

	return func() tea.Msg {
		err := progress.SaveSettings(context.Background(), records, next)
		return savedMsg{err: err, keyChanged: keyChanged}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	label := func(text string, active bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if active {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("    " + label("Display name", s.focused == fieldName))
	b.WriteString("\n    " + s.name.View())
	b.WriteString("\n\n")
	b.WriteString("    " + label("API key", s.focused == fieldKey))
	b.WriteString("\n    " + s.key.View())
	b.WriteString("\n\n")

	status := "No API key configured. Grading falls back to the offline rubric and the tutor to fixed hints."
	if s.modelID != "" {
		status = "Grading model: " + s.modelID
	}
	b.WriteString("    " + theme.Hint.Render(status))
	b.WriteString("\n")

	if s.saveErr != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("could not save: "+s.saveErr.Error()))
	} else if s.saved {
		note := "Saved."
		if s.keyChanged {
			note = "Saved. Restart econ101 to apply the new key."
		}
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(theme.Success).Render(note))
	}

	return b.String()
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}
