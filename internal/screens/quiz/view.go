package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/grading"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderConfirmQuit(width)
	}
	switch s.phase {
	case phaseGrading:
		return s.renderGrading(width)
	case phaseResults:
		return s.renderResults(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) setName() string {
	if s.exam {
		return "Final exam"
	}
	return s.section.Title
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.setName())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", s.index+1, len(s.questions)))

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

	q := s.current()
	if q.Kind == course.MultipleChoice {
		block := lipgloss.NewStyle().Width(measure).Render(s.mc.View())
		b.WriteString(indent.Render(block))
		return b.String()
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(measure).
		Render(q.Prompt)
	b.WriteString(indent.Render(prompt))
	b.WriteString("\n\n")

	s.ta.SetWidth(measure)
	b.WriteString(indent.Render(s.ta.View()))
	b.WriteString("\n\n")
	b.WriteString(indent.Render(theme.Hint.Render("ctrl+s submits · an empty answer scores zero")))

	return b.String()
}

func (s *QuizScreen) renderGrading(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Grading your answers..."))
	b.WriteString("\n\n")

	total := len(s.questions)
	pct := 0.0
	if total > 0 {
		pct = float64(s.gradedDone) / float64(total)
	}
	bar := components.NewProgressBar("", pct, false, min(width-16, 50)).View()
	counter := fmt.Sprintf("  %d/%d", s.gradedDone, total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		bar+lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Short answers are graded one at a time, in order."))

	return b.String()
}

func (s *QuizScreen) renderConfirmQuit(width int) string {
	title := "Leave this test?"
	if s.exam {
		title = "Leave the exam?"
	}

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func (s *QuizScreen) renderResults(width, height int) string {
	lines := s.resultLines(width)

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
	out := strings.Join(lines[s.scrollOffset:end], "\n")

	if maxOffset > 0 && s.scrollOffset < maxOffset {
		out += "\n" + "    " + theme.Hint.Render("↓ more below")
	}
	return out
}

// resultLines builds the full results report; the caller windows it.
func (s *QuizScreen) resultLines(width int) []string {
	measure := min(width-12, 68)
	if measure < 20 {
		measure = 20
	}

	var lines []string
	lines = append(lines, "")

	verdict := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("%d%% · Passed", s.outcome.Percent))
	if s.outcome.Percent < assess.PassPercent {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("%d%% · Below %d%%", s.outcome.Percent, assess.PassPercent))
	}
	lines = append(lines, "    "+verdict)

	if s.saveErr != nil {
		lines = append(lines, "    "+lipgloss.NewStyle().Foreground(theme.Error).
			Render("warning: results were not fully saved: "+s.saveErr.Error()))
	}
	lines = append(lines, "")

	for i, q := range s.questions {
		res := s.outcome.Results[i]

		var icon string
		switch {
		case res.Awarded == res.Max && res.Max > 0:
			icon = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		case res.Awarded == 0:
			icon = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		default:
			icon = lipgloss.NewStyle().Foreground(theme.Accent).Render("~")
		}

		prompt := q.Prompt
		avail := measure - 12
		if avail > 8 && len(prompt) > avail {
			prompt = prompt[:avail-1] + "…"
		}
		lines = append(lines, fmt.Sprintf("    %s %s  %s",
			icon,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", res.Awarded, res.Max)),
			lipgloss.NewStyle().Foreground(theme.Text).Render(prompt),
		))

		if res.Feedback != "" {
			fb := res.Feedback
			if res.Source == grading.SourceNoKey || res.Source == grading.SourceFallback {
				fb += " (graded offline)"
			}
			wrapped := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(measure).
				Render(fb)
			for _, l := range strings.Split(wrapped, "\n") {
				lines = append(lines, "        "+l)
			}
		}
	}

	if s.exam && s.rec != nil && len(s.rec.Weak) > 0 {
		lines = append(lines, "")
		lines = append(lines, "    "+lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("Focus your review"))
		for _, w := range s.rec.Weak {
			title := w.SectionID
			if sec, err := course.GetSection(w.SectionID); err == nil {
				title = sec.Title
			}
			lines = append(lines, fmt.Sprintf("      %s %s",
				lipgloss.NewStyle().Foreground(theme.Text).Render(title),
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d%%", w.Percent)),
			))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "    "+theme.Hint.Render("press enter to finish"))
	return lines
}
