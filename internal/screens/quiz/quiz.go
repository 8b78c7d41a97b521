package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/router"
	"github.com/kavitha/econ101/internal/screen"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/ui/components"
	"github.com/kavitha/econ101/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseGrading
	phaseResults
)

// QuizScreen runs one question set, a section test or the final exam,
// through three phases: answering, grading, results. Answers are only
// graded and recorded once the whole set is submitted; quitting midway
// records nothing.
type QuizScreen struct {
	exam      bool
	section   course.Section // zero value for the final exam
	questions []course.Question
	runner    *assess.Runner
	tracker   *progress.Tracker
	events    store.EventRepo

	assessmentID string
	startedAt    time.Time

	phase   phase
	index   int
	mc      components.MultiChoice
	ta      components.TextArea
	answers assess.Answers

	confirmQuit bool

	gradeCh    chan tea.Msg
	gradedDone int

	outcome      assess.Outcome
	rec          *assess.Recommendation
	saveErr      error
	scrollOffset int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// NewSectionTest creates a quiz over one section's test questions.
func NewSectionTest(sec course.Section, runner *assess.Runner, tracker *progress.Tracker, events store.EventRepo) *QuizScreen {
	return newQuiz(false, sec, sec.Test, runner, tracker, events)
}

// NewExam creates a quiz over the final exam.
func NewExam(runner *assess.Runner, tracker *progress.Tracker, events store.EventRepo) *QuizScreen {
	return newQuiz(true, course.Section{}, course.FinalExam(), runner, tracker, events)
}

func newQuiz(exam bool, sec course.Section, questions []course.Question, runner *assess.Runner, tracker *progress.Tracker, events store.EventRepo) *QuizScreen {
	return &QuizScreen{
		exam:         exam,
		section:      sec,
		questions:    questions,
		runner:       runner,
		tracker:      tracker,
		events:       events,
		assessmentID: uuid.New().String(),
		startedAt:    time.Now(),
		answers: assess.Answers{
			Choice: map[string]int{},
			Text:   map[string]string{},
		},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if len(s.questions) == 0 {
		return s.startGrading()
	}
	return s.prepareQuestion()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradeProgressMsg:
		s.gradedDone = msg.done
		return s, waitForGrade(s.gradeCh)

	case gradeCompleteMsg:
		s.outcome = msg.outcome
		s.rec = msg.rec
		s.saveErr = msg.saveErr
		s.phase = phaseResults
		s.scrollOffset = 0
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (cursor blink) go to the focused text area.
	if s.answeringShortAnswer() {
		var cmd tea.Cmd
		s.ta, cmd = s.ta.Update(msg)
		return s, cmd
	}
	return s, nil
}

// HandlesEsc claims esc until the results are up, so the app cannot pop
// a half-answered test. In results esc goes back as usual.
func (s *QuizScreen) HandlesEsc() bool {
	return s.phase != phaseResults
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
			if s.answeringShortAnswer() {
				return s, s.ta.Focus()
			}
		}
		return s, nil
	}

	switch s.phase {
	case phaseAnswering:
		if key == "esc" {
			s.confirmQuit = true
			return s, nil
		}

		q := s.current()
		if q.Kind == course.MultipleChoice {
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			if s.mc.Submitted {
				// Advance before the next render so the component
				// never reveals the correct option mid-test.
				s.answers.Choice[q.ID] = s.mc.ChosenIndex
				return s, s.advance()
			}
			return s, cmd
		}

		if key == "ctrl+s" {
			// An empty answer is allowed; it grades as zero.
			s.answers.Text[q.ID] = s.ta.Value()
			return s, s.advance()
		}
		var cmd tea.Cmd
		s.ta, cmd = s.ta.Update(msg)
		return s, cmd

	case phaseGrading:
		// Keys wait until grading finishes.

	case phaseResults:
		switch key {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *QuizScreen) current() course.Question {
	return s.questions[s.index]
}

func (s *QuizScreen) answeringShortAnswer() bool {
	return s.phase == phaseAnswering && !s.confirmQuit &&
		s.index < len(s.questions) && s.current().Kind == course.ShortAnswer
}

// advance moves to the next question, or starts grading after the last.
func (s *QuizScreen) advance() tea.Cmd {
	s.index++
	if s.index >= len(s.questions) {
		return s.startGrading()
	}
	return s.prepareQuestion()
}

func (s *QuizScreen) prepareQuestion() tea.Cmd {
	q := s.current()
	if q.Kind == course.MultipleChoice {
		s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
		return nil
	}
	s.ta = components.NewTextArea("Write a few sentences...")
	return s.ta.Init()
}

// startGrading runs the grader on its own goroutine and streams progress
// back through a channel. Grading and persistence happen together so the
// results phase starts with everything written.
func (s *QuizScreen) startGrading() tea.Cmd {
	s.phase = phaseGrading
	s.gradedDone = 0

	ch := make(chan tea.Msg, len(s.questions)+1)
	s.gradeCh = ch

	go func() {
		ctx := context.Background()
		outcome := s.runner.Run(ctx, s.questions, s.answers, func(done, total int) {
			ch <- gradeProgressMsg{done: done, total: total}
		})

		var rec *assess.Recommendation
		if s.exam {
			r := assess.Recommend(outcome, course.SectionIDs(), course.ExamSections())
			rec = &r
		}

		saveErr := s.persist(ctx, outcome, rec)
		ch <- gradeCompleteMsg{outcome: outcome, rec: rec, saveErr: saveErr}
	}()

	return waitForGrade(ch)
}

// waitForGrade delivers the next grading message. The returned command
// is re-issued after every message so the channel keeps draining.
func waitForGrade(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// persist writes answer events, the assessment event, and the score
// record. The first failure is kept for the results view; later writes
// still run so one bad write loses as little as possible.
func (s *QuizScreen) persist(ctx context.Context, outcome assess.Outcome, rec *assess.Recommendation) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i, q := range s.questions {
		res := outcome.Results[i]

		sectionID := s.section.ID
		if s.exam {
			sectionID, _ = course.ExamSectionID(q.ID)
		}

		keep(s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			AssessmentID:  s.assessmentID,
			SectionID:     sectionID,
			QuestionID:    q.ID,
			Kind:          string(q.Kind),
			Prompt:        q.Prompt,
			LearnerAnswer: s.learnerAnswer(q),
			Awarded:       res.Awarded,
			MaxScore:      res.Max,
			Source:        string(res.Source),
			Feedback:      res.Feedback,
		}))
	}

	scope := "section-test"
	sectionID := s.section.ID
	var weak []string
	if s.exam {
		scope = "final-exam"
		sectionID = ""
		if rec != nil {
			for _, w := range rec.Weak {
				weak = append(weak, w.SectionID)
			}
		}
	}
	keep(s.events.AppendAssessmentEvent(ctx, store.AssessmentEventData{
		AssessmentID: s.assessmentID,
		Scope:        scope,
		SectionID:    sectionID,
		Percent:      outcome.Percent,
		Questions:    len(s.questions),
		DurationSecs: int64(time.Since(s.startedAt).Seconds()),
		WeakSections: weak,
	}))

	if s.exam {
		keep(s.tracker.RecordExam(ctx, outcome.Percent))
	} else {
		keep(s.tracker.RecordSectionTest(ctx, s.section.ID, outcome.Percent))
	}

	return firstErr
}

func (s *QuizScreen) learnerAnswer(q course.Question) string {
	switch q.Kind {
	case course.MultipleChoice:
		if idx, ok := s.answers.Choice[q.ID]; ok && idx >= 0 && idx < len(q.Options) {
			return q.Options[idx]
		}
	case course.ShortAnswer:
		return s.answers.Text[q.ID]
	}
	return ""
}

func (s *QuizScreen) Title() string {
	if s.exam {
		return "Final Exam"
	}
	return s.section.Title + " Test"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseAnswering:
		if s.index < len(s.questions) && s.current().Kind == course.ShortAnswer {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Submit"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Pick"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return nil
}
