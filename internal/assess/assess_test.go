package assess

import (
	"context"
	"testing"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/grading"
)

func mcq(id string, correct int) course.Question {
	return course.Question{
		ID:           id,
		Kind:         course.MultipleChoice,
		Prompt:       "Pick one",
		MaxScore:     1,
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
	}
}

func shortAnswer(id string, maxScore int) course.Question {
	return course.Question{
		ID:       id,
		Kind:     course.ShortAnswer,
		Prompt:   "Explain",
		MaxScore: maxScore,
		Rubric:   course.Rubric{Criteria: []string{"demand", "supply"}},
	}
}

// stubGrader returns scripted scores and records call order.
type stubGrader struct {
	scores map[string]int
	calls  []string
}

func (s *stubGrader) Grade(_ context.Context, q course.Question, _ string) grading.GradeResult {
	s.calls = append(s.calls, q.ID)
	return grading.GradeResult{
		Score:    s.scores[q.ID],
		Feedback: "scripted feedback for " + q.ID,
		Source:   grading.SourceModel,
	}
}

func TestRun_AllCorrectMultipleChoice(t *testing.T) {
	questions := []course.Question{mcq("q1", 0), mcq("q2", 2), mcq("q3", 3)}
	answers := Answers{Choice: map[string]int{"q1": 0, "q2": 2, "q3": 3}}

	out := NewRunner(nil).Run(context.Background(), questions, answers, nil)

	if out.Percent != 100 {
		t.Errorf("percent = %d, want 100", out.Percent)
	}
	for _, res := range out.Results {
		if res.Awarded != res.Max {
			t.Errorf("%s: awarded = %d, want %d", res.QuestionID, res.Awarded, res.Max)
		}
	}
}

func TestRun_AllWrongMultipleChoice(t *testing.T) {
	questions := []course.Question{mcq("q1", 0), mcq("q2", 2)}
	answers := Answers{Choice: map[string]int{"q1": 1, "q2": 3}}

	out := NewRunner(nil).Run(context.Background(), questions, answers, nil)

	if out.Percent != 0 {
		t.Errorf("percent = %d, want 0", out.Percent)
	}
}

func TestRun_UnansweredIsWrong(t *testing.T) {
	// q1's correct index is 0; a missing answer must not match it.
	questions := []course.Question{mcq("q1", 0)}
	answers := Answers{Choice: map[string]int{}}

	out := NewRunner(nil).Run(context.Background(), questions, answers, nil)

	if out.Percent != 0 {
		t.Errorf("percent = %d, want 0 (unanswered != index 0)", out.Percent)
	}
}

// A full exam shape: 6 multiple choice at 1 point, 6 short answers at 3
// points. All MCQs right and all short answers blank scores
// round(100*6/24) = 25.
func TestRun_ExamWithBlankShortAnswers(t *testing.T) {
	var questions []course.Question
	choice := map[string]int{}
	for _, id := range []string{"m1", "m2", "m3", "m4", "m5", "m6"} {
		questions = append(questions, mcq(id, 1))
		choice[id] = 1
	}
	for _, id := range []string{"s1", "s2", "s3", "s4", "s5", "s6"} {
		questions = append(questions, shortAnswer(id, 3))
	}

	out := NewRunner(grading.New(nil)).Run(context.Background(), questions, Answers{Choice: choice}, nil)

	if out.Percent != 25 {
		t.Errorf("percent = %d, want 25", out.Percent)
	}
}

func TestRun_ShortAnswerCarriesFeedback(t *testing.T) {
	g := &stubGrader{scores: map[string]int{"s1": 2}}
	questions := []course.Question{shortAnswer("s1", 3)}
	answers := Answers{Text: map[string]string{"s1": "demand rises"}}

	out := NewRunner(g).Run(context.Background(), questions, answers, nil)

	res := out.Results[0]
	if res.Awarded != 2 {
		t.Errorf("awarded = %d, want 2", res.Awarded)
	}
	if res.Feedback == "" {
		t.Error("short-answer result should carry grader feedback")
	}
	if res.Source != grading.SourceModel {
		t.Errorf("source = %q, want %q", res.Source, grading.SourceModel)
	}
}

func TestRun_GradesInQuestionOrder(t *testing.T) {
	g := &stubGrader{scores: map[string]int{}}
	questions := []course.Question{
		shortAnswer("s1", 3), mcq("m1", 0), shortAnswer("s2", 3), shortAnswer("s3", 3),
	}

	out := NewRunner(g).Run(context.Background(), questions, Answers{}, nil)

	wantCalls := []string{"s1", "s2", "s3"}
	if len(g.calls) != len(wantCalls) {
		t.Fatalf("grader calls = %v, want %v", g.calls, wantCalls)
	}
	for i, id := range wantCalls {
		if g.calls[i] != id {
			t.Errorf("call %d = %q, want %q", i, g.calls[i], id)
		}
	}
	for i, q := range questions {
		if out.Results[i].QuestionID != q.ID {
			t.Errorf("result %d = %q, want %q (input order)", i, out.Results[i].QuestionID, q.ID)
		}
	}
}

func TestRun_ProgressCallback(t *testing.T) {
	questions := []course.Question{mcq("q1", 0), mcq("q2", 1), mcq("q3", 2)}

	var seen [][2]int
	NewRunner(nil).Run(context.Background(), questions, Answers{}, func(done, total int) {
		seen = append(seen, [2]int{done, total})
	})

	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(seen) != len(want) {
		t.Fatalf("callbacks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestRun_PercentRoundsHalfUp(t *testing.T) {
	g := &stubGrader{scores: map[string]int{"s1": 1}}
	// 1 of 3 points: round(33.33) = 33.
	out := NewRunner(g).Run(context.Background(), []course.Question{shortAnswer("s1", 3)}, Answers{}, nil)
	if out.Percent != 33 {
		t.Errorf("percent = %d, want 33", out.Percent)
	}

	g = &stubGrader{scores: map[string]int{"s1": 2}}
	// 2 of 3: round(66.67) = 67.
	out = NewRunner(g).Run(context.Background(), []course.Question{shortAnswer("s1", 3)}, Answers{}, nil)
	if out.Percent != 67 {
		t.Errorf("percent = %d, want 67", out.Percent)
	}
}

func TestRun_EmptySetGuarded(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), nil, Answers{}, nil)
	if out.Percent != 0 {
		t.Errorf("percent = %d, want 0", out.Percent)
	}
	if len(out.Results) != 0 {
		t.Errorf("results = %v, want empty", out.Results)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		awarded, max, want int
	}{
		{0, 10, 0},
		{10, 10, 100},
		{6, 24, 25},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := percent(tt.awarded, tt.max); got != tt.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tt.awarded, tt.max, got, tt.want)
		}
	}
}
