// Package assess runs question sets (section tests and the final exam),
// turning a learner's answers into per-question results and an overall
// percentage, and maps exam results back to the sections worth reviewing.
package assess

import (
	"context"
	"math"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/grading"
)

// PassPercent is the threshold treated as a passing result. The engine
// only reports percentages; whether to act on the threshold is the
// caller's call.
const PassPercent = 70

// Answers holds everything the learner entered for one question set.
// Choice maps question ID to the selected option index; Text maps
// question ID to a free-text response. A question absent from its map is
// unanswered: wrong for multiple choice, empty answer for short answer.
type Answers struct {
	Choice map[string]int
	Text   map[string]string
}

// QuestionResult is the graded outcome of a single question.
// Feedback and Source are set for short answers only.
type QuestionResult struct {
	QuestionID string
	Awarded    int
	Max        int
	Feedback   string
	Source     grading.Source
}

// Outcome is the result of running one question set.
type Outcome struct {
	Percent int
	Results []QuestionResult
}

// ProgressFunc is called after each question is graded, so a caller can
// show progress while short-answer grading waits on the network.
type ProgressFunc func(done, total int)

// Runner grades question sets. The zero value is not usable; construct
// with NewRunner.
type Runner struct {
	grader grading.Grader
}

// NewRunner creates a Runner. A nil grader falls back to offline
// heuristic grading.
func NewRunner(grader grading.Grader) *Runner {
	if grader == nil {
		grader = grading.New(nil)
	}
	return &Runner{grader: grader}
}

// Run grades every question in input order and returns the aggregate
// outcome. Short-answer questions each issue their own grading call,
// strictly sequentially, so per-question feedback arrives in question
// order. onProgress may be nil.
//
// Callers must supply a non-empty question set with positive max scores;
// a set whose max total is zero reports percent 0.
func (r *Runner) Run(ctx context.Context, questions []course.Question, answers Answers, onProgress ProgressFunc) Outcome {
	results := make([]QuestionResult, 0, len(questions))
	sumAwarded, sumMax := 0, 0

	for i, q := range questions {
		res := QuestionResult{QuestionID: q.ID, Max: q.MaxScore}

		switch q.Kind {
		case course.MultipleChoice:
			if idx, ok := answers.Choice[q.ID]; ok && idx == q.CorrectIndex {
				res.Awarded = q.MaxScore
			}
		case course.ShortAnswer:
			graded := r.grader.Grade(ctx, q, answers.Text[q.ID])
			res.Awarded = graded.Score
			res.Feedback = graded.Feedback
			res.Source = graded.Source
		}

		sumAwarded += res.Awarded
		sumMax += q.MaxScore
		results = append(results, res)

		if onProgress != nil {
			onProgress(i+1, len(questions))
		}
	}

	return Outcome{
		Percent: percent(sumAwarded, sumMax),
		Results: results,
	}
}

// percent maps awarded/max onto an integer 0..100, rounded half-up.
// A zero or negative max reports 0 rather than dividing by it.
func percent(awarded, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(awarded) / float64(max)))
}
