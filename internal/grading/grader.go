package grading

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/llm"
)

// Source records which path produced a grade.
type Source string

const (
	// SourceModel means the score was parsed from a model response.
	SourceModel Source = "model"
	// SourceNoKey means no provider was configured; the rubric
	// heuristic graded the answer.
	SourceNoKey Source = "heuristic-no-key"
	// SourceFallback means the model call failed or returned no
	// parseable score; the rubric heuristic graded the answer.
	SourceFallback Source = "heuristic-fallback"
)

// GradeResult is the outcome of grading one short-answer response.
// Score is always in [0, question.MaxScore].
type GradeResult struct {
	Score    int
	Feedback string
	Source   Source
}

// Grader scores a short-answer response against its question's rubric.
// Implementations never return an error: every failure path resolves to
// a usable result, and Source tells the caller which path ran.
type Grader interface {
	Grade(ctx context.Context, q course.Question, answer string) GradeResult
}

// New returns a ModelGrader when provider is non-nil, otherwise a
// HeuristicGrader. Callers select offline vs. model grading purely by
// what they pass here.
func New(provider llm.Provider) Grader {
	if provider == nil {
		return HeuristicGrader{}
	}
	return NewModelGrader(provider, DefaultGraderConfig())
}

const (
	noKeyFeedback = "Scored with the built-in rubric matcher. Add an API key in Settings for model feedback on your answers."

	fallbackFeedback = "The grading service could not be reached, so this answer was scored with the built-in rubric matcher instead."
)

// HeuristicGrader grades entirely offline using the rubric heuristic.
type HeuristicGrader struct{}

func (HeuristicGrader) Grade(_ context.Context, q course.Question, answer string) GradeResult {
	return GradeResult{
		Score:    Score(answer, q.Rubric, q.MaxScore),
		Feedback: noKeyFeedback,
		Source:   SourceNoKey,
	}
}

// GraderConfig holds sampling settings for the model grader.
type GraderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGraderConfig returns sensible defaults. Temperature stays low:
// grading should be consistent run to run.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:   300,
		Temperature: 0.2,
	}
}

// ModelGrader asks an LLM to grade against the rubric and parses the
// score out of its reply. Any failure degrades to the heuristic — once,
// with no retry; resubmitting the answer is the way to try again.
type ModelGrader struct {
	provider llm.Provider
	cfg      GraderConfig
}

// NewModelGrader creates a model-backed grader.
func NewModelGrader(provider llm.Provider, cfg GraderConfig) *ModelGrader {
	return &ModelGrader{provider: provider, cfg: cfg}
}

func (g *ModelGrader) Grade(ctx context.Context, q course.Question, answer string) GradeResult {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	userMsg, err := buildGradeMessage(q, answer)
	if err != nil {
		return fallback(q, answer)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return fallback(q, answer)
	}

	text := resp.Text()
	got, total, ok := parseScoreFraction(text)
	if !ok {
		return fallback(q, answer)
	}

	return GradeResult{
		Score:    rescale(got, total, q.MaxScore),
		Feedback: text,
		Source:   SourceModel,
	}
}

func fallback(q course.Question, answer string) GradeResult {
	return GradeResult{
		Score:    Score(answer, q.Rubric, q.MaxScore),
		Feedback: fallbackFeedback,
		Source:   SourceFallback,
	}
}

// scorePattern matches the first "<got>/<total>" fraction in the model's
// reply, e.g. "Score: 2/3" or "2.5 / 3".
var scorePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`)

func parseScoreFraction(text string) (got, total float64, ok bool) {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	got, errGot := strconv.ParseFloat(m[1], 64)
	total, errTotal := strconv.ParseFloat(m[2], 64)
	if errGot != nil || errTotal != nil || total <= 0 {
		return 0, 0, false
	}
	return got, total, true
}

// rescale maps got/total onto [0, maxScore], rounded and clamped. Models
// sometimes grade on their own scale ("7/10" for a 3-point question).
func rescale(got, total float64, maxScore int) int {
	score := int(math.Round(got / total * float64(maxScore)))
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}
