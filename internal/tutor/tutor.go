// Package tutor answers learner questions from the chat screen. With a
// provider configured it holds a Socratic conversation; without one it
// falls back to fixed study hints, so the chat always answers something.
package tutor

import (
	"context"

	"github.com/kavitha/econ101/internal/llm"
)

// Role identifies who spoke a turn.
type Role string

const (
	RoleLearner Role = "learner"
	RoleTutor   Role = "tutor"
)

// Turn is one prior message in the conversation.
type Turn struct {
	Role Role
	Text string
}

// Exchange is one question in context: the material the chat was opened
// from, the conversation so far (oldest first), and the new question.
type Exchange struct {
	Context  string
	History  []Turn
	Question string
}

// Source records which path produced a reply.
type Source string

const (
	SourceModel  Source = "model"
	SourceStatic Source = "static"
)

// Reply is what the learner is shown.
type Reply struct {
	Text   string
	Source Source
}

// Tutor produces a reply for an exchange. Implementations never return
// an error: every failure path resolves to usable study guidance.
type Tutor interface {
	Reply(ctx context.Context, ex Exchange) Reply
}

// New returns a ModelTutor when provider is non-nil, otherwise a
// StaticTutor.
func New(provider llm.Provider) Tutor {
	if provider == nil {
		return StaticTutor{}
	}
	return NewModelTutor(provider, DefaultConfig())
}

// StaticTutor replies with the fixed study hints, regardless of the
// question. Deterministic and stateless.
type StaticTutor struct{}

func (StaticTutor) Reply(_ context.Context, _ Exchange) Reply {
	return Reply{Text: studyHints, Source: SourceStatic}
}
