package tutor

import (
	"context"
	"strings"

	"github.com/kavitha/econ101/internal/llm"
)

// Config holds sampling settings for the model tutor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature runs warmer than
// grading: conversation should not feel canned.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
	}
}

// ModelTutor holds a Socratic conversation through an LLM. Any failure
// degrades to the apology reply; nothing is retried, asking again is the
// retry.
type ModelTutor struct {
	provider llm.Provider
	cfg      Config
}

// NewModelTutor creates a model-backed tutor.
func NewModelTutor(provider llm.Provider, cfg Config) *ModelTutor {
	return &ModelTutor{provider: provider, cfg: cfg}
}

func (t *ModelTutor) Reply(ctx context.Context, ex Exchange) Reply {
	ctx = llm.WithPurpose(ctx, llm.PurposeTutor)

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      buildTutorSystem(ex.Context),
		Messages:    buildTutorMessages(ex),
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return Reply{Text: apologyReply, Source: SourceStatic}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Reply{Text: apologyReply, Source: SourceStatic}
	}
	return Reply{Text: text, Source: SourceModel}
}

// buildTutorMessages maps the conversation onto role-tagged messages,
// ending with the new question.
func buildTutorMessages(ex Exchange) []llm.Message {
	msgs := make([]llm.Message, 0, len(ex.History)+1)
	for _, turn := range ex.History {
		role := llm.RoleUser
		if turn.Role == RoleTutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: turn.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: ex.Question})
}
