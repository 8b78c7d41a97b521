package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one tutor exchange: the learner's question and the
// reply they were shown.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups exchanges from one chat screen visit"),
		field.String("context_id").
			Default("").
			Comment("Lesson or question the chat was opened from, if any"),
		field.Text("question").
			NotEmpty().
			Comment("What the learner asked"),
		field.Text("reply").
			NotEmpty().
			Comment("What the tutor answered"),
		field.String("source").
			NotEmpty().
			Comment("model or static"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
