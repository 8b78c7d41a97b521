package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed section test or final exam.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("UUID linking per-question AnswerEvents"),
		field.String("scope").
			NotEmpty().
			Comment("section-test or final-exam"),
		field.String("section_id").
			Default("").
			Comment("Section under test; empty for the final exam"),
		field.Int("percent").
			Comment("Overall result, 0-100"),
		field.Int("questions").
			Comment("Number of questions graded"),
		field.Int64("duration_secs").
			Default(0).
			Comment("Seconds from first question to submission"),
		field.Strings("weak_sections").
			Optional().
			Comment("Review recommendations, final exam only, weakest first"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("scope"),
		index.Fields("section_id"),
	}
}
