package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded question within a test or exam run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.String("section_id").
			Default("").
			Comment("Owning section; exam questions use the recommendation mapping"),
		field.String("question_id").
			NotEmpty().
			Comment("Question this answer was for"),
		field.String("kind").
			NotEmpty().
			Comment("multiple-choice or short-answer"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.Text("learner_answer").
			Default("").
			Comment("What the learner entered; empty if skipped"),
		field.Int("awarded").
			Comment("Points awarded"),
		field.Int("max_score").
			Comment("Points available"),
		field.String("source").
			Default("").
			Comment("Grading path for short answers: model, heuristic-no-key, heuristic-fallback"),
		field.Text("feedback").
			Default("").
			Comment("Grader feedback for short answers"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("section_id"),
		index.Fields("question_id"),
	}
}
