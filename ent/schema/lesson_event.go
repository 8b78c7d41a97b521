package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records a lesson being marked complete.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("section_id").
			NotEmpty().
			Comment("Section the lesson belongs to"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson within the section"),
		field.String("title").
			Default("").
			Comment("Lesson title at completion time"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id"),
		index.Fields("section_id", "lesson_id"),
	}
}
