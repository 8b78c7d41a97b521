package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Record is a namespaced JSON document, written whole on every change.
// The progress and settings records live here, keyed by fixed names.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed namespace name, e.g. progress or settings"),
		field.Bytes("data").
			Comment("The full document as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last full write"),
	}
}
