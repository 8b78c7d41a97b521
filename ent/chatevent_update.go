// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kavitha/econ101/ent/chatevent"
	"github.com/kavitha/econ101/ent/predicate"
)

// ChatEventUpdate is the builder for updating ChatEvent entities.
type ChatEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChatEventMutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdate) Where(ps ...predicate.ChatEvent) *ChatEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdate) SetSessionID(v string) *ChatEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSessionID(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ChatEventUpdate) SetContextID(v string) *ChatEventUpdate {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableContextID(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ChatEventUpdate) SetQuestion(v string) *ChatEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableQuestion(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReply sets the "reply" field.
func (_u *ChatEventUpdate) SetReply(v string) *ChatEventUpdate {
	_u.mutation.SetReply(v)
	return _u
}

// SetNillableReply sets the "reply" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableReply(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetReply(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ChatEventUpdate) SetSource(v string) *ChatEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSource(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdate) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := chatevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reply(); ok {
		if err := chatevent.ReplyValidator(v); err != nil {
			return &ValidationError{Name: "reply", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.reply": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := chatevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(chatevent.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(chatevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reply(); ok {
		_spec.SetField(chatevent.FieldReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(chatevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatEventUpdateOne is the builder for updating a single ChatEvent entity.
type ChatEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdateOne) SetSessionID(v string) *ChatEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSessionID(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ChatEventUpdateOne) SetContextID(v string) *ChatEventUpdateOne {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableContextID(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ChatEventUpdateOne) SetQuestion(v string) *ChatEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableQuestion(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReply sets the "reply" field.
func (_u *ChatEventUpdateOne) SetReply(v string) *ChatEventUpdateOne {
	_u.mutation.SetReply(v)
	return _u
}

// SetNillableReply sets the "reply" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableReply(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetReply(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ChatEventUpdateOne) SetSource(v string) *ChatEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSource(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdateOne) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdateOne) Where(ps ...predicate.ChatEvent) *ChatEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatEventUpdateOne) Select(field string, fields ...string) *ChatEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatEvent entity.
func (_u *ChatEventUpdateOne) Save(ctx context.Context) (*ChatEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdateOne) SaveX(ctx context.Context) *ChatEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := chatevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reply(); ok {
		if err := chatevent.ReplyValidator(v); err != nil {
			return &ValidationError{Name: "reply", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.reply": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := chatevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdateOne) sqlSave(ctx context.Context) (_node *ChatEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatevent.FieldID)
		for _, f := range fields {
			if !chatevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(chatevent.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(chatevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reply(); ok {
		_spec.SetField(chatevent.FieldReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(chatevent.FieldSource, field.TypeString, value)
	}
	_node = &ChatEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
