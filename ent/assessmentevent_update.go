// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kavitha/econ101/ent/assessmentevent"
	"github.com/kavitha/econ101/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *AssessmentEventUpdate) SetScope(v string) *AssessmentEventUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScope(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *AssessmentEventUpdate) SetSectionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSectionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetPercent sets the "percent" field.
func (_u *AssessmentEventUpdate) SetPercent(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePercent(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *AssessmentEventUpdate) AddPercent(v int) *AssessmentEventUpdate {
	_u.mutation.AddPercent(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AssessmentEventUpdate) SetQuestions(v int) *AssessmentEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuestions(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *AssessmentEventUpdate) AddQuestions(v int) *AssessmentEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdate) SetDurationSecs(v int64) *AssessmentEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationSecs(v *int64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdate) AddDurationSecs(v int64) *AssessmentEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetWeakSections sets the "weak_sections" field.
func (_u *AssessmentEventUpdate) SetWeakSections(v []string) *AssessmentEventUpdate {
	_u.mutation.SetWeakSections(v)
	return _u
}

// AppendWeakSections appends value to the "weak_sections" field.
func (_u *AssessmentEventUpdate) AppendWeakSections(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendWeakSections(v)
	return _u
}

// ClearWeakSections clears the value of the "weak_sections" field.
func (_u *AssessmentEventUpdate) ClearWeakSections() *AssessmentEventUpdate {
	_u.mutation.ClearWeakSections()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := assessmentevent.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(assessmentevent.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(assessmentevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(assessmentevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(assessmentevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(assessmentevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(assessmentevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WeakSections(); ok {
		_spec.SetField(assessmentevent.FieldWeakSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldWeakSections, value)
		})
	}
	if _u.mutation.WeakSectionsCleared() {
		_spec.ClearField(assessmentevent.FieldWeakSections, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *AssessmentEventUpdateOne) SetScope(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScope(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *AssessmentEventUpdateOne) SetSectionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSectionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetPercent sets the "percent" field.
func (_u *AssessmentEventUpdateOne) SetPercent(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePercent(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *AssessmentEventUpdateOne) AddPercent(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPercent(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AssessmentEventUpdateOne) SetQuestions(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuestions(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *AssessmentEventUpdateOne) AddQuestions(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) SetDurationSecs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationSecs(v *int64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) AddDurationSecs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetWeakSections sets the "weak_sections" field.
func (_u *AssessmentEventUpdateOne) SetWeakSections(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetWeakSections(v)
	return _u
}

// AppendWeakSections appends value to the "weak_sections" field.
func (_u *AssessmentEventUpdateOne) AppendWeakSections(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendWeakSections(v)
	return _u
}

// ClearWeakSections clears the value of the "weak_sections" field.
func (_u *AssessmentEventUpdateOne) ClearWeakSections() *AssessmentEventUpdateOne {
	_u.mutation.ClearWeakSections()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := assessmentevent.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(assessmentevent.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(assessmentevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(assessmentevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(assessmentevent.FieldPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(assessmentevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(assessmentevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WeakSections(); ok {
		_spec.SetField(assessmentevent.FieldWeakSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldWeakSections, value)
		})
	}
	if _u.mutation.WeakSectionsCleared() {
		_spec.ClearField(assessmentevent.FieldWeakSections, field.TypeJSON)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
