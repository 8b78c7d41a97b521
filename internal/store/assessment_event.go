package store

import (
	"context"
	"fmt"

	"github.com/kavitha/econ101/ent"
	"github.com/kavitha/econ101/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetScope(data.Scope).
		SetSectionID(data.SectionID).
		SetPercent(data.Percent).
		SetQuestions(data.Questions).
		SetDurationSecs(data.DurationSecs)

	if len(data.WeakSections) > 0 {
		builder = builder.SetWeakSections(data.WeakSections)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AssessmentHistory(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	q := r.client.AssessmentEvent.Query().
		Order(ent.Desc(assessmentevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment history: %w", err)
	}

	records := make([]AssessmentRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AssessmentRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				AssessmentID: e.AssessmentID,
				Scope:        e.Scope,
				SectionID:    e.SectionID,
				Percent:      e.Percent,
				Questions:    e.Questions,
				DurationSecs: e.DurationSecs,
				WeakSections: e.WeakSections,
			},
		})
	}
	return records, nil
}
