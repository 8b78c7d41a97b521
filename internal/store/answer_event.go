package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetSectionID(data.SectionID).
		SetQuestionID(data.QuestionID).
		SetKind(data.Kind).
		SetPrompt(data.Prompt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetAwarded(data.Awarded).
		SetMaxScore(data.MaxScore).
		SetSource(data.Source).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
