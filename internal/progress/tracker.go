package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kavitha/econ101/internal/store"
)

// progressKey is the record namespace the progress document lives under.
const progressKey = "progress"

// Tracker owns the live progress value and writes the whole document
// back through the record store after every mutation. It is built for
// the app's single active session; it does no locking.
type Tracker struct {
	records store.RecordRepo
	current Progress
}

// NewTracker creates a Tracker starting from empty progress. Call Load
// to pick up persisted state.
func NewTracker(records store.RecordRepo) *Tracker {
	return &Tracker{records: records, current: New()}
}

// Load reads the stored progress document. A missing or unreadable
// document means no prior data: the tracker keeps empty progress rather
// than reporting an error.
func (t *Tracker) Load(ctx context.Context) {
	data, err := t.records.Get(ctx, progressKey)
	if err != nil || data == nil {
		t.current = New()
		return
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		t.current = New()
		return
	}
	if p.Lessons == nil {
		p.Lessons = map[string]bool{}
	}
	if p.Sections == nil {
		p.Sections = map[string]ScoreRecord{}
	}
	p.Version = Version
	t.current = p
}

// Current returns the live progress value.
func (t *Tracker) Current() Progress {
	return t.current
}

// CompleteLesson marks a lesson done and persists.
func (t *Tracker) CompleteLesson(ctx context.Context, sectionID, lessonID string) error {
	t.current = CompleteLesson(t.current, sectionID, lessonID)
	return t.save(ctx)
}

// RecordSectionTest records a section test result and persists.
func (t *Tracker) RecordSectionTest(ctx context.Context, sectionID string, percent int) error {
	t.current = RecordSectionTest(t.current, sectionID, percent)
	return t.save(ctx)
}

// RecordExam records a final exam result and persists.
func (t *Tracker) RecordExam(ctx context.Context, percent int) error {
	t.current = RecordExam(t.current, percent)
	return t.save(ctx)
}

// Reset erases all progress, in memory and in the store. Settings and
// the event log are untouched.
func (t *Tracker) Reset(ctx context.Context) error {
	t.current = New()
	if err := t.records.Delete(ctx, progressKey); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// save writes the entire progress document. Partial writes never happen:
// a crash can only lose the in-flight operation, not corrupt prior state.
func (t *Tracker) save(ctx context.Context) error {
	data, err := json.Marshal(t.current)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := t.records.Put(ctx, progressKey, data); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}
