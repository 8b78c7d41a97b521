package progress

import (
	"context"
	"errors"
	"testing"
)

// fakeRecords implements store.RecordRepo in memory.
type fakeRecords struct {
	docs   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{docs: map[string][]byte{}}
}

func (f *fakeRecords) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs[key], nil
}

func (f *fakeRecords) Put(_ context.Context, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.docs[key] = data
	return nil
}

func (f *fakeRecords) Delete(_ context.Context, key string) error {
	delete(f.docs, key)
	return nil
}

func TestTracker_LoadMissingGivesEmpty(t *testing.T) {
	tr := NewTracker(newFakeRecords())
	tr.Load(context.Background())

	if got := tr.Current().LessonsDone(); got != 0 {
		t.Errorf("lessons done = %d, want 0 on first run", got)
	}
}

func TestTracker_RoundTrip(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	tr := NewTracker(records)
	tr.Load(ctx)
	if err := tr.CompleteLesson(ctx, "scarcity", "ppc"); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if err := tr.RecordSectionTest(ctx, "scarcity", 80); err != nil {
		t.Fatalf("record section test: %v", err)
	}
	if err := tr.RecordExam(ctx, 72); err != nil {
		t.Fatalf("record exam: %v", err)
	}

	// A fresh tracker over the same store sees everything.
	tr2 := NewTracker(records)
	tr2.Load(ctx)
	p := tr2.Current()

	if !p.LessonDone("scarcity", "ppc") {
		t.Error("lesson completion lost across reload")
	}
	if got := p.SectionScore("scarcity"); got.Best != 80 || got.Attempts != 1 {
		t.Errorf("section score = %+v, want best 80 attempts 1", got)
	}
	if p.Exam.Best != 72 {
		t.Errorf("exam best = %d, want 72", p.Exam.Best)
	}
}

func TestTracker_EveryMutationWritesWholeDocument(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	tr := NewTracker(records)
	tr.Load(ctx)
	tr.CompleteLesson(ctx, "scarcity", "ppc")
	tr.RecordSectionTest(ctx, "scarcity", 40)
	tr.RecordSectionTest(ctx, "scarcity", 90)

	if records.puts != 3 {
		t.Errorf("puts = %d, want 3 (one full write per mutation)", records.puts)
	}
}

func TestTracker_CorruptDocumentReadsAsEmpty(t *testing.T) {
	records := newFakeRecords()
	records.docs[progressKey] = []byte(`{"lessons": not json`)

	tr := NewTracker(records)
	tr.Load(context.Background())

	if got := tr.Current().LessonsDone(); got != 0 {
		t.Errorf("lessons done = %d, want 0 for corrupt document", got)
	}
}

func TestTracker_ReadErrorReadsAsEmpty(t *testing.T) {
	records := newFakeRecords()
	records.getErr = errors.New("disk unhappy")

	tr := NewTracker(records)
	tr.Load(context.Background())

	if got := tr.Current().Exam.Attempts; got != 0 {
		t.Errorf("exam attempts = %d, want 0 when the read fails", got)
	}
}

func TestTracker_SaveErrorSurfaces(t *testing.T) {
	records := newFakeRecords()
	records.putErr = errors.New("disk full")

	tr := NewTracker(records)
	tr.Load(context.Background())

	if err := tr.CompleteLesson(context.Background(), "scarcity", "ppc"); err == nil {
		t.Error("expected error when the write fails")
	}
}

func TestTracker_LoadNormalizesNilMaps(t *testing.T) {
	records := newFakeRecords()
	// A hand-edited or minimal document without the map fields.
	records.docs[progressKey] = []byte(`{"version":1,"exam":{"attempts":1,"best":50}}`)

	tr := NewTracker(records)
	tr.Load(context.Background())

	// Mutations must work without nil-map panics.
	if err := tr.CompleteLesson(context.Background(), "scarcity", "ppc"); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if !tr.Current().LessonDone("scarcity", "ppc") {
		t.Error("lesson not recorded after loading a mapless document")
	}
	if tr.Current().Exam.Best != 50 {
		t.Errorf("exam best = %d, want 50 preserved", tr.Current().Exam.Best)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	err := SaveSettings(ctx, records, Settings{DisplayName: "Kavi", APIKey: "sk-ant-test"})
	if err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got := LoadSettings(ctx, records)
	if got.DisplayName != "Kavi" || got.APIKey != "sk-ant-test" {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettings_MissingReadsAsZero(t *testing.T) {
	got := LoadSettings(context.Background(), newFakeRecords())
	if got != (Settings{}) {
		t.Errorf("settings = %+v, want zero value", got)
	}
}

func TestSettings_IndependentOfProgress(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	tr := NewTracker(records)
	tr.Load(ctx)
	tr.CompleteLesson(ctx, "scarcity", "ppc")
	SaveSettings(ctx, records, Settings{DisplayName: "Kavi"})

	if _, ok := records.docs[progressKey]; !ok {
		t.Fatal("progress document missing")
	}
	if _, ok := records.docs[settingsKey]; !ok {
		t.Fatal("settings document missing")
	}

	// Wiping settings must not touch progress.
	records.Delete(ctx, settingsKey)
	tr2 := NewTracker(records)
	tr2.Load(ctx)
	if !tr2.Current().LessonDone("scarcity", "ppc") {
		t.Error("progress lost when settings removed")
	}
}
