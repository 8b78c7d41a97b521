package store

import (
	"bytes"
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	data, err := repo.Get(context.Background(), "progress")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if data != nil {
		t.Fatalf("data = %q, want nil for missing key", data)
	}
}

func TestRecordPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	doc := []byte(`{"version":1,"lessons":{"scarcity/ppc":true}}`)
	if err := repo.Put(ctx, "progress", doc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, doc) {
		t.Errorf("data = %s, want %s", got, doc)
	}
}

func TestRecordPutReplacesWholeDocument(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "progress", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := repo.Put(ctx, "progress", []byte(`{"version":2}`)); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := repo.Get(ctx, "progress")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"version":2}` {
		t.Errorf("data = %s, want the second document", got)
	}

	count, err := s.Client().Record.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1 (rewrite, not append)", count)
	}
}

func TestRecordNamespacesIndependent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "progress", []byte(`{"kind":"progress"}`)); err != nil {
		t.Fatalf("put progress: %v", err)
	}
	if err := repo.Put(ctx, "settings", []byte(`{"kind":"settings"}`)); err != nil {
		t.Fatalf("put settings: %v", err)
	}

	got, err := repo.Get(ctx, "settings")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if string(got) != `{"kind":"settings"}` {
		t.Errorf("settings = %s, want the settings document", got)
	}
}

func TestRecordDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "progress", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "progress"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	data, err := repo.Get(ctx, "progress")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if data != nil {
		t.Errorf("data = %q, want nil after delete", data)
	}

	// Deleting a missing key is a no-op.
	if err := repo.Delete(ctx, "progress"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestAnswerEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AssessmentID:  "run-1",
		SectionID:     "scarcity",
		QuestionID:    "scarcity-t1",
		Kind:          "multiple-choice",
		Prompt:        "What is opportunity cost?",
		LearnerAnswer: "The next best alternative forgone",
		Awarded:       1,
		MaxScore:      1,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	count, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("answer events = %d, want 1", count)
	}
}

func TestLessonEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLessonEvent(ctx, LessonEventData{
		SectionID: "scarcity",
		LessonID:  "ppc",
		Title:     "The Production Possibilities Curve",
	})
	if err != nil {
		t.Fatalf("append lesson event: %v", err)
	}

	count, err := s.Client().LessonEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("lesson events = %d, want 1", count)
	}
}

func TestChatEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendChatEvent(ctx, ChatEventData{
		SessionID: "chat-1",
		ContextID: "scarcity/ppc",
		Question:  "Why is the PPC bowed outward?",
		Reply:     "Think about whether resources are equally suited to both goods.",
		Source:    "model",
	})
	if err != nil {
		t.Fatalf("append chat event: %v", err)
	}

	count, err := s.Client().ChatEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("chat events = %d, want 1", count)
	}
}

func TestAssessmentHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []AssessmentEventData{
		{AssessmentID: "run-1", Scope: "section-test", SectionID: "scarcity", Percent: 40, Questions: 5},
		{AssessmentID: "run-2", Scope: "section-test", SectionID: "scarcity", Percent: 80, Questions: 5},
		{AssessmentID: "run-3", Scope: "final-exam", Percent: 65, Questions: 12, WeakSections: []string{"elasticity", "growth"}},
	}
	for _, run := range runs {
		if err := repo.AppendAssessmentEvent(ctx, run); err != nil {
			t.Fatalf("append %s: %v", run.AssessmentID, err)
		}
	}

	history, err := repo.AssessmentHistory(ctx, 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].AssessmentID != "run-3" || history[1].AssessmentID != "run-2" {
		t.Errorf("history order = %s, %s; want run-3, run-2 (newest first)",
			history[0].AssessmentID, history[1].AssessmentID)
	}
	if len(history[0].WeakSections) != 2 || history[0].WeakSections[0] != "elasticity" {
		t.Errorf("weak sections = %v, want [elasticity growth]", history[0].WeakSections)
	}

	all, err := repo.AssessmentHistory(ctx, 0)
	if err != nil {
		t.Fatalf("history (unlimited): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestLLMRequestsAndView(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "grading",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[system]\nYou are an economics teaching assistant.",
		ResponseBody: "2/3. Missing the long-run angle.",
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "tutor",
		Success:      false,
		ErrorMessage: "provider unavailable",
	})
	if err != nil {
		t.Fatalf("append llm request 2: %v", err)
	}

	list, err := repo.LLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Purpose != "tutor" {
		t.Errorf("list[0].purpose = %q, want tutor (newest first)", list[0].Purpose)
	}

	got, err := repo.LLMRequest(ctx, list[1].ID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil record")
	}
	if got.ResponseBody != "2/3. Missing the long-run angle." {
		t.Errorf("response body = %q", got.ResponseBody)
	}

	missing, err := repo.LLMRequest(ctx, 99999)
	if err != nil {
		t.Fatalf("view missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		AssessmentID: "run-1", Scope: "section-test", SectionID: "scarcity", Percent: 60, Questions: 5,
	}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "grading", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		AssessmentID: "run-2", Scope: "section-test", SectionID: "scarcity", Percent: 80, Questions: 5,
	}); err != nil {
		t.Fatalf("append assessment 2: %v", err)
	}

	history, err := repo.AssessmentHistory(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	llms, err := repo.LLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("llm list: %v", err)
	}

	// Appended first, second, third: sequences 1, 2, 3 across tables.
	if history[1].Sequence != 1 || llms[0].Sequence != 2 || history[0].Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d; want 1, 2, 3",
			history[1].Sequence, llms[0].Sequence, history[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"records", "answer_events", "assessment_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
