package progress

import "testing"

func TestNew_EmptyDefaults(t *testing.T) {
	p := New()
	if p.Version != Version {
		t.Errorf("version = %d, want %d", p.Version, Version)
	}
	if len(p.Lessons) != 0 || len(p.Sections) != 0 {
		t.Errorf("expected empty maps, got %v / %v", p.Lessons, p.Sections)
	}
	if p.Exam.Attempts != 0 || p.Exam.Best != 0 {
		t.Errorf("exam = %+v, want zero record", p.Exam)
	}
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	p := New()
	p = CompleteLesson(p, "scarcity", "ppc")
	p = CompleteLesson(p, "scarcity", "ppc")

	if !p.LessonDone("scarcity", "ppc") {
		t.Error("lesson should be done")
	}
	if got := p.LessonsDone(); got != 1 {
		t.Errorf("lessons done = %d, want 1 (repeat completion is a no-op)", got)
	}
}

func TestCompleteLesson_DistinctLessons(t *testing.T) {
	p := New()
	p = CompleteLesson(p, "scarcity", "ppc")
	p = CompleteLesson(p, "growth", "gdp")

	if got := p.LessonsDone(); got != 2 {
		t.Errorf("lessons done = %d, want 2", got)
	}
	if p.LessonDone("scarcity", "gdp") {
		t.Error("lesson keys must pair section and lesson, not match across sections")
	}
}

func TestRecordSectionTest_BestNeverRegresses(t *testing.T) {
	p := New()
	for _, percent := range []int{40, 90, 60} {
		p = RecordSectionTest(p, "scarcity", percent)
	}

	rec := p.SectionScore("scarcity")
	if rec.Best != 90 {
		t.Errorf("best = %d, want 90", rec.Best)
	}
	if rec.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", rec.Attempts)
	}
}

func TestRecordSectionTest_SectionsIndependent(t *testing.T) {
	p := New()
	p = RecordSectionTest(p, "scarcity", 80)
	p = RecordSectionTest(p, "growth", 50)

	if got := p.SectionScore("scarcity").Best; got != 80 {
		t.Errorf("scarcity best = %d, want 80", got)
	}
	if got := p.SectionScore("growth").Best; got != 50 {
		t.Errorf("growth best = %d, want 50", got)
	}
	if got := p.SectionScore("elasticity"); got.Attempts != 0 {
		t.Errorf("untouched section = %+v, want zero record", got)
	}
}

func TestRecordExam_MaxMerge(t *testing.T) {
	p := New()
	for _, percent := range []int{55, 75, 65} {
		p = RecordExam(p, percent)
	}

	if p.Exam.Best != 75 {
		t.Errorf("exam best = %d, want 75", p.Exam.Best)
	}
	if p.Exam.Attempts != 3 {
		t.Errorf("exam attempts = %d, want 3", p.Exam.Attempts)
	}
}

func TestReducers_DoNotMutateInput(t *testing.T) {
	before := New()
	before = CompleteLesson(before, "scarcity", "ppc")
	before = RecordSectionTest(before, "scarcity", 60)

	_ = CompleteLesson(before, "growth", "gdp")
	_ = RecordSectionTest(before, "scarcity", 95)
	_ = RecordExam(before, 99)

	if before.LessonDone("growth", "gdp") {
		t.Error("input progress gained a lesson flag")
	}
	if got := before.SectionScore("scarcity").Best; got != 60 {
		t.Errorf("input best = %d, want 60 (reducers must copy, not mutate)", got)
	}
	if before.Exam.Attempts != 0 {
		t.Errorf("input exam attempts = %d, want 0", before.Exam.Attempts)
	}
}
