package course

import (
	"testing"
)

func TestSections_OrderAndCount(t *testing.T) {
	sections := Sections()
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}
	wantOrder := []string{"scarcity", "demand-supply", "elasticity", "growth"}
	for i, want := range wantOrder {
		if sections[i].ID != want {
			t.Errorf("section %d: got %q, want %q", i, sections[i].ID, want)
		}
	}
}

func TestSectionIDs_MatchesSections(t *testing.T) {
	ids := SectionIDs()
	sections := Sections()
	if len(ids) != len(sections) {
		t.Fatalf("got %d IDs, want %d", len(ids), len(sections))
	}
	for i := range ids {
		if ids[i] != sections[i].ID {
			t.Errorf("ID %d: got %q, want %q", i, ids[i], sections[i].ID)
		}
	}
}

func TestGetSection_Exists(t *testing.T) {
	s, err := GetSection("scarcity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Title != "Scarcity & Choice" {
		t.Errorf("got title %q, want %q", s.Title, "Scarcity & Choice")
	}
	if len(s.Lessons) != 3 {
		t.Errorf("got %d lessons, want 3", len(s.Lessons))
	}
	if len(s.Test) != 5 {
		t.Errorf("got %d test questions, want 5", len(s.Test))
	}
}

func TestGetSection_NotFound(t *testing.T) {
	_, err := GetSection("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent section, got nil")
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("scarcity", "ppc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Title != "The Production Possibilities Curve" {
		t.Errorf("got title %q, want %q", l.Title, "The Production Possibilities Curve")
	}
	if l.Body == "" {
		t.Error("lesson body is empty")
	}

	if _, err := GetLesson("scarcity", "nonexistent"); err == nil {
		t.Error("expected error for nonexistent lesson, got nil")
	}
	if _, err := GetLesson("nonexistent", "ppc"); err == nil {
		t.Error("expected error for nonexistent section, got nil")
	}
}

func TestFinalExam_Composition(t *testing.T) {
	exam := FinalExam()
	if len(exam) != 12 {
		t.Fatalf("got %d exam questions, want 12", len(exam))
	}

	var mc, sa, totalMax int
	for _, q := range exam {
		switch q.Kind {
		case MultipleChoice:
			mc++
			if q.MaxScore != 1 {
				t.Errorf("question %q: multiple-choice max score %d, want 1", q.ID, q.MaxScore)
			}
		case ShortAnswer:
			sa++
			if q.MaxScore != 3 {
				t.Errorf("question %q: short-answer max score %d, want 3", q.ID, q.MaxScore)
			}
		}
		totalMax += q.MaxScore
	}
	if mc != 6 {
		t.Errorf("got %d multiple-choice questions, want 6", mc)
	}
	if sa != 6 {
		t.Errorf("got %d short-answer questions, want 6", sa)
	}
	if totalMax != 24 {
		t.Errorf("exam total max score: got %d, want 24", totalMax)
	}
}

func TestExamSectionID(t *testing.T) {
	sid, ok := ExamSectionID("exam-q11")
	if !ok {
		t.Fatal("exam-q11 should be mapped")
	}
	if sid != "growth" {
		t.Errorf("exam-q11: got section %q, want %q", sid, "growth")
	}

	if _, ok := ExamSectionID("nonexistent"); ok {
		t.Error("unmapped question should return ok == false")
	}
}

func TestExamSections_CoversEveryQuestion(t *testing.T) {
	mapping := ExamSections()
	for _, q := range FinalExam() {
		if _, ok := mapping[q.ID]; !ok {
			t.Errorf("exam question %q has no section mapping", q.ID)
		}
	}
}

func TestTotalLessons(t *testing.T) {
	if n := TotalLessons(); n != 12 {
		t.Errorf("got %d lessons, want 12", n)
	}
}

func TestLessonKey(t *testing.T) {
	if k := LessonKey("scarcity", "ppc"); k != "scarcity/ppc" {
		t.Errorf("got %q, want %q", k, "scarcity/ppc")
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	a := Sections()
	a[0].Title = "MUTATED"
	b := Sections()
	if b[0].Title == "MUTATED" {
		t.Error("Sections did not return a defensive copy")
	}
}
