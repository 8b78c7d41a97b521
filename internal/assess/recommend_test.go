package assess

import "testing"

// examOutcome builds an Outcome plus question->section mapping from
// per-section awarded/max pairs, one synthetic question per section.
func examOutcome(t *testing.T, sections []string, awarded, max map[string]int) (Outcome, map[string]string) {
	t.Helper()
	var o Outcome
	bySection := make(map[string]string)
	sumA, sumM := 0, 0
	for _, id := range sections {
		qid := id + "-q"
		o.Results = append(o.Results, QuestionResult{QuestionID: qid, Awarded: awarded[id], Max: max[id]})
		bySection[qid] = id
		sumA += awarded[id]
		sumM += max[id]
	}
	o.Percent = percent(sumA, sumM)
	return o, bySection
}

func TestRecommend_RanksWeakestFirst(t *testing.T) {
	sections := []string{"scarcity", "demand-supply", "elasticity", "growth"}
	o, bySection := examOutcome(t, sections,
		map[string]int{"scarcity": 5, "demand-supply": 8, "elasticity": 3, "growth": 6},
		map[string]int{"scarcity": 10, "demand-supply": 10, "elasticity": 10, "growth": 10},
	)

	rec := Recommend(o, sections, bySection)

	want := []SectionScore{
		{SectionID: "elasticity", Percent: 30},
		{SectionID: "scarcity", Percent: 50},
		{SectionID: "growth", Percent: 60},
	}
	if len(rec.Weak) != len(want) {
		t.Fatalf("weak = %v, want %v", rec.Weak, want)
	}
	for i := range want {
		if rec.Weak[i] != want[i] {
			t.Errorf("weak[%d] = %v, want %v", i, rec.Weak[i], want[i])
		}
	}
}

func TestRecommend_CapsAtThree(t *testing.T) {
	sections := []string{"s1", "s2", "s3", "s4", "s5"}
	awarded := map[string]int{"s1": 1, "s2": 2, "s3": 3, "s4": 4, "s5": 5}
	max := map[string]int{"s1": 10, "s2": 10, "s3": 10, "s4": 10, "s5": 10}
	o, bySection := examOutcome(t, sections, awarded, max)

	rec := Recommend(o, sections, bySection)

	if len(rec.Weak) != MaxWeakSections {
		t.Fatalf("len(weak) = %d, want %d", len(rec.Weak), MaxWeakSections)
	}
	for i := 1; i < len(rec.Weak); i++ {
		if rec.Weak[i].Percent < rec.Weak[i-1].Percent {
			t.Errorf("weak scores not non-decreasing: %v", rec.Weak)
		}
	}
}

func TestRecommend_TieKeepsCurriculumOrder(t *testing.T) {
	sections := []string{"scarcity", "demand-supply", "elasticity"}
	o, bySection := examOutcome(t, sections,
		map[string]int{"scarcity": 4, "demand-supply": 4, "elasticity": 4},
		map[string]int{"scarcity": 10, "demand-supply": 10, "elasticity": 10},
	)

	rec := Recommend(o, sections, bySection)

	wantOrder := []string{"scarcity", "demand-supply", "elasticity"}
	for i, id := range wantOrder {
		if rec.Weak[i].SectionID != id {
			t.Errorf("weak[%d] = %q, want %q (curriculum order on ties)", i, rec.Weak[i].SectionID, id)
		}
	}
}

func TestRecommend_UnmappedSectionIsNotWeak(t *testing.T) {
	// "growth" has no exam questions mapped to it.
	sections := []string{"scarcity", "growth"}
	o := Outcome{
		Percent: 50,
		Results: []QuestionResult{{QuestionID: "q1", Awarded: 5, Max: 10}},
	}
	bySection := map[string]string{"q1": "scarcity"}

	rec := Recommend(o, sections, bySection)

	for _, w := range rec.Weak {
		if w.SectionID == "growth" {
			t.Errorf("unmapped section reported weak: %v", rec.Weak)
		}
	}
	if len(rec.Weak) != 1 || rec.Weak[0].SectionID != "scarcity" {
		t.Errorf("weak = %v, want [scarcity 50]", rec.Weak)
	}
}

func TestRecommend_UnmappedQuestionIgnored(t *testing.T) {
	sections := []string{"scarcity"}
	o := Outcome{
		Percent: 75,
		Results: []QuestionResult{
			{QuestionID: "q1", Awarded: 10, Max: 10},
			{QuestionID: "orphan", Awarded: 0, Max: 10},
		},
	}
	bySection := map[string]string{"q1": "scarcity"}

	rec := Recommend(o, sections, bySection)

	if len(rec.Weak) != 0 {
		t.Errorf("weak = %v, want empty (orphan question must not drag a section down)", rec.Weak)
	}
}

func TestRecommend_SeventyIsNotWeak(t *testing.T) {
	sections := []string{"scarcity", "demand-supply"}
	o, bySection := examOutcome(t, sections,
		map[string]int{"scarcity": 7, "demand-supply": 6},
		map[string]int{"scarcity": 10, "demand-supply": 10},
	)

	rec := Recommend(o, sections, bySection)

	if len(rec.Weak) != 1 {
		t.Fatalf("weak = %v, want exactly demand-supply", rec.Weak)
	}
	if rec.Weak[0].SectionID != "demand-supply" {
		t.Errorf("weak[0] = %q, want demand-supply (70 itself passes)", rec.Weak[0].SectionID)
	}
}

func TestRecommend_AllStrong(t *testing.T) {
	sections := []string{"scarcity", "demand-supply"}
	o, bySection := examOutcome(t, sections,
		map[string]int{"scarcity": 9, "demand-supply": 10},
		map[string]int{"scarcity": 10, "demand-supply": 10},
	)

	rec := Recommend(o, sections, bySection)

	if len(rec.Weak) != 0 {
		t.Errorf("weak = %v, want empty", rec.Weak)
	}
	if rec.Overall != o.Percent {
		t.Errorf("overall = %d, want %d", rec.Overall, o.Percent)
	}
}

func TestRecommend_SectionPercentRounds(t *testing.T) {
	// 2 of 3 points: round(66.67) = 67, below the threshold.
	sections := []string{"elasticity"}
	o, bySection := examOutcome(t, sections,
		map[string]int{"elasticity": 2},
		map[string]int{"elasticity": 3},
	)

	rec := Recommend(o, sections, bySection)

	if len(rec.Weak) != 1 || rec.Weak[0].Percent != 67 {
		t.Errorf("weak = %v, want [elasticity 67]", rec.Weak)
	}
}
