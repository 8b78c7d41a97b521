package grading

import (
	"testing"

	"github.com/kavitha/econ101/internal/course"
)

func ppcRubric() course.Rubric {
	return course.Rubric{
		Criteria: []string{
			"Outward shift of PPC",
			"Link to capital/tech improving productivity",
			"Time dimension (long run)",
		},
		Guidance: "Award one point per criterion clearly addressed.",
	}
}

func TestScore_EmptyAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\n\t"} {
		got := Score(answer, ppcRubric(), 3)
		if got != 0 {
			t.Errorf("Score(%q) = %d, want 0", answer, got)
		}
	}
}

func TestScore_AllCriteriaHit(t *testing.T) {
	answer := "Investment shifts the PPC outward because productivity rises over the long run"
	got := Score(answer, ppcRubric(), 3)
	if got != 3 {
		t.Errorf("Score = %d, want 3 (all criteria hit)", got)
	}
}

func TestScore_PartialCredit(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		// "productivity" hits criterion 2 only: round(1/3 * 3) = 1.
		{"one criterion", "productivity matters", 1},
		// "outward" + "long run" hit criteria 1 and 3: round(2/3 * 3) = 2.
		{"two criteria", "the curve moves outward in the long run", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.answer, ppcRubric(), 3)
			if got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}

func TestScore_RoundsHalfUp(t *testing.T) {
	r := course.Rubric{Criteria: []string{"demand", "supply"}}
	// 1 of 2 criteria on a 3-point question: round(1.5) = 2, not 1.
	got := Score("demand only", r, 3)
	if got != 2 {
		t.Errorf("Score = %d, want 2 (half rounds up)", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	got := Score("THE PPC SHIFTS OUTWARD", ppcRubric(), 3)
	if got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}
}

func TestScore_Bounds(t *testing.T) {
	answers := []string{
		"",
		"nothing relevant here",
		"outward productivity long run capital tech ppc shift",
		"outward outward outward outward outward outward outward",
	}
	for _, answer := range answers {
		for _, max := range []int{1, 3, 10} {
			got := Score(answer, ppcRubric(), max)
			if got < 0 || got > max {
				t.Errorf("Score(%q, max=%d) = %d, out of [0,%d]", answer, max, got, max)
			}
		}
	}
}

func TestScore_NoCriteria(t *testing.T) {
	got := Score("any answer at all", course.Rubric{}, 5)
	if got != 0 {
		t.Errorf("Score with empty rubric = %d, want 0", got)
	}
}

// The heuristic rewards keyword presence, not correctness. A wrong answer
// that name-drops each criterion's vocabulary earns full marks. That is
// the accepted cost of a zero-configuration offline grader, not a bug.
func TestScore_KeywordPresenceNotCorrectness(t *testing.T) {
	answer := "The PPC does not shift outward and productivity has no long run effect"
	got := Score(answer, ppcRubric(), 3)
	if got != 3 {
		t.Errorf("Score = %d, want 3 (keyword matching cannot detect negation)", got)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Link to capital/tech improving productivity", []string{"link", "to", "capital", "tech", "improving", "productivity"}},
		{"Time dimension (long run)", []string{"time", "dimension", "long", "run"}},
		{"GDP in 2024!", []string{"gdp", "in"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
