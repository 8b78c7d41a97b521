package assess

import "sort"

// MaxWeakSections caps how many review recommendations one exam produces.
const MaxWeakSections = 3

// SectionScore is a section's percentage over its mapped exam questions.
type SectionScore struct {
	SectionID string
	Percent   int
}

// Recommendation is the study advice derived from a final-exam outcome.
// Weak lists the lowest-scoring sections, ascending, at most
// MaxWeakSections long.
type Recommendation struct {
	Overall int
	Weak    []SectionScore
}

// Recommend maps exam results back onto sections and ranks the weakest.
// sectionIDs gives the curriculum order used to break score ties;
// bySection maps exam question ID to owning section ID. A section with
// no mapped questions scores 100: absence of evidence is not weakness.
func Recommend(o Outcome, sectionIDs []string, bySection map[string]string) Recommendation {
	type sums struct{ awarded, max int }
	perSection := make(map[string]*sums)

	for _, res := range o.Results {
		sectionID, ok := bySection[res.QuestionID]
		if !ok {
			continue
		}
		s := perSection[sectionID]
		if s == nil {
			s = &sums{}
			perSection[sectionID] = s
		}
		s.awarded += res.Awarded
		s.max += res.Max
	}

	var weak []SectionScore
	for _, sectionID := range sectionIDs {
		score := 100
		if s := perSection[sectionID]; s != nil && s.max > 0 {
			score = percent(s.awarded, s.max)
		}
		if score < PassPercent {
			weak = append(weak, SectionScore{SectionID: sectionID, Percent: score})
		}
	}

	// Weakest first; ties keep curriculum order.
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Percent < weak[j].Percent
	})
	if len(weak) > MaxWeakSections {
		weak = weak[:MaxWeakSections]
	}

	return Recommendation{Overall: o.Percent, Weak: weak}
}
