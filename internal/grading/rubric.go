// Package grading scores short-answer responses. A rubric-keyword
// heuristic works entirely offline; when an API key is configured the
// score comes from the model instead, with the heuristic as fallback.
package grading

import (
	"math"
	"strings"
	"unicode"

	"github.com/kavitha/econ101/internal/course"
)

// Score rates a free-text answer against a rubric, returning an integer
// in [0, maxScore]. Each criterion counts as hit when any of its
// alphabetic tokens appears in the lowercased answer; the score is the
// hit ratio scaled to maxScore, rounded half-up.
//
// This rewards keyword presence, not correctness — an answer that
// name-drops the right terms scores full marks. It exists so grading
// works with zero configuration; the model path is the real grader.
func Score(answer string, r course.Rubric, maxScore int) int {
	if strings.TrimSpace(answer) == "" {
		return 0
	}

	haystack := strings.ToLower(answer)
	hits := 0
	for _, criterion := range r.Criteria {
		if criterionHit(haystack, criterion) {
			hits++
		}
	}

	n := len(r.Criteria)
	if n < 1 {
		n = 1
	}
	ratio := float64(hits) / float64(n)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * float64(maxScore)))
}

func criterionHit(haystack, criterion string) bool {
	for _, tok := range tokenize(criterion) {
		if strings.Contains(haystack, tok) {
			return true
		}
	}
	return false
}

// tokenize splits a phrase into lowercase runs of letters; digits and
// punctuation act as separators.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
