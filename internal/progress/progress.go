// Package progress tracks what the learner has done: lesson completion
// flags, per-section test scores, and the final exam score. The state is
// a plain versioned value updated by pure reducers; Tracker persists it
// as one JSON document after every change.
package progress

import (
	"maps"

	"github.com/kavitha/econ101/internal/course"
)

// Version is written into every persisted progress document.
const Version = 1

// ScoreRecord tracks attempts and the best result for one question set.
// Best only ever rises; Attempts only ever grows.
type ScoreRecord struct {
	Attempts int `json:"attempts"`
	Best     int `json:"best"`
}

// Progress is the learner's whole mutable state. Lessons is keyed by
// course.LessonKey; Sections by section ID.
type Progress struct {
	Version  int                    `json:"version"`
	Lessons  map[string]bool        `json:"lessons"`
	Sections map[string]ScoreRecord `json:"sections"`
	Exam     ScoreRecord            `json:"exam"`
}

// New returns an all-empty progress value, the state of a first run.
func New() Progress {
	return Progress{
		Version:  Version,
		Lessons:  map[string]bool{},
		Sections: map[string]ScoreRecord{},
	}
}

// CompleteLesson marks a lesson done. Repeat calls change nothing.
func CompleteLesson(p Progress, sectionID, lessonID string) Progress {
	next := p
	next.Lessons = maps.Clone(p.Lessons)
	if next.Lessons == nil {
		next.Lessons = map[string]bool{}
	}
	next.Lessons[course.LessonKey(sectionID, lessonID)] = true
	return next
}

// RecordSectionTest counts one attempt and max-merges the score: a worse
// run never lowers Best.
func RecordSectionTest(p Progress, sectionID string, percent int) Progress {
	next := p
	next.Sections = maps.Clone(p.Sections)
	if next.Sections == nil {
		next.Sections = map[string]ScoreRecord{}
	}
	rec := next.Sections[sectionID]
	rec.Attempts++
	if percent > rec.Best {
		rec.Best = percent
	}
	next.Sections[sectionID] = rec
	return next
}

// RecordExam applies the same attempt-and-max-merge to the single shared
// exam record.
func RecordExam(p Progress, percent int) Progress {
	next := p
	next.Exam.Attempts++
	if percent > next.Exam.Best {
		next.Exam.Best = percent
	}
	return next
}

// LessonDone reports whether the lesson has been completed.
func (p Progress) LessonDone(sectionID, lessonID string) bool {
	return p.Lessons[course.LessonKey(sectionID, lessonID)]
}

// LessonsDone counts completed lessons across the whole course.
func (p Progress) LessonsDone() int {
	n := 0
	for _, done := range p.Lessons {
		if done {
			n++
		}
	}
	return n
}

// SectionScore returns the score record for a section; the zero record
// means the test was never taken.
func (p Progress) SectionScore(sectionID string) ScoreRecord {
	return p.Sections[sectionID]
}
