package course

import (
	"fmt"
	"maps"
	"slices"
)

// catalog holds the parsed course with precomputed indices.
type catalog struct {
	sections    []Section
	byID        map[string]*Section
	lessonByKey map[string]*Lesson
	exam        []Question
	examSection map[string]string
}

// c is the package-level catalog singleton, set by init() in load.go.
var c *catalog

// buildCatalog constructs the catalog and all lookup indices.
func buildCatalog(sections []Section, exam []Question, examSection map[string]string) *catalog {
	cat := &catalog{
		sections:    sections,
		byID:        make(map[string]*Section, len(sections)),
		lessonByKey: make(map[string]*Lesson),
		exam:        exam,
		examSection: examSection,
	}

	for i := range cat.sections {
		s := &cat.sections[i]
		cat.byID[s.ID] = s
		for j := range s.Lessons {
			cat.lessonByKey[LessonKey(s.ID, s.Lessons[j].ID)] = &s.Lessons[j]
		}
	}

	return cat
}

// Sections returns all sections in curriculum order.
func Sections() []Section {
	return slices.Clone(c.sections)
}

// SectionIDs returns all section IDs in curriculum order.
func SectionIDs() []string {
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// GetSection returns a section by ID, or an error if not found.
func GetSection(id string) (Section, error) {
	s, ok := c.byID[id]
	if !ok {
		return Section{}, fmt.Errorf("section not found: %q", id)
	}
	return *s, nil
}

// GetLesson returns a lesson by its (sectionID, lessonID) pair.
func GetLesson(sectionID, lessonID string) (Lesson, error) {
	l, ok := c.lessonByKey[LessonKey(sectionID, lessonID)]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", LessonKey(sectionID, lessonID))
	}
	return *l, nil
}

// FinalExam returns the exam questions in presentation order.
func FinalExam() []Question {
	return slices.Clone(c.exam)
}

// ExamSections returns the exam question ID to section ID mapping used by
// the weak-section recommendation.
func ExamSections() map[string]string {
	return maps.Clone(c.examSection)
}

// ExamSectionID returns the section an exam question maps to, if any.
func ExamSectionID(questionID string) (string, bool) {
	id, ok := c.examSection[questionID]
	return id, ok
}

// TotalLessons returns the number of lessons across all sections.
func TotalLessons() int {
	return len(c.lessonByKey)
}

// Validate checks the loaded course for structural issues.
func Validate() error {
	return validateCourse(c.sections, c.exam, c.examSection)
}
