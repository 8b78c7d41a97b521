package store

import (
	"context"
	"time"
)

// RecordRepo stores namespaced JSON documents, written whole on every
// change. A missing key reads as (nil, nil): absence means "use the
// default value", never an error.
type RecordRepo interface {
	// Get returns the document stored under key, or nil if none exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the document under key with data.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the document under key. Deleting a missing key is
	// a no-op.
	Delete(ctx context.Context, key string) error
}

// AnswerEventData captures one graded question within a test or exam run.
type AnswerEventData struct {
	AssessmentID  string
	SectionID     string
	QuestionID    string
	Kind          string
	Prompt        string
	LearnerAnswer string
	Awarded       int
	MaxScore      int
	Source        string
	Feedback      string
}

// AssessmentEventData captures one completed section test or final exam.
type AssessmentEventData struct {
	AssessmentID string
	Scope        string // "section-test" or "final-exam"
	SectionID    string // empty for the final exam
	Percent      int
	Questions    int
	DurationSecs int64
	WeakSections []string
}

// LessonEventData captures a lesson being marked complete.
type LessonEventData struct {
	SectionID string
	LessonID  string
	Title     string
}

// ChatEventData captures one tutor exchange.
type ChatEventData struct {
	SessionID string
	ContextID string
	Question  string
	Reply     string
	Source    string // "model" or "static"
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AssessmentRecord is a stored assessment event with its log position.
type AssessmentRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// LLMRequestRecord is a stored LLM request event with its log position.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records one graded question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendAssessmentEvent records a completed test or exam.
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// AppendLessonEvent records a lesson completion.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendChatEvent records a tutor exchange.
	AppendChatEvent(ctx context.Context, data ChatEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AssessmentHistory returns the most recent assessments, newest
	// first. limit <= 0 returns everything.
	AssessmentHistory(ctx context.Context, limit int) ([]AssessmentRecord, error)

	// LLMRequests returns the most recent LLM request events, newest
	// first. limit <= 0 returns everything.
	LLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// LLMRequest returns one LLM request event by ID, or nil if it does
	// not exist.
	LLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error)
}
