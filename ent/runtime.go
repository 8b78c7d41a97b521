// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kavitha/econ101/ent/answerevent"
	"github.com/kavitha/econ101/ent/assessmentevent"
	"github.com/kavitha/econ101/ent/chatevent"
	"github.com/kavitha/econ101/ent/lessonevent"
	"github.com/kavitha/econ101/ent/llmrequestevent"
	"github.com/kavitha/econ101/ent/record"
	"github.com/kavitha/econ101/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAssessmentID is the schema descriptor for assessment_id field.
	answereventDescAssessmentID := answereventFields[0].Descriptor()
	// answerevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	answerevent.AssessmentIDValidator = answereventDescAssessmentID.Validators[0].(func(string) error)
	// answereventDescSectionID is the schema descriptor for section_id field.
	answereventDescSectionID := answereventFields[1].Descriptor()
	// answerevent.DefaultSectionID holds the default value on creation for the section_id field.
	answerevent.DefaultSectionID = answereventDescSectionID.Default.(string)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[3].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[4].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescSource is the schema descriptor for source field.
	answereventDescSource := answereventFields[8].Descriptor()
	// answerevent.DefaultSource holds the default value on creation for the source field.
	answerevent.DefaultSource = answereventDescSource.Default.(string)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[9].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescScope is the schema descriptor for scope field.
	assessmenteventDescScope := assessmenteventFields[1].Descriptor()
	// assessmentevent.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	assessmentevent.ScopeValidator = assessmenteventDescScope.Validators[0].(func(string) error)
	// assessmenteventDescSectionID is the schema descriptor for section_id field.
	assessmenteventDescSectionID := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultSectionID holds the default value on creation for the section_id field.
	assessmentevent.DefaultSectionID = assessmenteventDescSectionID.Default.(string)
	// assessmenteventDescDurationSecs is the schema descriptor for duration_secs field.
	assessmenteventDescDurationSecs := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentevent.DefaultDurationSecs = assessmenteventDescDurationSecs.Default.(int64)
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescSessionID is the schema descriptor for session_id field.
	chateventDescSessionID := chateventFields[0].Descriptor()
	// chatevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatevent.SessionIDValidator = chateventDescSessionID.Validators[0].(func(string) error)
	// chateventDescContextID is the schema descriptor for context_id field.
	chateventDescContextID := chateventFields[1].Descriptor()
	// chatevent.DefaultContextID holds the default value on creation for the context_id field.
	chatevent.DefaultContextID = chateventDescContextID.Default.(string)
	// chateventDescQuestion is the schema descriptor for question field.
	chateventDescQuestion := chateventFields[2].Descriptor()
	// chatevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	chatevent.QuestionValidator = chateventDescQuestion.Validators[0].(func(string) error)
	// chateventDescReply is the schema descriptor for reply field.
	chateventDescReply := chateventFields[3].Descriptor()
	// chatevent.ReplyValidator is a validator for the "reply" field. It is called by the builders before save.
	chatevent.ReplyValidator = chateventDescReply.Validators[0].(func(string) error)
	// chateventDescSource is the schema descriptor for source field.
	chateventDescSource := chateventFields[4].Descriptor()
	// chatevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	chatevent.SourceValidator = chateventDescSource.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSectionID is the schema descriptor for section_id field.
	lessoneventDescSectionID := lessoneventFields[0].Descriptor()
	// lessonevent.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	lessonevent.SectionIDValidator = lessoneventDescSectionID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescTitle is the schema descriptor for title field.
	lessoneventDescTitle := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultTitle holds the default value on creation for the title field.
	lessonevent.DefaultTitle = lessoneventDescTitle.Default.(string)
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescKey is the schema descriptor for key field.
	recordDescKey := recordFields[0].Descriptor()
	// record.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	record.KeyValidator = recordDescKey.Validators[0].(func(string) error)
	// recordDescUpdatedAt is the schema descriptor for updated_at field.
	recordDescUpdatedAt := recordFields[2].Descriptor()
	// record.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	record.DefaultUpdatedAt = recordDescUpdatedAt.Default.(func() time.Time)
	// record.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	record.UpdateDefaultUpdatedAt = recordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
