package grading

import (
	"bytes"
	"text/template"

	"github.com/kavitha/econ101/internal/course"
)

const gradeSystemPrompt = `You are an economics teaching assistant grading a short-answer quiz response.

Instructions:
- Grade strictly against the rubric criteria. Award one share of the maximum score per criterion the answer genuinely addresses.
- Start your reply with the score as "<got>/<total>" where <total> is the maximum score, e.g. "2/3".
- Then give one or two sentences of concrete feedback: what the answer covered and what it missed.
- Do not award credit for keyword name-dropping without understanding.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Question: {{.Prompt}}
Maximum score: {{.MaxScore}}

Rubric criteria:
{{range .Criteria}}- {{.}}
{{end}}{{if .Guidance}}Grading guidance: {{.Guidance}}
{{end}}
Student answer: {{.Answer}}`))

type gradePromptData struct {
	Prompt   string
	MaxScore int
	Criteria []string
	Guidance string
	Answer   string
}

func buildGradeMessage(q course.Question, answer string) (string, error) {
	var buf bytes.Buffer
	err := gradeUserTemplate.Execute(&buf, gradePromptData{
		Prompt:   q.Prompt,
		MaxScore: q.MaxScore,
		Criteria: q.Rubric.Criteria,
		Guidance: q.Rubric.Guidance,
		Answer:   answer,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
