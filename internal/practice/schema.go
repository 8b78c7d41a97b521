package practice

import "github.com/kavitha/econ101/internal/llm"

// QuestionSchema defines the JSON schema for LLM practice question
// generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single multiple-choice economics practice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, in plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer options where exactly one is correct",
			},
			"correct": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Self-assessed difficulty for an introductory student",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is right and the strongest distractor is wrong (2-3 sentences)",
			},
		},
		"required":             []any{"prompt", "options", "correct", "difficulty", "explanation"},
		"additionalProperties": false,
	},
}
