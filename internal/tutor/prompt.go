package tutor

const tutorSystemPrompt = `You are a Socratic economics tutor helping a learner work through an introductory economics course.

Instructions:
- Lead with a hint or a guiding question, not the full answer.
- Give the complete answer only when the learner is clearly stuck after a hint.
- Ground explanations in the course's toolkit: scarcity and opportunity cost, supply and demand, elasticity, GDP and growth.
- Keep every reply under 200 words.`

// buildTutorSystem appends the study material the chat was opened from,
// when there is any.
func buildTutorSystem(contextText string) string {
	if contextText == "" {
		return tutorSystemPrompt
	}
	return tutorSystemPrompt + "\n\nThe learner is currently studying:\n" + contextText
}

// studyHints is the offline reply: four general strategies, always in
// this order.
const studyHints = `Here are four ways to get unstuck:

1. Re-read the lesson and restate its key idea in your own words.
2. Work a concrete example: pick simple numbers and trace what happens step by step.
3. Sketch the diagram. Most questions hide a curve shift or a movement along a curve.
4. Structure your answer around the concept, the mechanism, and the time frame.`

// apologyReply is shown when the model path fails mid-conversation.
const apologyReply = `Sorry, I could not reach the tutoring service just now. Until it recovers:

1. Re-read the lesson and restate its key idea in your own words.
2. Work a concrete example: pick simple numbers and trace what happens step by step.
3. Sketch the diagram. Most questions hide a curve shift or a movement along a curve.
4. Structure your answer around the concept, the mechanism, and the time frame.`
