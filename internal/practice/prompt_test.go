package practice

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Section: testSection()}, DefaultConfig())

	if !strings.Contains(msg, "Section: Elasticity") {
		t.Error("missing section title")
	}
	if !strings.Contains(msg, "- Price Elasticity of Demand") {
		t.Error("missing lesson topic")
	}
	if !strings.Contains(msg, "Already asked in this session:\nNone") {
		t.Error("expected 'None' for prior prompts")
	}
	if !strings.Contains(msg, "Questions the learner recently missed:\nNone") {
		t.Error("expected 'None' for misses")
	}
}

func TestBuildUserMessage_WithHistory(t *testing.T) {
	input := GenerateInput{
		Section:       testSection(),
		RecentPrompts: []string{"What is elasticity?", "Is bread elastic?"},
		RecentMisses:  []string{"Luxuries tend to have ___ demand."},
	}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "1. What is elasticity?") {
		t.Error("missing first prior prompt")
	}
	if !strings.Contains(msg, "2. Is bread elastic?") {
		t.Error("missing second prior prompt")
	}
	if !strings.Contains(msg, "1. Luxuries tend to have ___ demand.") {
		t.Error("missing recent miss")
	}
}

func TestBuildDedup_RespectsLimit(t *testing.T) {
	var prompts []string
	for i := 1; i <= 12; i++ {
		prompts = append(prompts, fmt.Sprintf("question %d", i))
	}

	out := buildDedup(prompts, 8)

	if strings.Contains(out, "question 4") {
		t.Error("expected oldest prompts to be dropped")
	}
	if !strings.Contains(out, "question 5") || !strings.Contains(out, "question 12") {
		t.Error("expected the 8 most recent prompts to survive")
	}
}

func TestBuildMisses_Empty(t *testing.T) {
	if got := buildMisses(nil, 5); got != "None" {
		t.Errorf("got %q, want None", got)
	}
}
