package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/llm"
	"github.com/kavitha/econ101/internal/practice"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated practice questions for a section (no database)",
	Long: `Generate and interactively answer practice questions for one section.

This is a stateless developer tool: no database, no progress tracking, no
events. Useful for judging generated question quality before learners see it.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("section", "", "Section ID (required)")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("section")
}

func runPreview(cmd *cobra.Command, args []string) error {
	sectionID, _ := cmd.Flags().GetString("section")
	count, _ := cmd.Flags().GetInt("count")

	sec, err := course.GetSection(sectionID)
	if err != nil {
		return fmt.Errorf("%v (known IDs: %s)", err, strings.Join(course.SectionIDs(), ", "))
	}

	// Credentials come from the environment only. No EventRepo, so these
	// requests stay out of the llm stats.
	ctx := context.Background()
	provider := llm.ResolveProvider(ctx, "", nil)
	if provider == nil {
		return fmt.Errorf("no API key in environment: set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, or OPENROUTER_API_KEY")
	}

	gen := practice.New(provider, practice.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Section: %s (%s)\n", sec.Title, sec.ID)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct, answered int
	var prior []string

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, practice.GenerateInput{
			Section:       sec,
			RecentPrompts: prior,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}
		prior = append(prior, q.Prompt)

		// Display question.
		fmt.Printf("── Question %d/%d (%s) ──\n", i, count, q.Difficulty)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		// Read answer.
		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}
		choice, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Print("(not a number, skipped)\n\n")
			continue
		}

		answered++
		if q.Check(choice - 1) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d) %s\n", q.Correct+1, q.Options[q.Correct])
		}
		fmt.Printf("Explanation: %s\n\n", q.Explanation)
	}

	// Summary.
	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
