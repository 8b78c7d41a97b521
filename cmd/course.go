package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/course"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse the course catalog",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		sections := course.Sections()

		// Header.
		fmt.Printf("%-24s  %-36s  %7s  %5s\n", "ID", "Title", "Lessons", "Test")
		fmt.Println(strings.Repeat("─", 78))

		for _, s := range sections {
			title := s.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			fmt.Printf("%-24s  %-36s  %7d  %5d\n", s.ID, title, len(s.Lessons), len(s.Test))
		}

		fmt.Printf("\n%d sections, %d lessons, %d final exam questions\n",
			len(sections), course.TotalLessons(), len(course.FinalExam()))
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <section-id>",
	Short: "Show a section's lessons and test questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sec, err := course.GetSection(args[0])
		if err != nil {
			return fmt.Errorf("%v (run \"econ101 course list\" for IDs)", err)
		}

		fmt.Printf("%s: %s\n", sec.ID, sec.Title)

		fmt.Println("\nLessons:")
		for i, l := range sec.Lessons {
			fmt.Printf("  %d. %s\n", i+1, l.Title)
		}

		points := 0
		for _, q := range sec.Test {
			points += q.MaxScore
		}
		fmt.Printf("\nTest (%d questions, %d points):\n", len(sec.Test), points)
		for _, q := range sec.Test {
			kind := "multiple choice"
			if q.Kind == course.ShortAnswer {
				kind = "short answer"
			}
			prompt := q.Prompt
			if len(prompt) > 58 {
				prompt = prompt[:55] + "..."
			}
			fmt.Printf("  [%d pt] %-15s  %s\n", q.MaxScore, kind, prompt)
		}
		return nil
	},
}

func init() {
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
}
