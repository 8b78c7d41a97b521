package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show course progress and recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker := progress.NewTracker(st.RecordRepo())
		tracker.Load(ctx)
		p := tracker.Current()

		fmt.Printf("Lessons completed: %d/%d\n\n", p.LessonsDone(), course.TotalLessons())

		// Per-section table.
		fmt.Printf("%-36s  %7s  %5s  %8s\n", "Section", "Lessons", "Best", "Attempts")
		fmt.Println(strings.Repeat("─", 62))
		for _, sec := range course.Sections() {
			done := 0
			for _, l := range sec.Lessons {
				if p.LessonDone(sec.ID, l.ID) {
					done++
				}
			}
			title := sec.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			score := p.SectionScore(sec.ID)
			best := "-"
			if score.Attempts > 0 {
				best = fmt.Sprintf("%d%%", score.Best)
			}
			fmt.Printf("%-36s  %3d/%-3d  %5s  %8d\n",
				title, done, len(sec.Lessons), best, score.Attempts)
		}

		if p.Exam.Attempts > 0 {
			fmt.Printf("\nFinal exam: best %d%% over %d attempt(s)\n", p.Exam.Best, p.Exam.Attempts)
		} else {
			fmt.Println("\nFinal exam: not attempted")
		}

		recent, err := st.EventRepo().AssessmentHistory(ctx, 10)
		if err != nil {
			return fmt.Errorf("load assessment history: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent results:")
		for _, r := range recent {
			name := "Final exam"
			if r.Scope == "section-test" {
				name = r.SectionID
				if sec, err := course.GetSection(r.SectionID); err == nil {
					name = sec.Title
				}
			}
			fmt.Printf("  %s  %3d%%  %s\n", r.Timestamp.Format("2006-01-02 15:04"), r.Percent, name)
		}
		return nil
	},
}
