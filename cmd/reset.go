package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all course progress",
	Long: "Erase lesson completions and test scores. Settings and the event log\n" +
		"are kept, so \"econ101 llm stats\" history survives a reset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Erase all lesson and test progress? [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

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
		if err := tracker.Reset(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
