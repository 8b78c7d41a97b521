package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/llm"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor one question without opening the TUI",
	Long: "Ask the tutor a single question and print the reply. Without an API\n" +
		"key the reply is the same static study guidance the chat screen shows.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		question := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records := st.RecordRepo()
		events := st.EventRepo()
		settings := progress.LoadSettings(ctx, records)

		provider := llm.ResolveProvider(ctx, settings.APIKey, events)
		tut := tutor.New(provider)

		reply := tut.Reply(ctx, tutor.Exchange{Question: question})
		fmt.Println(reply.Text)

		// Same event shape the chat screen writes, so ask exchanges show
		// up alongside in-app ones.
		return events.AppendChatEvent(ctx, store.ChatEventData{
			SessionID: uuid.NewString(),
			Question:  question,
			Reply:     reply.Text,
			Source:    string(reply.Source),
		})
	},
}
