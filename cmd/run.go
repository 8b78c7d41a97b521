package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kavitha/econ101/internal/app"
	"github.com/kavitha/econ101/internal/assess"
	"github.com/kavitha/econ101/internal/course"
	"github.com/kavitha/econ101/internal/grading"
	"github.com/kavitha/econ101/internal/llm"
	"github.com/kavitha/econ101/internal/practice"
	"github.com/kavitha/econ101/internal/progress"
	"github.com/kavitha/econ101/internal/store"
	"github.com/kavitha/econ101/internal/tutor"
)

// runApp opens the store, wires the grading pipeline and tutor, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if err := course.Validate(); err != nil {
		return fmt.Errorf("course catalog: %w", err)
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

	records := st.RecordRepo()
	events := st.EventRepo()
	settings := progress.LoadSettings(ctx, records)

	tracker := progress.NewTracker(records)
	tracker.Load(ctx)

	opts := app.Options{
		Tracker: tracker,
		Records: records,
		Events:  events,
	}

	provider := llm.ResolveProvider(ctx, settings.APIKey, events)
	if provider == nil {
		fmt.Fprintln(os.Stderr, "No API key found: short answers get heuristic grading,")
		fmt.Fprintln(os.Stderr, "the tutor serves static tips, and practice is unavailable.")
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY (or OPENAI_API_KEY, GEMINI_API_KEY,")
		fmt.Fprintln(os.Stderr, "OPENROUTER_API_KEY), or add a key on the Settings screen.")
	} else {
		opts.Generator = practice.New(provider, practice.DefaultConfig())
		opts.ModelID = provider.ModelID()
	}

	// Both constructors accept a nil provider and fall back to their
	// offline implementations.
	opts.Runner = assess.NewRunner(grading.New(provider))
	opts.Tutor = tutor.New(provider)

	return app.Run(opts)
}
