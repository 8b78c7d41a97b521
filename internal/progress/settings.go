package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kavitha/econ101/internal/store"
)

// settingsKey is the record namespace the settings document lives under,
// independent of progress.
const settingsKey = "settings"

// Settings holds the learner's preferences. APIKey unlocks model-backed
// grading, tutoring, and practice generation; empty means fully offline.
type Settings struct {
	DisplayName string `json:"display_name"`
	APIKey      string `json:"api_key,omitempty"`
}

// LoadSettings reads the stored settings document. Missing or unreadable
// settings read as the zero value.
func LoadSettings(ctx context.Context, records store.RecordRepo) Settings {
	data, err := records.Get(ctx, settingsKey)
	if err != nil || data == nil {
		return Settings{}
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}
	}
	return s
}

// SaveSettings writes the whole settings document.
func SaveSettings(ctx context.Context, records store.RecordRepo, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := records.Put(ctx, settingsKey, data); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}
