// Package cli holds the command logic behind the reintro binary. The cobra
// definitions in cmd/reintro stay thin; everything testable lives here.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fodmaplab/reintro/internal/logging"
	"github.com/fodmaplab/reintro/pkg/domain"
)

// loadState reads a protocol snapshot from a JSON file.
func loadState(path string) (*domain.ProtocolState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state domain.ProtocolState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	return &state, nil
}

// parseNow turns an optional RFC 3339 flag value into a timestamp, falling
// back to the wall clock. The engine itself never reads a clock; this is the
// one place the CLI injects it.
func parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q: %w", raw, err)
	}
	return now, nil
}

// newLogger builds the CLI logger. Debug mode lowers the level; output always
// goes to stderr so stdout stays machine-readable.
func newLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// printJSON writes a value to stdout, optionally indented.
func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
