package crawler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"bridge-deals-service/internal/timeutil"
)

// Checkpoint persists the timestamp of the most recent completed
// sweep so a restart resumes where the last run left off.
type Checkpoint struct {
	path string
}

// NewCheckpoint constructs a checkpoint backed by the given file.
func NewCheckpoint(path string) *Checkpoint {
	return &Checkpoint{path: path}
}

// Load returns the persisted timestamp, or the zero time when no
// checkpoint exists yet.
func (c *Checkpoint) Load() (time.Time, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read checkpoint: %w", err)
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return time.Time{}, fmt.Errorf("decode checkpoint: %w", err)
	}
	parsed, err := timeutil.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode checkpoint: %w", err)
	}
	return parsed, nil
}

// Save atomically persists the given timestamp.
func (c *Checkpoint) Save(t time.Time) error {
	data, err := json.Marshal(timeutil.FormatTimestamp(t))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create checkpoint dir: %w", err)
		}
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return nil
}
