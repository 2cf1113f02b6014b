package output

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

// Encode writes result as 2-space-indented JSON keyed by staff name.
func Encode(w io.Writer, result domain.ScheduleResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	return nil
}

// WriteJSON encodes result to path, replacing any existing file atomically:
// the JSON goes to a temp file in the same directory which is then renamed
// over the destination.
func WriteJSON(ctx context.Context, path string, result domain.ScheduleResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, 0644)

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, result); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(fmt.Errorf("writing %s: %w", tmpPath, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing %s: %w", tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a previously written schedule artifact.
func ReadJSON(path string) (domain.ScheduleResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result domain.ScheduleResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing schedule file: %w", err)
	}
	for name, sched := range result {
		sched.Name = name
	}
	return result, nil
}
