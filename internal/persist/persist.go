// Package persist writes and reads result files. One file holds one run:
// its metadata, the top-level series and every section.
package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// Ext is the extension of result files.
const Ext = ".cpm"

// TimeLayout is the layout of the human readable start time.
const TimeLayout = time.ANSIC

// ErrFormat is returned when a file cannot be decoded as a result file.
var ErrFormat = errors.New("invalid result file")

// Measurement is one measured point. Duration is in microseconds.
type Measurement struct {
	Size     string `json:"size"`
	Duration uint64 `json:"duration"`
}

// Result is a titled top-level series.
type Result struct {
	Title   string        `json:"title"`
	Results []Measurement `json:"results"`
}

// Series is a named series inside a section.
type Series struct {
	Name    string        `json:"name"`
	Results []Measurement `json:"results"`
}

// Section is a named group of series measured over the same sizes.
type Section struct {
	Name    string   `json:"name"`
	Results []Series `json:"results"`
}

// Run is the content of one result file.
type Run struct {
	Name      string    `json:"name"`
	Tag       string    `json:"tag"`
	Compiler  string    `json:"compiler"`
	OS        string    `json:"os"`
	Time      string    `json:"time"`
	Timestamp int64     `json:"timestamp"`
	Results   []Result  `json:"results"`
	Sections  []Section `json:"sections"`
}

// Stamp fills Time and Timestamp from t.
func (r *Run) Stamp(t time.Time) {
	r.Time = t.Format(TimeLayout)
	r.Timestamp = t.Unix()
}

// Started returns the start time recorded in the run.
func (r Run) Started() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// Micros converts a duration to the persisted unit.
func Micros(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d.Microseconds())
}

// Elapsed converts the persisted value back to a duration.
func (m Measurement) Elapsed() time.Duration {
	return time.Duration(m.Duration) * time.Microsecond
}

// Path returns the file holding the run tagged tag inside folder.
func Path(folder, tag string) string {
	return filepath.Join(folder, tag+Ext)
}

// FreeTag returns the smallest integer tag with no result file in folder.
func FreeTag(folder string) (string, error) {
	for i := 0; ; i++ {
		tag := strconv.Itoa(i)
		_, err := os.Stat(Path(folder, tag))
		if errors.Is(err, os.ErrNotExist) {
			return tag, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check tag %s: %w", tag, err)
		}
	}
}

// Write stores run at path. The content is written to a temporary file in
// the same folder and renamed into place, so readers never see a partial file.
func Write(path string, run Run) error {
	if run.Results == nil {
		run.Results = []Result{}
	}
	if run.Sections == nil {
		run.Sections = []Section{}
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", run.Name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".cpm-*")
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move result file into %s: %w", path, err)
	}
	return nil
}

// Load reads the run stored at path.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	if run.Name == "" && run.Tag == "" {
		return Run{}, fmt.Errorf("%w: %s: missing name and tag", ErrFormat, path)
	}
	return run, nil
}
