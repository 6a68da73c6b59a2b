// Package history persists a bounded log of past division runs so the CLI
// can recall inputs and parameters. Records live in a single JSON file
// under the user config directory; a corrupt file is discarded rather than
// surfaced as an error.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/classdivide/classdivide/divide"
)

// maxRecords bounds the history file; oldest entries fall off.
const maxRecords = 50

// Record captures one completed division run.
type Record struct {
	ID          string                    `json:"id"`
	Timestamp   time.Time                 `json:"timestamp"`
	InputPath   string                    `json:"input_path"`
	OutputPath  string                    `json:"output_path,omitempty"`
	NumClasses  int                       `json:"num_classes"`
	NumStudents int                       `json:"num_students"`
	Format      string                    `json:"format"` // "xlsx" or "csv"
	Params      divide.OptimizationParams `json:"optimization_params"`
}

// NewRecord builds a Record stamped with a fresh id and the current time.
func NewRecord(inputPath, outputPath string, numClasses, numStudents int, format string, params divide.OptimizationParams) Record {
	return Record{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		InputPath:   inputPath,
		OutputPath:  outputPath,
		NumClasses:  numClasses,
		NumStudents: numStudents,
		Format:      format,
		Params:      params,
	}
}

// Manager reads and writes the history file.
type Manager struct {
	historyFile string
}

// NewManager places the history file under the user config directory
// (creating it if needed).
func NewManager() (*Manager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating config dir: %w", err)
	}
	dir := filepath.Join(configDir, "classdivide")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	return &Manager{historyFile: filepath.Join(dir, "history.json")}, nil
}

// NewManagerAt uses an explicit file path. Intended for tests and
// non-standard setups.
func NewManagerAt(path string) *Manager {
	return &Manager{historyFile: path}
}

// Load returns all records, newest first. A missing, empty, or corrupt
// file loads as an empty history; corruption additionally deletes the file
// so the next save starts clean.
func (m *Manager) Load() ([]Record, error) {
	content, err := os.ReadFile(m.historyFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(content, &records); err != nil {
		_ = os.Remove(m.historyFile)
		return nil, nil
	}
	return records, nil
}

func (m *Manager) save(records []Record) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(m.historyFile, content, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Add prepends a record and truncates the log to maxRecords.
func (m *Manager) Add(record Record) error {
	records, err := m.Load()
	if err != nil {
		records = nil
	}
	records = append([]Record{record}, records...)
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}
	return m.save(records)
}

// Delete removes the record with the given id, if present.
func (m *Manager) Delete(id string) error {
	records, err := m.Load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return m.save(kept)
}

// Clear removes the history file entirely.
func (m *Manager) Clear() error {
	err := os.Remove(m.historyFile)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
