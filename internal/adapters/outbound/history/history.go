// Package history persists verdicts per evidence directory, so trend
// and audit queries never depend on external systems.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const historyFile = ".voltcheck/history/verdicts.json"

// Entry is one recorded assessment outcome.
type Entry struct {
	Timestamp       string  `json:"timestamp"`
	RunID           string  `json:"runId"`
	CommitHash      string  `json:"commitHash,omitempty"`
	EquipmentTag    string  `json:"equipmentTag"`
	TestType        string  `json:"testType"`
	Profile         string  `json:"profile"`
	ComplianceScore float64 `json:"complianceScore"`
	Verdict         string  `json:"verdict"`
	CriticalCount   int     `json:"criticalCount"`
}

// FileHistory stores verdict history as a JSON file.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry Entry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]Entry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
