// Package extraction loads the structured outputs of the upstream
// document-extraction pipeline: test reports and OCR reads, both plain
// JSON files on disk.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/voltcheck/voltcheck/internal/domain"
)

// JSONLoader reads extraction artifacts from JSON files.
type JSONLoader struct{}

// New creates a JSONLoader.
func New() *JSONLoader { return &JSONLoader{} }

// LoadReport reads a structured test report. Malformed JSON is an
// error; questionable content inside a well-formed report is left for
// the validators to judge.
func (l *JSONLoader) LoadReport(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &report, nil
}

// LoadCertificateOCR reads a calibration-certificate OCR extraction.
// An empty path means the evidence was not supplied and returns nil.
func (l *JSONLoader) LoadCertificateOCR(path string) (*domain.CertificateOCR, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading certificate scan: %w", err)
	}
	var ocr domain.CertificateOCR
	if err := json.Unmarshal(data, &ocr); err != nil {
		return nil, fmt.Errorf("parsing certificate scan %s: %w", path, err)
	}
	return &ocr, nil
}

// LoadHygrometerOCR reads a hygrometer OCR extraction. An empty path
// means the evidence was not supplied and returns nil.
func (l *JSONLoader) LoadHygrometerOCR(path string) (*domain.HygrometerOCR, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hygrometer scan: %w", err)
	}
	var ocr domain.HygrometerOCR
	if err := json.Unmarshal(data, &ocr); err != nil {
		return nil, fmt.Errorf("parsing hygrometer scan %s: %w", path, err)
	}
	return &ocr, nil
}
