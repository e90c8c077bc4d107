// Package config reads the optional .voltcheck.yaml run configuration
// and overlays it onto the selected standard profile's thresholds.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

const fileName = ".voltcheck.yaml"

// RunConfig is the user-editable run configuration. Zero values mean
// "use the profile default"; only explicitly set fields override.
type RunConfig struct {
	Profile                string  `yaml:"profile"`
	CalibrationWarnDays    int     `yaml:"calibration_warn_days"`
	OCRConfidenceThreshold float64 `yaml:"ocr_confidence_threshold"`
	MinPolarizationIndex   float64 `yaml:"min_polarization_index"`
	MinScore               float64 `yaml:"min_score"`
}

// Validate catches out-of-range values before they silently weaken a
// run.
func (c RunConfig) Validate() error {
	if c.Profile != "" {
		if _, err := domain.ParseProfile(c.Profile); err != nil {
			return err
		}
	}
	if c.CalibrationWarnDays < 0 {
		return fmt.Errorf("calibration_warn_days must not be negative (got %d)", c.CalibrationWarnDays)
	}
	if c.OCRConfidenceThreshold < 0 || c.OCRConfidenceThreshold > 1 {
		return fmt.Errorf("ocr_confidence_threshold must be within [0,1] (got %g)", c.OCRConfidenceThreshold)
	}
	if c.MinPolarizationIndex < 0 {
		return fmt.Errorf("min_polarization_index must not be negative (got %g)", c.MinPolarizationIndex)
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score must be within [0,100] (got %g)", c.MinScore)
	}
	return nil
}

// YAMLLoader reads .voltcheck.yaml from an evidence directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .voltcheck.yaml from dir. A missing file yields the zero
// RunConfig, meaning the profile defaults apply untouched.
func (l *YAMLLoader) Load(dir string) (RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RunConfig{}, nil
		}
		return RunConfig{}, err
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// Resolve merges the run configuration over the profile's defaults. An
// explicit profile flag beats the file's profile; both beat the NETA
// default. The returned config is a private copy, never the cached one.
func Resolve(cfg RunConfig, flagProfile string) (standards.ValidationConfig, domain.StandardProfile, error) {
	name := flagProfile
	if name == "" {
		name = cfg.Profile
	}
	profile, err := domain.ParseProfile(name)
	if err != nil {
		return standards.ValidationConfig{}, "", err
	}

	resolved := standards.ConfigForProfile(profile)
	if cfg.CalibrationWarnDays > 0 {
		resolved.Calibration.WarnWindowDays = cfg.CalibrationWarnDays
	}
	if cfg.OCRConfidenceThreshold > 0 {
		resolved.Complementary.OCRConfidenceThreshold = cfg.OCRConfidenceThreshold
	}
	if cfg.MinPolarizationIndex > 0 {
		resolved.Megger.MinPI.Value = cfg.MinPolarizationIndex
	}
	return resolved, profile, nil
}
