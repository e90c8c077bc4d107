package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	runconfig "github.com/voltcheck/voltcheck/internal/adapters/outbound/config"
	"github.com/voltcheck/voltcheck/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".voltcheck.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsZeroConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := runconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, runconfig.RunConfig{}, cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
profile: microsoft
calibration_warn_days: 45
ocr_confidence_threshold: 0.9
min_score: 90
`)

	cfg, err := runconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "microsoft", cfg.Profile)
	assert.Equal(t, 45, cfg.CalibrationWarnDays)
	assert.InDelta(t, 0.9, cfg.OCRConfidenceThreshold, 0.001)
	assert.InDelta(t, 90.0, cfg.MinScore, 0.001)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := runconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .voltcheck.yaml")
}

func TestYAMLLoader_RejectsOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `ocr_confidence_threshold: 1.5`)

	_, err := runconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .voltcheck.yaml")
}

func TestYAMLLoader_RejectsUnknownProfile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `profile: iec`)

	_, err := runconfig.New().Load(dir)
	assert.Error(t, err)
}

func TestResolve_DefaultsToNETA(t *testing.T) {
	resolved, profile, err := runconfig.Resolve(runconfig.RunConfig{}, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileNETA, profile)
	assert.Equal(t, 30, resolved.Calibration.WarnWindowDays)
}

func TestResolve_FlagBeatsFileProfile(t *testing.T) {
	_, profile, err := runconfig.Resolve(runconfig.RunConfig{Profile: "neta"}, "microsoft")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileMicrosoft, profile)
}

func TestResolve_OverlaysExplicitValues(t *testing.T) {
	cfg := runconfig.RunConfig{
		CalibrationWarnDays:    45,
		OCRConfidenceThreshold: 0.9,
		MinPolarizationIndex:   2.5,
	}

	resolved, _, err := runconfig.Resolve(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, 45, resolved.Calibration.WarnWindowDays)
	assert.InDelta(t, 0.9, resolved.Complementary.OCRConfidenceThreshold, 0.001)
	assert.InDelta(t, 2.5, resolved.Megger.MinPI.Value, 0.001)
	// Untouched thresholds keep the profile defaults.
	assert.InDelta(t, 25.0, resolved.Grounding.General.Value, 0.001)
}
