package extraction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltcheck/voltcheck/internal/adapters/outbound/extraction"
	"github.com/voltcheck/voltcheck/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONLoader_LoadReport(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.json", `{
		"equipment": {"tag": "GRD-01", "type": "panel"},
		"testDate": "2024-06-15",
		"grounding": {
			"measurements": [
				{"pointId": "P1", "resistance": {"raw": "4.2", "confidence": 0.9}, "unit": "ohm"}
			]
		}
	}`)

	report, err := extraction.New().LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, "GRD-01", report.Equipment.Tag)
	assert.Equal(t, domain.TestTypeGrounding, report.Kind())
	require.Len(t, report.Grounding.Measurements, 1)
	assert.Equal(t, "4.2", report.Grounding.Measurements[0].Resistance.Raw)
}

func TestJSONLoader_LoadReportMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.json", `{not json`)

	_, err := extraction.New().LoadReport(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report")
}

func TestJSONLoader_LoadReportMissingFile(t *testing.T) {
	_, err := extraction.New().LoadReport(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestJSONLoader_OCRPathsAreOptional(t *testing.T) {
	loader := extraction.New()

	cert, err := loader.LoadCertificateOCR("")
	require.NoError(t, err)
	assert.Nil(t, cert)

	hyg, err := loader.LoadHygrometerOCR("")
	require.NoError(t, err)
	assert.Nil(t, hyg)
}

func TestJSONLoader_LoadCertificateOCR(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cert.json", `{"serial": "FLK-9000", "confidence": 0.92}`)

	ocr, err := extraction.New().LoadCertificateOCR(path)
	require.NoError(t, err)
	assert.Equal(t, "FLK-9000", ocr.Serial)
	assert.InDelta(t, 0.92, ocr.Confidence, 0.001)
}

func TestJSONLoader_LoadHygrometerOCR(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hyg.json", `{"serial": "HYG-77", "temperatureC": 23.5, "confidence": 0.88}`)

	ocr, err := extraction.New().LoadHygrometerOCR(path)
	require.NoError(t, err)
	assert.Equal(t, "HYG-77", ocr.Serial)
	require.NotNil(t, ocr.TemperatureC)
	assert.InDelta(t, 23.5, *ocr.TemperatureC, 0.001)
}
