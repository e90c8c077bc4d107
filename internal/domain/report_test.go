package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltcheck/voltcheck/internal/domain"
)

func TestReport_KindDispatch(t *testing.T) {
	assert.Equal(t, domain.TestTypeGrounding, (&domain.Report{Grounding: &domain.GroundingPayload{}}).Kind())
	assert.Equal(t, domain.TestTypeMegger, (&domain.Report{Megger: &domain.MeggerPayload{}}).Kind())
	assert.Equal(t, domain.TestTypeThermography, (&domain.Report{Thermography: &domain.ThermographyPayload{}}).Kind())
	assert.Equal(t, domain.TestTypeFAT, (&domain.Report{FAT: &domain.FATPayload{}}).Kind())
	assert.Equal(t, domain.TestTypeUnknown, (&domain.Report{}).Kind())
}

func TestFieldValue_Float(t *testing.T) {
	v, ok := domain.FieldValue{Raw: "12.5"}.Float()
	assert.True(t, ok)
	assert.InDelta(t, 12.5, v, 0.0001)

	_, ok = domain.FieldValue{Raw: "N/A"}.Float()
	assert.False(t, ok)

	_, ok = domain.FieldValue{}.Float()
	assert.False(t, ok)
}

func TestHotspot_DeltaT(t *testing.T) {
	h := domain.Hotspot{
		MaxTemp: domain.FieldValue{Raw: "95.0"},
		RefTemp: domain.FieldValue{Raw: "23.0"},
	}
	delta, ok := h.DeltaT()
	assert.True(t, ok)
	assert.InDelta(t, 72.0, delta, 0.0001)

	h.RefTemp = domain.FieldValue{Raw: "illegible"}
	_, ok = h.DeltaT()
	assert.False(t, ok)
}

func TestReport_ConfidenceValuesSkipsEmptyFields(t *testing.T) {
	report := &domain.Report{
		Grounding: &domain.GroundingPayload{
			Measurements: []domain.GroundingMeasurement{
				{Resistance: domain.FieldValue{Raw: "4.2", Confidence: 0.9}},
				{Resistance: domain.FieldValue{Confidence: 0.1}}, // empty, skipped
				{Resistance: domain.FieldValue{Raw: "7.7", Confidence: 0.7}},
			},
		},
	}

	assert.Equal(t, []float64{0.9, 0.7}, report.ConfidenceValues())
}

func TestReport_ConfidenceValuesMegger(t *testing.T) {
	report := &domain.Report{
		Megger: &domain.MeggerPayload{
			Circuits: []domain.MeggerCircuit{
				{
					IROneMin: domain.FieldValue{Raw: "150", Confidence: 0.8},
					IRTenMin: domain.FieldValue{Raw: "450", Confidence: 0.6},
				},
			},
		},
	}

	assert.Equal(t, []float64{0.8, 0.6}, report.ConfidenceValues())
}
