package standards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

func TestGroundingThresholds_ForEquipment(t *testing.T) {
	cfg := standards.ConfigForProfile(domain.ProfileNETA)

	assert.InDelta(t, 5.0, cfg.Grounding.ForEquipment("panel"), 0.0001)
	assert.InDelta(t, 5.0, cfg.Grounding.ForEquipment("  Panel "), 0.0001)
	assert.InDelta(t, 25.0, cfg.Grounding.ForEquipment("switchgear"), 0.0001)
	assert.InDelta(t, 25.0, cfg.Grounding.ForEquipment(""), 0.0001)
}

func TestMeggerThresholds_MinIRForVoltage(t *testing.T) {
	cfg := standards.ConfigForProfile(domain.ProfileNETA)

	// Exact bucket.
	assert.InDelta(t, 100.0, cfg.Megger.MinIRForVoltage(1000), 0.0001)
	// Between buckets: the highest bucket at or below wins.
	assert.InDelta(t, 100.0, cfg.Megger.MinIRForVoltage(2000), 0.0001)
	// Above the top bucket.
	assert.InDelta(t, 5000.0, cfg.Megger.MinIRForVoltage(15000), 0.0001)
	// Below the lowest bucket falls back to the flat minimum.
	assert.InDelta(t, 1.0, cfg.Megger.MinIRForVoltage(250), 0.0001)
}

func TestThermographyThresholds_ClassifyDeltaBoundaries(t *testing.T) {
	cfg := standards.ConfigForProfile(domain.ProfileNETA)
	th := cfg.Thermography

	assert.Equal(t, standards.DeltaNormal, th.ClassifyDelta(3.0))
	assert.Equal(t, standards.DeltaAttention, th.ClassifyDelta(3.1))
	assert.Equal(t, standards.DeltaAttention, th.ClassifyDelta(10.0))
	assert.Equal(t, standards.DeltaSerious, th.ClassifyDelta(10.1))
	assert.Equal(t, standards.DeltaSerious, th.ClassifyDelta(25.0))
	assert.Equal(t, standards.DeltaCritical, th.ClassifyDelta(25.1))
	assert.Equal(t, standards.DeltaCritical, th.ClassifyDelta(50.0))
	assert.Equal(t, standards.DeltaEmergency, th.ClassifyDelta(50.1))
	assert.Equal(t, standards.DeltaEmergency, th.ClassifyDelta(72.0))
}

func TestValidationConfig_ReferenceFor(t *testing.T) {
	cfg := standards.ConfigForProfile(domain.ProfileNETA)

	assert.Equal(t, "ANSI/NETA ATS-2021", cfg.ReferenceFor(domain.TestTypeGrounding).Standard)
	assert.Equal(t, "IEEE 43-2013", cfg.ReferenceFor(domain.TestTypeMegger).Standard)
	assert.Equal(t, "Table 100.18", cfg.ReferenceFor(domain.TestTypeThermography).Section)
	assert.Equal(t, "IEC 61439-1", cfg.ReferenceFor(domain.TestTypeFAT).Standard)
	assert.Equal(t, "5.3", cfg.ReferenceFor(standards.TestTypeCalibration).Section)
	// Unknown types stay citable through the base standard.
	assert.Equal(t, "ANSI/NETA ATS-2021", cfg.ReferenceFor("something_else").Standard)
}

func TestConfigForProfile_MicrosoftTightensThresholds(t *testing.T) {
	neta := standards.ConfigForProfile(domain.ProfileNETA)
	ms := standards.ConfigForProfile(domain.ProfileMicrosoft)

	assert.Less(t, ms.Grounding.General.Value, neta.Grounding.General.Value)
	assert.Less(t, ms.Grounding.ForEquipment("substation"), neta.Grounding.ForEquipment("substation"))
	assert.Greater(t, ms.Megger.MinIRForVoltage(1000), neta.Megger.MinIRForVoltage(1000))
	assert.Less(t, ms.Thermography.CriticalMax, neta.Thermography.CriticalMax)
	assert.Greater(t, ms.Calibration.WarnWindowDays, neta.Calibration.WarnWindowDays)
	assert.Contains(t, ms.FAT.RequiredRoles, "commissioning_agent")
	assert.NotContains(t, neta.FAT.RequiredRoles, "commissioning_agent")
}

func TestConfigForProfile_IsPure(t *testing.T) {
	a := standards.ConfigForProfile(domain.ProfileNETA)
	b := standards.ConfigForProfile(domain.ProfileNETA)
	assert.Equal(t, a, b)
}
