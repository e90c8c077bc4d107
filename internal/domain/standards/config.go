// Package standards builds the per-profile threshold configuration the
// validators run against. Configs are pure values: building the same
// profile twice yields value-equal configs, which is what makes the
// process-wide cache safe.
package standards

import (
	"strings"

	"github.com/voltcheck/voltcheck/internal/domain"
)

// ThresholdReference carries a threshold together with the regulatory
// citation that justifies it. Findings built from a threshold must be
// traceable to one of these.
type ThresholdReference struct {
	Value       float64         `json:"value,omitempty"`
	ByVoltage   map[int]float64 `json:"by_voltage,omitempty"`
	Standard    string          `json:"standard"`
	Section     string          `json:"section"`
	Description string          `json:"description,omitempty"`
}

// Ref returns the citation portion of the threshold.
func (t ThresholdReference) Ref() domain.StandardReference {
	return domain.StandardReference{Standard: t.Standard, Section: t.Section}
}

// GroundingThresholds holds ground-resistance ceilings in ohms.
type GroundingThresholds struct {
	General     ThresholdReference `json:"general"`
	ByEquipment map[string]float64 `json:"by_equipment"`
}

// ForEquipment returns the resistance ceiling for an equipment type,
// falling back to the general ceiling when the type is unknown or empty.
func (g GroundingThresholds) ForEquipment(equipmentType string) float64 {
	key := strings.ToLower(strings.TrimSpace(equipmentType))
	if v, ok := g.ByEquipment[key]; ok {
		return v
	}
	return g.General.Value
}

// MeggerThresholds holds insulation-resistance minimums. MinIR.Value is
// the flat floor in megohms; MinIR.ByVoltage buckets minimums by test
// voltage. PICriticalFloor is the polarization index below which the
// winding is considered unserviceable.
type MeggerThresholds struct {
	MinPI           ThresholdReference `json:"min_pi"`
	PICriticalFloor float64            `json:"pi_critical_floor"`
	MinIR           ThresholdReference `json:"min_ir"`
}

// MinIRForVoltage returns the minimum acceptable 1-minute IR for a test
// voltage: the highest configured bucket at or below the voltage, else
// the flat minimum.
func (m MeggerThresholds) MinIRForVoltage(voltage float64) float64 {
	best := -1
	for bucket := range m.MinIR.ByVoltage {
		if float64(bucket) <= voltage && bucket > best {
			best = bucket
		}
	}
	if best < 0 {
		return m.MinIR.Value
	}
	return m.MinIR.ByVoltage[best]
}

// DeltaClass is the thermographic severity classification of a
// hotspot-to-reference temperature rise.
type DeltaClass string

const (
	DeltaNormal    DeltaClass = "normal"
	DeltaAttention DeltaClass = "attention"
	DeltaSerious   DeltaClass = "serious"
	DeltaCritical  DeltaClass = "critical"
	DeltaEmergency DeltaClass = "emergency"
)

// ThermographyThresholds holds the ascending delta-T cutoffs in °C.
type ThermographyThresholds struct {
	NormalMax    float64            `json:"normal_max"`
	AttentionMax float64            `json:"attention_max"`
	SeriousMax   float64            `json:"serious_max"`
	CriticalMax  float64            `json:"critical_max"`
	Reference    ThresholdReference `json:"reference"`
}

// ClassifyDelta maps a delta-T to its class. Anything above the
// critical cutoff is an emergency.
func (t ThermographyThresholds) ClassifyDelta(deltaT float64) DeltaClass {
	switch {
	case deltaT <= t.NormalMax:
		return DeltaNormal
	case deltaT <= t.AttentionMax:
		return DeltaAttention
	case deltaT <= t.SeriousMax:
		return DeltaSerious
	case deltaT <= t.CriticalMax:
		return DeltaCritical
	}
	return DeltaEmergency
}

// CalibrationConfig governs certificate expiry checks.
type CalibrationConfig struct {
	WarnWindowDays int                `json:"warn_window_days"`
	Reference      ThresholdReference `json:"reference"`
}

// FATConfig governs factory-acceptance-test checks.
type FATConfig struct {
	RequiredRoles []string           `json:"required_roles"`
	Reference     ThresholdReference `json:"reference"`
}

// ComplementaryConfig governs OCR-backed cross checks. Serial
// comparisons are skipped below the confidence threshold.
type ComplementaryConfig struct {
	OCRConfidenceThreshold float64            `json:"ocr_confidence_threshold"`
	Reference              ThresholdReference `json:"reference"`
}

// ValidationConfig bundles every threshold table for one standard
// profile. It is immutable once built; validators only read from it.
type ValidationConfig struct {
	Profile       domain.StandardProfile `json:"profile"`
	Grounding     GroundingThresholds    `json:"grounding"`
	Megger        MeggerThresholds       `json:"megger"`
	Thermography  ThermographyThresholds `json:"thermography"`
	Calibration   CalibrationConfig      `json:"calibration"`
	FAT           FATConfig              `json:"fat"`
	Complementary ComplementaryConfig    `json:"complementary"`
}

// ReferenceFor returns the default standard citation for a validator's
// test type, used when a rule does not name a more specific threshold.
func (c ValidationConfig) ReferenceFor(testType string) domain.StandardReference {
	switch testType {
	case domain.TestTypeGrounding:
		return c.Grounding.General.Ref()
	case domain.TestTypeMegger:
		return c.Megger.MinPI.Ref()
	case domain.TestTypeThermography:
		return c.Thermography.Reference.Ref()
	case domain.TestTypeFAT:
		return c.FAT.Reference.Ref()
	case TestTypeCalibration:
		return c.Calibration.Reference.Ref()
	case TestTypeComplementary, TestTypeInstrumentSerial:
		return c.Complementary.Reference.Ref()
	}
	// Cross-field and unknown types fall back to the profile's base
	// standard so every finding stays citable.
	return c.Grounding.General.Ref()
}

// Test types of the cross-cutting validators. The four per-discipline
// types live in the domain package next to the payload union.
const (
	TestTypeCalibration      = "calibration"
	TestTypeCrossField       = "cross_field"
	TestTypeComplementary    = "complementary"
	TestTypeInstrumentSerial = "instrument_serial"
)
