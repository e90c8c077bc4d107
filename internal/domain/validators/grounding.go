package validators

import (
	"fmt"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Grounding rule identifiers.
const (
	RuleGroundingWithinLimit  = "GRND-001"
	RuleGroundingExceedsLimit = "GRND-002"
	RuleGroundingInvalidValue = "GRND-003"
)

var groundingRules = []string{
	RuleGroundingWithinLimit,
	RuleGroundingExceedsLimit,
	RuleGroundingInvalidValue,
}

// GroundingValidator checks ground-resistance measurements against
// equipment-specific ceilings, escalating severity as the measured
// value overshoots the ceiling.
type GroundingValidator struct {
	base
}

// NewGroundingValidator builds a grounding validator. A non-nil config
// wins over the profile.
func NewGroundingValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *GroundingValidator {
	return &GroundingValidator{base: newBase(domain.TestTypeGrounding, config, profile)}
}

func (v *GroundingValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Grounding != nil {
		for i, m := range report.Grounding.Measurements {
			v.checkMeasurement(rec, report, i, m)
		}
	}

	return rec.result(report.Equipment.Tag, groundingRules)
}

func (v *GroundingValidator) checkMeasurement(rec *recorder, report *domain.Report, idx int, m domain.GroundingMeasurement) {
	fieldPath := fmt.Sprintf("grounding.measurements[%d].resistance", idx)

	equipmentType := m.EquipmentType
	if equipmentType == "" {
		equipmentType = report.Equipment.Type
	}
	threshold := v.config.Grounding.ForEquipment(equipmentType)

	value, ok := m.Resistance.Float()
	if !ok {
		rec.add(domain.Finding{
			RuleID:         RuleGroundingInvalidValue,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("measurement %s: resistance value %q is not numeric", m.PointID, m.Resistance.Raw),
			FieldPath:      fieldPath,
			ExtractedValue: m.Resistance.Raw,
			Threshold:      formatOhms(threshold),
		})
		return
	}

	// Escalation ladder: within the ceiling is informational, minor up
	// to (but not including) 1.5x, major from 1.5x through 2x, and
	// anything strictly beyond 2x the ceiling is critical.
	switch {
	case value <= threshold:
		rec.add(domain.Finding{
			RuleID:         RuleGroundingWithinLimit,
			Severity:       domain.SeverityInfo,
			Message:        fmt.Sprintf("measurement %s: %s within the %s ceiling", m.PointID, formatOhms(value), formatOhms(threshold)),
			FieldPath:      fieldPath,
			ExtractedValue: m.Resistance.Raw,
			Threshold:      formatOhms(threshold),
		})
	case value < threshold*1.5:
		rec.add(domain.Finding{
			RuleID:         RuleGroundingExceedsLimit,
			Severity:       domain.SeverityMinor,
			Message:        fmt.Sprintf("measurement %s: %s exceeds the %s ceiling", m.PointID, formatOhms(value), formatOhms(threshold)),
			FieldPath:      fieldPath,
			ExtractedValue: m.Resistance.Raw,
			Threshold:      formatOhms(threshold),
		})
	case value <= threshold*2:
		rec.add(domain.Finding{
			RuleID:         RuleGroundingExceedsLimit,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("measurement %s: %s is at or above 1.5x the %s ceiling", m.PointID, formatOhms(value), formatOhms(threshold)),
			FieldPath:      fieldPath,
			ExtractedValue: m.Resistance.Raw,
			Threshold:      formatOhms(threshold),
		})
	default:
		rec.add(domain.Finding{
			RuleID:         RuleGroundingExceedsLimit,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("measurement %s: %s exceeds 2x the %s ceiling", m.PointID, formatOhms(value), formatOhms(threshold)),
			FieldPath:      fieldPath,
			ExtractedValue: m.Resistance.Raw,
			Threshold:      formatOhms(threshold),
			Remediation:    "re-test the electrode after inspecting bonding connections and soil conditions",
		})
	}
}

func formatOhms(v float64) string {
	return fmt.Sprintf("%g Ω", v)
}
