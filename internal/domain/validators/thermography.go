package validators

import (
	"fmt"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Thermography rule identifiers.
const (
	RuleThermoNoAnomalies = "THERM-001"
	RuleThermoDeltaClass  = "THERM-002"
	RuleThermoEmergency   = "THERM-003"
	RuleThermoMissingTemp = "THERM-004"
)

var thermographyRules = []string{
	RuleThermoNoAnomalies,
	RuleThermoDeltaClass,
	RuleThermoEmergency,
	RuleThermoMissingTemp,
}

// ThermographyValidator classifies hotspot delta-T values against the
// profile's ascending cutoffs. Readings beyond the critical cutoff get
// a distinct emergency rule with an explicit de-energize remediation.
type ThermographyValidator struct {
	base
}

// NewThermographyValidator builds a thermography validator. A non-nil
// config wins over the profile.
func NewThermographyValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *ThermographyValidator {
	return &ThermographyValidator{base: newBase(domain.TestTypeThermography, config, profile)}
}

func (v *ThermographyValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Thermography != nil {
		if len(report.Thermography.Hotspots) == 0 {
			rec.add(domain.Finding{
				RuleID:    RuleThermoNoAnomalies,
				Severity:  domain.SeverityInfo,
				Message:   "no thermal anomalies reported in the survey",
				FieldPath: "thermography.hotspots",
			})
		}
		for i, h := range report.Thermography.Hotspots {
			v.checkHotspot(rec, i, h)
		}
	}

	return rec.result(report.Equipment.Tag, thermographyRules)
}

func (v *ThermographyValidator) checkHotspot(rec *recorder, idx int, h domain.Hotspot) {
	fieldPath := fmt.Sprintf("thermography.hotspots[%d]", idx)
	location := h.Location
	if location == "" {
		location = fmt.Sprintf("hotspot %d", idx+1)
	}

	delta, ok := h.DeltaT()
	if !ok {
		rec.add(domain.Finding{
			RuleID:         RuleThermoMissingTemp,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("%s: delta-T not computable (max %q, reference %q)", location, h.MaxTemp.Raw, h.RefTemp.Raw),
			FieldPath:      fieldPath,
			ExtractedValue: h.MaxTemp.Raw,
		})
		return
	}

	class := v.config.Thermography.ClassifyDelta(delta)
	threshold := fmt.Sprintf("critical > %g °C", v.config.Thermography.CriticalMax)

	if class == standards.DeltaEmergency {
		rec.add(domain.Finding{
			RuleID:         RuleThermoEmergency,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("%s: delta-T %.1f °C beyond the %g °C critical cutoff (emergency)", location, delta, v.config.Thermography.CriticalMax),
			FieldPath:      fieldPath,
			ExtractedValue: fmt.Sprintf("%.1f °C", delta),
			Threshold:      threshold,
			Remediation:    "de-energize the equipment immediately and repair before returning to service",
		})
		return
	}

	rec.add(domain.Finding{
		RuleID:         RuleThermoDeltaClass,
		Severity:       severityForDeltaClass(class),
		Message:        fmt.Sprintf("%s: delta-T %.1f °C classified %s", location, delta, class),
		FieldPath:      fieldPath,
		ExtractedValue: fmt.Sprintf("%.1f °C", delta),
		Threshold:      threshold,
	})
}

func severityForDeltaClass(class standards.DeltaClass) domain.Severity {
	switch class {
	case standards.DeltaNormal:
		return domain.SeverityInfo
	case standards.DeltaAttention:
		return domain.SeverityMinor
	case standards.DeltaSerious:
		return domain.SeverityMajor
	default:
		return domain.SeverityCritical
	}
}
