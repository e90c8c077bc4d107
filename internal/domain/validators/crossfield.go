package validators

import (
	"fmt"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Cross-field consistency rule identifiers.
const (
	RuleCrossMissingTag     = "XF-001"
	RuleCrossMissingType    = "XF-002"
	RuleCrossMissingUnit    = "XF-003"
	RuleCrossMissingMaxTemp = "XF-004"
)

var crossFieldRules = []string{
	RuleCrossMissingTag,
	RuleCrossMissingType,
	RuleCrossMissingUnit,
	RuleCrossMissingMaxTemp,
}

// CrossFieldValidator checks structural consistency across the report
// envelope and payload: identifying fields that every downstream
// consumer relies on. It runs on every report regardless of discipline.
type CrossFieldValidator struct {
	base
}

// NewCrossFieldValidator builds a cross-field validator. A non-nil
// config wins over the profile.
func NewCrossFieldValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *CrossFieldValidator {
	return &CrossFieldValidator{base: newBase(standards.TestTypeCrossField, config, profile)}
}

func (v *CrossFieldValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Equipment.Tag == "" {
		rec.add(domain.Finding{
			RuleID:    RuleCrossMissingTag,
			Severity:  domain.SeverityMajor,
			Message:   "equipment tag missing; findings cannot be tied to an asset",
			FieldPath: "equipment.tag",
		})
	}
	if report.Equipment.Type == "" {
		rec.add(domain.Finding{
			RuleID:    RuleCrossMissingType,
			Severity:  domain.SeverityMinor,
			Message:   "equipment type missing; general thresholds will apply",
			FieldPath: "equipment.type",
		})
	}

	if report.Grounding != nil {
		for i, m := range report.Grounding.Measurements {
			if m.Unit == "" {
				rec.add(domain.Finding{
					RuleID:         RuleCrossMissingUnit,
					Severity:       domain.SeverityMinor,
					Message:        fmt.Sprintf("measurement %s: resistance unit missing", m.PointID),
					FieldPath:      fmt.Sprintf("grounding.measurements[%d].unit", i),
					ExtractedValue: m.Resistance.Raw,
				})
			}
		}
	}

	if report.Thermography != nil {
		for i, h := range report.Thermography.Hotspots {
			if h.MaxTemp.IsEmpty() {
				rec.add(domain.Finding{
					RuleID:    RuleCrossMissingMaxTemp,
					Severity:  domain.SeverityMajor,
					Message:   fmt.Sprintf("hotspot %q: maximum temperature missing", h.Location),
					FieldPath: fmt.Sprintf("thermography.hotspots[%d].maxTemp", i),
				})
			}
		}
	}

	return rec.result(report.Equipment.Tag, crossFieldRules)
}
