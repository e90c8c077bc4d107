package validators

import (
	"fmt"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Megger (insulation resistance) rule identifiers.
const (
	RuleMeggerPIMissing  = "MEG-001"
	RuleMeggerPICritical = "MEG-002"
	RuleMeggerPILow      = "MEG-003"
	RuleMeggerPIOK       = "MEG-004"
	RuleMeggerIRCritical = "MEG-005"
	RuleMeggerIRLow      = "MEG-006"
	RuleMeggerIROK       = "MEG-007"
	RuleMeggerIRInvalid  = "MEG-008"
)

var meggerRules = []string{
	RuleMeggerPIMissing,
	RuleMeggerPICritical,
	RuleMeggerPILow,
	RuleMeggerPIOK,
	RuleMeggerIRCritical,
	RuleMeggerIRLow,
	RuleMeggerIROK,
	RuleMeggerIRInvalid,
}

// MeggerValidator checks polarization index and voltage-bucketed
// 1-minute insulation resistance minimums per circuit. The two checks
// are independent: a circuit contributes one finding for each.
type MeggerValidator struct {
	base
}

// NewMeggerValidator builds a megger validator. A non-nil config wins
// over the profile.
func NewMeggerValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *MeggerValidator {
	return &MeggerValidator{base: newBase(domain.TestTypeMegger, config, profile)}
}

func (v *MeggerValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Megger != nil {
		for i, c := range report.Megger.Circuits {
			v.checkPolarizationIndex(rec, i, c)
			v.checkInsulationResistance(rec, i, c)
		}
	}

	return rec.result(report.Equipment.Tag, meggerRules)
}

func (v *MeggerValidator) checkPolarizationIndex(rec *recorder, idx int, c domain.MeggerCircuit) {
	fieldPath := fmt.Sprintf("megger.circuits[%d].polarizationIndex", idx)
	minPI := v.config.Megger.MinPI.Value
	floor := v.config.Megger.PICriticalFloor

	if c.PolarizationIndex == nil {
		rec.add(domain.Finding{
			RuleID:    RuleMeggerPIMissing,
			Severity:  domain.SeverityMajor,
			Message:   fmt.Sprintf("circuit %s: polarization index could not be established from the timed readings", c.CircuitID),
			FieldPath: fieldPath,
			Threshold: fmt.Sprintf("PI ≥ %g", minPI),
		})
		return
	}

	pi := *c.PolarizationIndex
	switch {
	case pi < floor:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerPICritical,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("circuit %s: polarization index %.2f below the %.1f serviceability floor", c.CircuitID, pi, floor),
			FieldPath:      fieldPath,
			ExtractedValue: fmt.Sprintf("%.2f", pi),
			Threshold:      fmt.Sprintf("PI ≥ %g", minPI),
			Remediation:    "dry out or recondition the winding and repeat the insulation test",
		})
	case pi < minPI:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerPILow,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("circuit %s: polarization index %.2f below the required %g", c.CircuitID, pi, minPI),
			FieldPath:      fieldPath,
			ExtractedValue: fmt.Sprintf("%.2f", pi),
			Threshold:      fmt.Sprintf("PI ≥ %g", minPI),
		})
	default:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerPIOK,
			Severity:       domain.SeverityInfo,
			Message:        fmt.Sprintf("circuit %s: polarization index %.2f meets the required %g", c.CircuitID, pi, minPI),
			FieldPath:      fieldPath,
			ExtractedValue: fmt.Sprintf("%.2f", pi),
			Threshold:      fmt.Sprintf("PI ≥ %g", minPI),
		})
	}
}

func (v *MeggerValidator) checkInsulationResistance(rec *recorder, idx int, c domain.MeggerCircuit) {
	fieldPath := fmt.Sprintf("megger.circuits[%d].irOneMin", idx)
	minIR := v.config.Megger.MinIRForVoltage(c.TestVoltage)
	threshold := fmt.Sprintf("%g MΩ @ %g V", minIR, c.TestVoltage)

	ir, ok := c.IROneMin.Float()
	if !ok {
		rec.add(domain.Finding{
			RuleID:         RuleMeggerIRInvalid,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("circuit %s: 1-minute IR reading %q is not numeric", c.CircuitID, c.IROneMin.Raw),
			FieldPath:      fieldPath,
			ExtractedValue: c.IROneMin.Raw,
			Threshold:      threshold,
			StandardRef:    v.config.Megger.MinIR.Ref(),
		})
		return
	}

	switch {
	case ir < minIR*0.5:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerIRCritical,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("circuit %s: 1-minute IR %g MΩ below half the %g MΩ minimum", c.CircuitID, ir, minIR),
			FieldPath:      fieldPath,
			ExtractedValue: c.IROneMin.Raw,
			Threshold:      threshold,
			StandardRef:    v.config.Megger.MinIR.Ref(),
			Remediation:    "isolate the circuit and investigate insulation breakdown before energizing",
		})
	case ir < minIR:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerIRLow,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("circuit %s: 1-minute IR %g MΩ below the %g MΩ minimum", c.CircuitID, ir, minIR),
			FieldPath:      fieldPath,
			ExtractedValue: c.IROneMin.Raw,
			Threshold:      threshold,
			StandardRef:    v.config.Megger.MinIR.Ref(),
		})
	default:
		rec.add(domain.Finding{
			RuleID:         RuleMeggerIROK,
			Severity:       domain.SeverityInfo,
			Message:        fmt.Sprintf("circuit %s: 1-minute IR %g MΩ meets the %g MΩ minimum", c.CircuitID, ir, minIR),
			FieldPath:      fieldPath,
			ExtractedValue: c.IROneMin.Raw,
			Threshold:      threshold,
			StandardRef:    v.config.Megger.MinIR.Ref(),
		})
	}
}
