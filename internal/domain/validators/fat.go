package validators

import (
	"fmt"
	"strings"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Factory-acceptance-test rule identifiers.
const (
	RuleFATChecklistEmpty   = "FAT-001"
	RuleFATChecklistItem    = "FAT-002"
	RuleFATSignaturesAbsent = "FAT-003"
	RuleFATSignatureRole    = "FAT-004"
	RuleFATSpecCompliance   = "FAT-005"
	RuleFATMissingTestDate  = "FAT-006"
	RuleFATMissingWitness   = "FAT-007"
	RuleFATOverallStatus    = "FAT-008"
)

var fatRules = []string{
	RuleFATChecklistEmpty,
	RuleFATChecklistItem,
	RuleFATSignaturesAbsent,
	RuleFATSignatureRole,
	RuleFATSpecCompliance,
	RuleFATMissingTestDate,
	RuleFATMissingWitness,
	RuleFATOverallStatus,
}

// FATValidator checks factory-acceptance-test protocols: checklist
// completion, required sign-offs, specification compliance, and
// protocol completeness. It is invoked explicitly by callers and never
// auto-dispatched by the orchestrator.
type FATValidator struct {
	base
}

// NewFATValidator builds a FAT validator. A non-nil config wins over
// the profile.
func NewFATValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *FATValidator {
	return &FATValidator{base: newBase(domain.TestTypeFAT, config, profile)}
}

func (v *FATValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.FAT != nil {
		v.checkChecklist(rec, report.FAT)
		v.checkSignatures(rec, report.FAT)
		v.checkSpecifications(rec, report.FAT)
		v.checkCompleteness(rec, report)
		v.checkOverallStatus(rec, report.FAT)
	}

	return rec.result(report.Equipment.Tag, fatRules)
}

func (v *FATValidator) checkChecklist(rec *recorder, fat *domain.FATPayload) {
	if len(fat.Checklist) == 0 {
		rec.add(domain.Finding{
			RuleID:    RuleFATChecklistEmpty,
			Severity:  domain.SeverityCritical,
			Message:   "protocol checklist is empty",
			FieldPath: "fat.checklist",
		})
		return
	}

	for i, item := range fat.Checklist {
		fieldPath := fmt.Sprintf("fat.checklist[%d].status", i)
		switch strings.ToLower(item.Status) {
		case domain.ChecklistPass:
			rec.add(domain.Finding{
				RuleID:         RuleFATChecklistItem,
				Severity:       domain.SeverityInfo,
				Message:        fmt.Sprintf("checklist item %q passed", item.Description),
				FieldPath:      fieldPath,
				ExtractedValue: item.Status,
			})
		case domain.ChecklistFail:
			rec.add(domain.Finding{
				RuleID:         RuleFATChecklistItem,
				Severity:       domain.SeverityCritical,
				Message:        fmt.Sprintf("checklist item %q failed", item.Description),
				FieldPath:      fieldPath,
				ExtractedValue: item.Status,
				Remediation:    "resolve the failed item and repeat the acceptance test",
			})
		default:
			// Pending or any unrecognized state blocks acceptance.
			rec.add(domain.Finding{
				RuleID:         RuleFATChecklistItem,
				Severity:       domain.SeverityMajor,
				Message:        fmt.Sprintf("checklist item %q is unresolved (status %q)", item.Description, item.Status),
				FieldPath:      fieldPath,
				ExtractedValue: item.Status,
			})
		}
	}
}

func (v *FATValidator) checkSignatures(rec *recorder, fat *domain.FATPayload) {
	if fat.Signatures == nil {
		rec.add(domain.Finding{
			RuleID:    RuleFATSignaturesAbsent,
			Severity:  domain.SeverityCritical,
			Message:   "signature section absent from the protocol",
			FieldPath: "fat.signatures",
		})
		return
	}

	byRole := make(map[string]domain.Signature, len(fat.Signatures))
	for _, s := range fat.Signatures {
		byRole[strings.ToLower(s.Role)] = s
	}

	for _, role := range v.config.FAT.RequiredRoles {
		fieldPath := "fat.signatures"
		sig, present := byRole[role]
		switch {
		case !present:
			rec.add(domain.Finding{
				RuleID:    RuleFATSignatureRole,
				Severity:  domain.SeverityCritical,
				Message:   fmt.Sprintf("required signature role %q missing from the protocol", role),
				FieldPath: fieldPath,
			})
		case !sig.Signed:
			rec.add(domain.Finding{
				RuleID:         RuleFATSignatureRole,
				Severity:       domain.SeverityMajor,
				Message:        fmt.Sprintf("signature role %q present but unsigned", role),
				FieldPath:      fieldPath,
				ExtractedValue: sig.Name,
			})
		default:
			rec.add(domain.Finding{
				RuleID:         RuleFATSignatureRole,
				Severity:       domain.SeverityInfo,
				Message:        fmt.Sprintf("signature role %q signed", role),
				FieldPath:      fieldPath,
				ExtractedValue: sig.Name,
			})
		}
	}
}

func (v *FATValidator) checkSpecifications(rec *recorder, fat *domain.FATPayload) {
	for i, spec := range fat.Specifications {
		fieldPath := fmt.Sprintf("fat.specifications[%d].isCompliant", i)
		switch {
		case spec.IsCompliant == nil:
			rec.add(domain.Finding{
				RuleID:         RuleFATSpecCompliance,
				Severity:       domain.SeverityMinor,
				Message:        fmt.Sprintf("specification %q compliance not assessed", spec.Parameter),
				FieldPath:      fieldPath,
				ExtractedValue: spec.Measured,
			})
		case !*spec.IsCompliant:
			rec.add(domain.Finding{
				RuleID:         RuleFATSpecCompliance,
				Severity:       domain.SeverityCritical,
				Message:        fmt.Sprintf("specification %q not met (declared %q, measured %q)", spec.Parameter, spec.Declared, spec.Measured),
				FieldPath:      fieldPath,
				ExtractedValue: spec.Measured,
				Threshold:      spec.Declared,
			})
		default:
			rec.add(domain.Finding{
				RuleID:         RuleFATSpecCompliance,
				Severity:       domain.SeverityInfo,
				Message:        fmt.Sprintf("specification %q met", spec.Parameter),
				FieldPath:      fieldPath,
				ExtractedValue: spec.Measured,
				Threshold:      spec.Declared,
			})
		}
	}
}

func (v *FATValidator) checkCompleteness(rec *recorder, report *domain.Report) {
	if report.TestDate == "" {
		rec.add(domain.Finding{
			RuleID:    RuleFATMissingTestDate,
			Severity:  domain.SeverityMajor,
			Message:   "test date missing from the protocol",
			FieldPath: "testDate",
		})
	}
	if report.FAT.WitnessName == "" {
		rec.add(domain.Finding{
			RuleID:    RuleFATMissingWitness,
			Severity:  domain.SeverityMinor,
			Message:   "witness name missing from the protocol",
			FieldPath: "fat.witnessName",
		})
	}
}

func (v *FATValidator) checkOverallStatus(rec *recorder, fat *domain.FATPayload) {
	fieldPath := "fat.overallStatus"
	switch strings.ToLower(fat.OverallStatus) {
	case "passed":
		rec.add(domain.Finding{
			RuleID:         RuleFATOverallStatus,
			Severity:       domain.SeverityInfo,
			Message:        "protocol reports overall status passed",
			FieldPath:      fieldPath,
			ExtractedValue: fat.OverallStatus,
		})
	case "failed":
		rec.add(domain.Finding{
			RuleID:         RuleFATOverallStatus,
			Severity:       domain.SeverityCritical,
			Message:        "protocol reports overall status failed",
			FieldPath:      fieldPath,
			ExtractedValue: fat.OverallStatus,
		})
	default:
		rec.add(domain.Finding{
			RuleID:         RuleFATOverallStatus,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("protocol overall status %q is inconclusive", fat.OverallStatus),
			FieldPath:      fieldPath,
			ExtractedValue: fat.OverallStatus,
		})
	}
}
