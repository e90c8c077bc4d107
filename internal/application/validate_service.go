// Package application orchestrates the domain validators into full
// report assessments and turns their findings into scores and verdicts.
package application

import (
	"github.com/hashicorp/go-hclog"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
	"github.com/voltcheck/voltcheck/internal/domain/validators"
)

// ValidationService runs every applicable validator over a report and
// merges their results in a fixed order: discipline rules first, then
// calibration, cross-field consistency, and any OCR-backed evidence
// checks. Validators never short-circuit each other; the merged result
// is the concatenation of everything they found.
type ValidationService struct {
	config  *standards.ValidationConfig
	profile domain.StandardProfile
	logger  hclog.Logger
}

// NewValidationService builds a service for the given profile. An
// explicit config overrides the profile's defaults for every validator.
func NewValidationService(config *standards.ValidationConfig, profile domain.StandardProfile, logger hclog.Logger) *ValidationService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ValidationService{config: config, profile: profile, logger: logger}
}

// ValidateReport assesses a field test report. FAT protocols are not
// dispatched here; use ValidateFAT for those. OCR extractions are
// optional; passing nil skips the evidence reconciliation rules.
func (s *ValidationService) ValidateReport(report *domain.Report, certOCR *domain.CertificateOCR, hygOCR *domain.HygrometerOCR) *domain.ValidationResult {
	merged := &domain.ValidationResult{
		TestType:     report.Kind(),
		EquipmentTag: report.Equipment.Tag,
		IsValid:      true,
	}

	if discipline := s.disciplineValidator(report.Kind()); discipline != nil {
		merged.Merge(discipline.Validate(report))
	} else {
		s.logger.Debug("no discipline validator for report", "test_type", report.Kind())
	}

	merged.Merge(validators.NewCalibrationValidator(s.config, s.profile).Validate(report))
	merged.Merge(validators.NewCrossFieldValidator(s.config, s.profile).Validate(report))

	// Either OCR input enables both evidence validators: the
	// complementary rules that need no certificate scan (such as the
	// inspection-date expiry check) still apply.
	if certOCR != nil || hygOCR != nil {
		merged.Merge(validators.NewComplementaryValidator(s.config, s.profile, certOCR).Validate(report))
		merged.Merge(validators.NewInstrumentSerialValidator(s.config, s.profile, certOCR, hygOCR).Validate(report))
	}

	s.logger.Debug("report validated",
		"test_type", merged.TestType,
		"equipment", merged.EquipmentTag,
		"findings", len(merged.Findings),
		"critical", merged.CriticalCount,
	)
	return merged
}

// ValidateFAT assesses a factory-acceptance-test protocol. FAT reports
// are always submitted explicitly, so they get their own entry point
// instead of payload dispatch.
func (s *ValidationService) ValidateFAT(report *domain.Report) *domain.ValidationResult {
	merged := &domain.ValidationResult{
		TestType:     domain.TestTypeFAT,
		EquipmentTag: report.Equipment.Tag,
		IsValid:      true,
	}

	merged.Merge(validators.NewFATValidator(s.config, s.profile).Validate(report))
	merged.Merge(validators.NewCalibrationValidator(s.config, s.profile).Validate(report))
	merged.Merge(validators.NewCrossFieldValidator(s.config, s.profile).Validate(report))

	s.logger.Debug("fat protocol validated",
		"equipment", merged.EquipmentTag,
		"findings", len(merged.Findings),
		"critical", merged.CriticalCount,
	)
	return merged
}

func (s *ValidationService) disciplineValidator(kind string) validators.Validator {
	switch kind {
	case domain.TestTypeGrounding:
		return validators.NewGroundingValidator(s.config, s.profile)
	case domain.TestTypeMegger:
		return validators.NewMeggerValidator(s.config, s.profile)
	case domain.TestTypeThermography:
		return validators.NewThermographyValidator(s.config, s.profile)
	default:
		return nil
	}
}
