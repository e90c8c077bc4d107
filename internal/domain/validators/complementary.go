package validators

import (
	"fmt"
	"strings"
	"time"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Complementary-evidence rule identifiers.
const (
	RuleCompExpiredAtInspection = "COMP-001"
	RuleCompIllegibleSerial     = "COMP-002"
	RuleCompSerialMismatch      = "COMP-003"
	RuleCompSerialMatch         = "COMP-004"
)

var complementaryRules = []string{
	RuleCompExpiredAtInspection,
	RuleCompIllegibleSerial,
	RuleCompSerialMismatch,
	RuleCompSerialMatch,
}

// ComplementaryValidator reconciles a thermography survey against its
// complementary evidence: the camera calibration certificate scanned
// alongside the report. It applies only to thermography reports.
type ComplementaryValidator struct {
	base
	certOCR *domain.CertificateOCR
}

// NewComplementaryValidator builds a complementary-evidence validator
// bound to the certificate OCR extraction. A non-nil config wins over
// the profile.
func NewComplementaryValidator(config *standards.ValidationConfig, profile domain.StandardProfile, certOCR *domain.CertificateOCR) *ComplementaryValidator {
	return &ComplementaryValidator{
		base:    newBase(standards.TestTypeComplementary, config, profile),
		certOCR: certOCR,
	}
}

func (v *ComplementaryValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Thermography != nil {
		v.checkExpiryAgainstInspection(rec, report)
		v.checkCertificateSerial(rec, report)
	}

	return rec.result(report.Equipment.Tag, complementaryRules)
}

// checkExpiryAgainstInspection flags certificates that lapsed strictly
// before the inspection took place. Later-lapsing certificates are left
// to the calibration rules.
func (v *ComplementaryValidator) checkExpiryAgainstInspection(rec *recorder, report *domain.Report) {
	if report.Calibration == nil || report.Thermography.InspectionDate == "" {
		return
	}
	expiry, err := time.Parse(dateLayout, report.Calibration.ExpirationDate)
	if err != nil {
		return
	}
	inspection, err := time.Parse(dateLayout, report.Thermography.InspectionDate)
	if err != nil {
		return
	}
	if expiry.Before(inspection) {
		days := int(inspection.Sub(expiry).Hours() / 24)
		rec.add(domain.Finding{
			RuleID:         RuleCompExpiredAtInspection,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("camera calibration lapsed %d days before the inspection", days),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: report.Calibration.ExpirationDate,
			Threshold:      fmt.Sprintf("valid through %s", report.Thermography.InspectionDate),
			Remediation:    "repeat the survey with a camera holding a current calibration certificate",
		})
	}
}

// checkCertificateSerial compares the OCR-extracted certificate serial
// with the camera serial declared in the report. Whitespace is trimmed
// and case folded; internal characters are preserved.
func (v *ComplementaryValidator) checkCertificateSerial(rec *recorder, report *domain.Report) {
	if v.certOCR == nil {
		return
	}

	minConfidence := v.config.Complementary.OCRConfidenceThreshold
	if v.certOCR.Confidence < minConfidence {
		rec.add(domain.Finding{
			RuleID:         RuleCompIllegibleSerial,
			Severity:       domain.SeverityMajor,
			Message:        fmt.Sprintf("certificate serial illegible (OCR confidence %.2f below %.2f), verify manually", v.certOCR.Confidence, minConfidence),
			FieldPath:      "certificateOCR.serial",
			ExtractedValue: v.certOCR.Serial,
			Threshold:      fmt.Sprintf("confidence ≥ %.2f", minConfidence),
		})
		return
	}

	declared := strings.ToUpper(strings.TrimSpace(report.Thermography.CameraSerial))
	extracted := strings.ToUpper(strings.TrimSpace(v.certOCR.Serial))
	if declared != extracted {
		rec.add(domain.Finding{
			RuleID:         RuleCompSerialMismatch,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("certificate serial %q does not match the camera serial %q in the report", v.certOCR.Serial, report.Thermography.CameraSerial),
			FieldPath:      "thermography.cameraSerial",
			ExtractedValue: v.certOCR.Serial,
			Threshold:      report.Thermography.CameraSerial,
			Remediation:    "confirm the certificate belongs to the camera used for the survey",
		})
		return
	}

	rec.add(domain.Finding{
		RuleID:         RuleCompSerialMatch,
		Severity:       domain.SeverityInfo,
		Message:        fmt.Sprintf("certificate serial matches the camera serial %q", report.Thermography.CameraSerial),
		FieldPath:      "thermography.cameraSerial",
		ExtractedValue: v.certOCR.Serial,
	})
}
