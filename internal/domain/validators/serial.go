package validators

import (
	"fmt"
	"strings"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Instrument-serial rule identifiers.
const (
	RuleSerialLowConfidence = "SER-001"
	RuleSerialMismatch      = "SER-002"
	RuleSerialMatch         = "SER-003"
)

var serialRules = []string{
	RuleSerialLowConfidence,
	RuleSerialMismatch,
	RuleSerialMatch,
}

// InstrumentSerialValidator ties the instrument named on the scanned
// calibration certificate to the instrument declared in the report. For
// grounding and megger tests that is the calibration block's instrument
// serial; for thermography it is the camera serial, plus the hygrometer
// when its scan is supplied. Serials are compared after stripping spaces
// and hyphens and folding case, so formatting drift across documents
// does not raise false mismatches.
type InstrumentSerialValidator struct {
	base
	certOCR *domain.CertificateOCR
	hygOCR  *domain.HygrometerOCR
}

// NewInstrumentSerialValidator builds an instrument-serial validator
// bound to the OCR extractions. Either extraction may be nil; the
// corresponding check is skipped. A non-nil config wins over the
// profile.
func NewInstrumentSerialValidator(config *standards.ValidationConfig, profile domain.StandardProfile, certOCR *domain.CertificateOCR, hygOCR *domain.HygrometerOCR) *InstrumentSerialValidator {
	return &InstrumentSerialValidator{
		base:    newBase(standards.TestTypeInstrumentSerial, config, profile),
		certOCR: certOCR,
		hygOCR:  hygOCR,
	}
}

func (v *InstrumentSerialValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if v.certOCR != nil {
		declared, fieldPath := declaredInstrumentSerial(report)
		v.compare(rec, "certificate", v.certOCR.Serial, v.certOCR.Confidence, declared, fieldPath)
	}
	if v.hygOCR != nil && report.Thermography != nil {
		v.compare(rec, "hygrometer", v.hygOCR.Serial, v.hygOCR.Confidence, report.Thermography.HygrometerSerial, "thermography.hygrometerSerial")
	}

	return rec.result(report.Equipment.Tag, serialRules)
}

// declaredInstrumentSerial picks the serial the certificate should name
// for this discipline.
func declaredInstrumentSerial(report *domain.Report) (serial, fieldPath string) {
	if report.Kind() == domain.TestTypeThermography {
		return report.Thermography.CameraSerial, "thermography.cameraSerial"
	}
	if report.Calibration != nil {
		return report.Calibration.InstrumentSerial, "calibration.instrumentSerial"
	}
	return "", "calibration.instrumentSerial"
}

func (v *InstrumentSerialValidator) compare(rec *recorder, source, extracted string, confidence float64, declared, fieldPath string) {
	minConfidence := v.config.Complementary.OCRConfidenceThreshold
	if confidence < minConfidence {
		rec.add(domain.Finding{
			RuleID:         RuleSerialLowConfidence,
			Severity:       domain.SeverityMinor,
			Message:        fmt.Sprintf("%s serial read with low OCR confidence %.2f; comparison may be unreliable", source, confidence),
			FieldPath:      fieldPath,
			ExtractedValue: extracted,
			Threshold:      fmt.Sprintf("confidence ≥ %.2f", minConfidence),
		})
	}

	if normalizeSerial(extracted) != normalizeSerial(declared) {
		rec.add(domain.Finding{
			RuleID:         RuleSerialMismatch,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("%s serial %q does not match the declared serial %q", source, extracted, declared),
			FieldPath:      fieldPath,
			ExtractedValue: extracted,
			Threshold:      declared,
			Remediation:    "confirm which instrument performed the test and attach its certificate",
		})
		return
	}

	rec.add(domain.Finding{
		RuleID:         RuleSerialMatch,
		Severity:       domain.SeverityInfo,
		Message:        fmt.Sprintf("%s serial matches the declared serial %q", source, declared),
		FieldPath:      fieldPath,
		ExtractedValue: extracted,
	})
}

// normalizeSerial strips spaces and hyphens and upper-cases, tolerating
// the formatting drift seen between certificates and field reports.
func normalizeSerial(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ToUpper(s)
}
