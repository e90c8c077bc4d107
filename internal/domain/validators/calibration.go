package validators

import (
	"fmt"
	"time"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Calibration rule identifiers.
const (
	RuleCalMissingCertificate = "CAL-001"
	RuleCalUnparseableExpiry  = "CAL-002"
	RuleCalExpiredBeforeTest  = "CAL-003"
	RuleCalExpiredOnTestDate  = "CAL-004"
	RuleCalNearExpiry         = "CAL-005"
	RuleCalValid              = "CAL-006"
)

var calibrationRules = []string{
	RuleCalMissingCertificate,
	RuleCalUnparseableExpiry,
	RuleCalExpiredBeforeTest,
	RuleCalExpiredOnTestDate,
	RuleCalNearExpiry,
	RuleCalValid,
}

const dateLayout = "2006-01-02"

// CalibrationValidator checks that the test instrument carried a valid
// calibration certificate on the day the test was performed. It runs on
// every report regardless of discipline.
type CalibrationValidator struct {
	base
	now func() time.Time
}

// NewCalibrationValidator builds a calibration validator. A non-nil
// config wins over the profile.
func NewCalibrationValidator(config *standards.ValidationConfig, profile domain.StandardProfile) *CalibrationValidator {
	return &CalibrationValidator{
		base: newBase(standards.TestTypeCalibration, config, profile),
		now:  time.Now,
	}
}

// WithClock substitutes the wall clock used when the report carries no
// test date. Returns the validator for chaining.
func (v *CalibrationValidator) WithClock(now func() time.Time) *CalibrationValidator {
	v.now = now
	return v
}

func (v *CalibrationValidator) Validate(report *domain.Report) *domain.ValidationResult {
	rec := v.newRecorder()

	if report.Calibration == nil {
		rec.add(domain.Finding{
			RuleID:    RuleCalMissingCertificate,
			Severity:  domain.SeverityMajor,
			Message:   "no calibration certificate attached to the report",
			FieldPath: "calibration",
		})
		return rec.result(report.Equipment.Tag, calibrationRules)
	}

	cert := report.Calibration
	expiry, err := time.Parse(dateLayout, cert.ExpirationDate)
	if err != nil {
		rec.add(domain.Finding{
			RuleID:         RuleCalUnparseableExpiry,
			Severity:       domain.SeverityMinor,
			Message:        fmt.Sprintf("calibration expiration date %q is not a valid date", cert.ExpirationDate),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: cert.ExpirationDate,
		})
		return rec.result(report.Equipment.Tag, calibrationRules)
	}

	reference, usedFallback := v.referenceDate(report)
	days := int(expiry.Sub(reference).Hours() / 24)
	warn := v.config.Calibration.WarnWindowDays

	// Whenever the clock stood in for a missing test date, every
	// finding says so: the assessment depends on when it was run.
	suffix := ""
	if usedFallback {
		suffix = " (assessed against today; report carries no test date)"
	}

	switch {
	case days < 0:
		rec.add(domain.Finding{
			RuleID:         RuleCalExpiredBeforeTest,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("calibration for %s expired %d days BEFORE the test date%s", cert.InstrumentModel, -days, suffix),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: cert.ExpirationDate,
			Threshold:      fmt.Sprintf("valid through %s", reference.Format(dateLayout)),
			Remediation:    "repeat the test with a currently calibrated instrument",
		})
	case days == 0:
		rec.add(domain.Finding{
			RuleID:         RuleCalExpiredOnTestDate,
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("calibration for %s expired on the test date%s", cert.InstrumentModel, suffix),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: cert.ExpirationDate,
			Threshold:      fmt.Sprintf("valid through %s", reference.Format(dateLayout)),
			Remediation:    "repeat the test with a currently calibrated instrument",
		})
	case days <= warn:
		rec.add(domain.Finding{
			RuleID:         RuleCalNearExpiry,
			Severity:       domain.SeverityMinor,
			Message:        fmt.Sprintf("calibration for %s expires in %d days%s", cert.InstrumentModel, days, suffix),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: cert.ExpirationDate,
			Threshold:      fmt.Sprintf("warn within %d days of expiry", warn),
		})
	default:
		rec.add(domain.Finding{
			RuleID:         RuleCalValid,
			Severity:       domain.SeverityInfo,
			Message:        fmt.Sprintf("calibration for %s valid through %s%s", cert.InstrumentModel, cert.ExpirationDate, suffix),
			FieldPath:      "calibration.expirationDate",
			ExtractedValue: cert.ExpirationDate,
		})
	}

	return rec.result(report.Equipment.Tag, calibrationRules)
}

// referenceDate picks the day the certificate is judged against: the
// report's test date when parseable, then the thermography inspection
// date, and finally today as a flagged fallback.
func (v *CalibrationValidator) referenceDate(report *domain.Report) (time.Time, bool) {
	if report.TestDate != "" {
		if d, err := time.Parse(dateLayout, report.TestDate); err == nil {
			return d, false
		}
	}
	if report.Thermography != nil && report.Thermography.InspectionDate != "" {
		if d, err := time.Parse(dateLayout, report.Thermography.InspectionDate); err == nil {
			return d, false
		}
	}
	return v.now().Truncate(24 * time.Hour), true
}
