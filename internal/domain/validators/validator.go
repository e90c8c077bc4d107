// Package validators implements the per-discipline and cross-cutting
// rule sets. Every validator is a pure function of its inputs: rule
// failures become findings, never errors, and one validator's inability
// to assess a condition never stops the others.
package validators

import (
	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// Validator is the contract every rule set implements: a stable test
// type identity and a validate operation producing an immutable result.
type Validator interface {
	TestType() string
	Validate(report *domain.Report) *domain.ValidationResult
}

// base carries the pieces shared by all validators: the test type
// identity and the resolved threshold configuration.
type base struct {
	testType string
	config   standards.ValidationConfig
}

// newBase resolves the configuration for a validator. An explicit
// config wins; otherwise the profile's cached config is used.
func newBase(testType string, config *standards.ValidationConfig, profile domain.StandardProfile) base {
	if config != nil {
		return base{testType: testType, config: *config}
	}
	return base{testType: testType, config: standards.CachedConfig(profile)}
}

func (b base) TestType() string { return b.testType }

// recorder accumulates findings during one validate pass. Findings
// added without a standard reference get the config's reference for the
// validator's test type, so traceability holds without per-rule lookups.
type recorder struct {
	base
	findings []domain.Finding
}

func (b base) newRecorder() *recorder {
	return &recorder{base: b}
}

func (r *recorder) add(f domain.Finding) {
	if f.StandardRef == (domain.StandardReference{}) {
		f.StandardRef = r.config.ReferenceFor(r.testType)
	}
	r.findings = append(r.findings, f)
}

// result wraps the accumulated findings into a ValidationResult whose
// constructor derives the severity counts.
func (r *recorder) result(equipmentTag string, rulesEvaluated []string) *domain.ValidationResult {
	return domain.NewValidationResult(r.testType, equipmentTag, r.findings, rulesEvaluated)
}
