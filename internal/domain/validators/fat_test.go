package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/validators"
)

func compliant(v bool) *bool { return &v }

func fatReport() *domain.Report {
	return &domain.Report{
		Equipment: domain.Equipment{Tag: "SWG-1"},
		TestDate:  "2024-05-10",
		FAT: &domain.FATPayload{
			Checklist: []domain.ChecklistItem{
				{Description: "insulation test", Status: "pass"},
			},
			Signatures: []domain.Signature{
				{Role: "manufacturer", Name: "A. Vendor", Signed: true},
				{Role: "client", Name: "B. Owner", Signed: true},
			},
			OverallStatus: "passed",
			WitnessName:   "C. Witness",
		},
	}
}

func TestFATValidator_CleanProtocolHasOnlyInfoFindings(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	result := v.Validate(fatReport())

	assert.True(t, result.IsValid)
	assert.Zero(t, result.CriticalCount)
	assert.Zero(t, result.MajorCount)
	assert.Zero(t, result.MinorCount)
	assert.Equal(t, len(result.Findings), result.InfoCount)
}

func TestFATValidator_EmptyChecklistIsCritical(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Checklist = nil

	result := v.Validate(report)

	f := findByRule(t, result.Findings, validators.RuleFATChecklistEmpty)
	assert.Equal(t, domain.SeverityCritical, f.Severity)
}

func TestFATValidator_ChecklistItemStates(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Checklist = []domain.ChecklistItem{
		{Description: "functional test", Status: "fail"},
		{Description: "torque check", Status: "pending"},
		{Description: "labeling", Status: "n/a"},
	}

	result := v.Validate(report)

	var itemSeverities []domain.Severity
	for _, f := range result.Findings {
		if f.RuleID == validators.RuleFATChecklistItem {
			itemSeverities = append(itemSeverities, f.Severity)
		}
	}
	require.Len(t, itemSeverities, 3)
	assert.Equal(t, domain.SeverityCritical, itemSeverities[0])
	assert.Equal(t, domain.SeverityMajor, itemSeverities[1])
	assert.Equal(t, domain.SeverityMajor, itemSeverities[2])
}

func TestFATValidator_AbsentSignatureSectionIsCritical(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Signatures = nil

	result := v.Validate(report)

	f := findByRule(t, result.Findings, validators.RuleFATSignaturesAbsent)
	assert.Equal(t, domain.SeverityCritical, f.Severity)
}

func TestFATValidator_MissingRequiredRoleIsCritical(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Signatures = []domain.Signature{
		{Role: "manufacturer", Name: "A. Vendor", Signed: true},
	}

	result := v.Validate(report)

	found := false
	for _, f := range result.Findings {
		if f.RuleID == validators.RuleFATSignatureRole && f.Severity == domain.SeverityCritical {
			assert.Contains(t, f.Message, "client")
			found = true
		}
	}
	assert.True(t, found, "missing client role should be critical")
}

func TestFATValidator_UnsignedRoleIsMajor(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Signatures[1].Signed = false

	result := v.Validate(report)

	assert.Equal(t, 1, result.MajorCount)
	assert.Zero(t, result.CriticalCount)
}

func TestFATValidator_MicrosoftRequiresCommissioningAgent(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileMicrosoft)

	// Manufacturer and client signed, but no commissioning agent.
	result := v.Validate(fatReport())

	assert.False(t, result.IsValid)
}

func TestFATValidator_SpecificationStates(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.FAT.Specifications = []domain.SpecCheck{
		{Parameter: "rated current", Declared: "4000 A", Measured: "4000 A", IsCompliant: compliant(true)},
		{Parameter: "short-circuit rating", Declared: "65 kA", Measured: "50 kA", IsCompliant: compliant(false)},
		{Parameter: "enclosure rating", Declared: "IP54", Measured: ""},
	}

	result := v.Validate(report)

	var severities []domain.Severity
	for _, f := range result.Findings {
		if f.RuleID == validators.RuleFATSpecCompliance {
			severities = append(severities, f.Severity)
		}
	}
	require.Len(t, severities, 3)
	assert.Equal(t, domain.SeverityInfo, severities[0])
	assert.Equal(t, domain.SeverityCritical, severities[1])
	assert.Equal(t, domain.SeverityMinor, severities[2])
}

func TestFATValidator_ProtocolCompleteness(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	report := fatReport()
	report.TestDate = ""
	report.FAT.WitnessName = ""

	result := v.Validate(report)

	dateFinding := findByRule(t, result.Findings, validators.RuleFATMissingTestDate)
	assert.Equal(t, domain.SeverityMajor, dateFinding.Severity)
	witnessFinding := findByRule(t, result.Findings, validators.RuleFATMissingWitness)
	assert.Equal(t, domain.SeverityMinor, witnessFinding.Severity)
}

func TestFATValidator_OverallStatus(t *testing.T) {
	v := validators.NewFATValidator(nil, domain.ProfileNETA)

	failed := fatReport()
	failed.FAT.OverallStatus = "failed"
	result := v.Validate(failed)
	f := findByRule(t, result.Findings, validators.RuleFATOverallStatus)
	assert.Equal(t, domain.SeverityCritical, f.Severity)

	unclear := fatReport()
	unclear.FAT.OverallStatus = "see notes"
	result = v.Validate(unclear)
	f = findByRule(t, result.Findings, validators.RuleFATOverallStatus)
	assert.Equal(t, domain.SeverityMajor, f.Severity)
}
