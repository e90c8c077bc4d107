package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltcheck/voltcheck/internal/domain"
)

func TestNewValidationResult_DerivesCounts(t *testing.T) {
	findings := []domain.Finding{
		{RuleID: "A-001", Severity: domain.SeverityInfo},
		{RuleID: "A-002", Severity: domain.SeverityMinor},
		{RuleID: "A-003", Severity: domain.SeverityMajor},
		{RuleID: "A-004", Severity: domain.SeverityMajor},
		{RuleID: "A-005", Severity: domain.SeverityCritical},
	}

	r := domain.NewValidationResult("grounding", "TX-01", findings, []string{"A-001"})

	assert.Equal(t, 1, r.CriticalCount)
	assert.Equal(t, 2, r.MajorCount)
	assert.Equal(t, 1, r.MinorCount)
	assert.Equal(t, 1, r.InfoCount)
	assert.False(t, r.IsValid)
}

func TestNewValidationResult_ValidWithoutCriticals(t *testing.T) {
	findings := []domain.Finding{
		{RuleID: "A-001", Severity: domain.SeverityMajor},
	}

	r := domain.NewValidationResult("grounding", "TX-01", findings, nil)

	assert.True(t, r.IsValid)
}

func TestValidationResult_MergePreservesOrderWithoutDedup(t *testing.T) {
	first := domain.NewValidationResult("calibration", "TX-01", []domain.Finding{
		{RuleID: "CAL-003", Severity: domain.SeverityCritical, Message: "first"},
	}, []string{"CAL-003"})
	second := domain.NewValidationResult("complementary", "TX-01", []domain.Finding{
		{RuleID: "COMP-001", Severity: domain.SeverityCritical, Message: "second"},
	}, []string{"COMP-001"})

	merged := &domain.ValidationResult{TestType: "thermography", IsValid: true}
	merged.Merge(first)
	merged.Merge(second)

	// Two validators flagging the same underlying problem both keep
	// their findings.
	assert.Len(t, merged.Findings, 2)
	assert.Equal(t, "first", merged.Findings[0].Message)
	assert.Equal(t, "second", merged.Findings[1].Message)
	assert.Equal(t, 2, merged.CriticalCount)
	assert.False(t, merged.IsValid)
	assert.Equal(t, []string{"CAL-003", "COMP-001"}, merged.RulesEvaluated)
}

func TestValidationResult_MergeTagFromFirstPopulated(t *testing.T) {
	merged := &domain.ValidationResult{TestType: "megger"}
	merged.Merge(&domain.ValidationResult{EquipmentTag: "MTR-7"})
	merged.Merge(&domain.ValidationResult{EquipmentTag: "OTHER"})

	assert.Equal(t, "MTR-7", merged.EquipmentTag)
}

func TestValidationResult_WorstSeverity(t *testing.T) {
	r := domain.NewValidationResult("fat", "", []domain.Finding{
		{Severity: domain.SeverityMinor},
		{Severity: domain.SeverityMajor},
	}, nil)
	assert.Equal(t, domain.SeverityMajor, r.WorstSeverity())

	empty := domain.NewValidationResult("fat", "", nil, nil)
	assert.Equal(t, domain.SeverityInfo, empty.WorstSeverity())
}
