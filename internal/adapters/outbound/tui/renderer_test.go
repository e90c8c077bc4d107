package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltcheck/voltcheck/internal/adapters/outbound/history"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/tui"
	"github.com/voltcheck/voltcheck/internal/application"
	"github.com/voltcheck/voltcheck/internal/domain"
)

func assessmentWith(findings []domain.Finding, verdict string, score float64) *application.Assessment {
	return &application.Assessment{
		Result:          domain.NewValidationResult("grounding", "GRD-01", findings, nil),
		ComplianceScore: score,
		Confidence:      0.9,
		Verdict:         verdict,
		Profile:         domain.ProfileNETA,
	}
}

func TestHumanizePath(t *testing.T) {
	assert.Equal(t, "megger › circuits[0] › ir one min", tui.HumanizePath("megger.circuits[0].irOneMin"))
	assert.Equal(t, "calibration › expiration date", tui.HumanizePath("calibration.expirationDate"))
	assert.Equal(t, "equipment › tag", tui.HumanizePath("equipment.tag"))
	assert.Equal(t, "", tui.HumanizePath(""))
}

func TestRenderAssessment_ShowsVerdictAndScore(t *testing.T) {
	findings := []domain.Finding{
		{
			RuleID:    "GRND-002",
			Severity:  domain.SeverityCritical,
			Message:   "measurement P1 exceeds the ceiling",
			FieldPath: "grounding.measurements[0].resistance",
			Threshold: "5 Ω",
		},
	}

	out := tui.RenderAssessment(assessmentWith(findings, application.VerdictRejected, 75.0))

	assert.Contains(t, out, "voltcheck")
	assert.Contains(t, out, "REJECTED")
	assert.Contains(t, out, "75.00 / 100")
	assert.Contains(t, out, "GRND-002")
	assert.Contains(t, out, "exceeds the ceiling")
	assert.Contains(t, out, "threshold 5 Ω")
}

func TestRenderAssessment_CleanReportSummarizesInfo(t *testing.T) {
	findings := []domain.Finding{
		{RuleID: "GRND-001", Severity: domain.SeverityInfo, Message: "within ceiling"},
	}

	out := tui.RenderAssessment(assessmentWith(findings, application.VerdictApproved, 100.0))

	assert.Contains(t, out, "No deviations found.")
	assert.NotContains(t, out, "within ceiling")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No verdict history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	entries := []history.Entry{
		{
			Timestamp:       "2024-06-15T10:00:00Z",
			CommitHash:      "abcdef1234567890",
			EquipmentTag:    "GRD-01",
			ComplianceScore: 75.0,
			Verdict:         "REJECTED",
		},
	}

	out := tui.RenderHistory(entries)

	assert.Contains(t, out, "2024-06-15")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "GRD-01")
	assert.Contains(t, out, "REJECTED")
}
