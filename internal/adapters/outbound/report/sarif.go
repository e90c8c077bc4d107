// Package report exports assessments in machine-readable formats for
// CI pipelines and audit archives. SARIF is the interchange format:
// each rule becomes a reporting descriptor, each finding a result with
// its threshold, citation, and remediation carried as properties.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/voltcheck/voltcheck/internal/application"
	"github.com/voltcheck/voltcheck/internal/domain"
)

const toolName = "voltcheck"
const toolURI = "https://github.com/voltcheck/voltcheck"

// SARIFExporter converts assessments to SARIF 2.1.0 reports.
type SARIFExporter struct{}

func New() *SARIFExporter {
	return &SARIFExporter{}
}

// Export builds a single-run SARIF report for one assessment. The
// reportPath names the evidence document the findings point at; the
// commit hash, when present, pins the evidence revision.
func (e *SARIFExporter) Export(assessment *application.Assessment, reportPath, commitHash string) (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("creating sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	run.Properties = sarif.Properties{
		"runId":           uuid.NewString(),
		"generatedAt":     time.Now().UTC().Format(time.RFC3339),
		"profile":         assessment.Profile.String(),
		"equipmentTag":    assessment.Result.EquipmentTag,
		"testType":        assessment.Result.TestType,
		"complianceScore": assessment.ComplianceScore,
		"confidence":      assessment.Confidence,
		"verdict":         assessment.Verdict,
	}
	if commitHash != "" {
		run.Properties["commitHash"] = commitHash
	}

	seen := map[string]bool{}
	for _, f := range assessment.Result.Findings {
		if !seen[f.RuleID] {
			seen[f.RuleID] = true
			rule := run.AddRule(f.RuleID).
				WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(sarifLevel(f.Severity)))
			if f.StandardRef.Standard != "" {
				rule.WithDescription(fmt.Sprintf("%s %s", f.StandardRef.Standard, f.StandardRef.Section))
			}
		}

		result := sarif.NewRuleResult(f.RuleID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(sarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{
				sarif.NewLocation().WithPhysicalLocation(
					sarif.NewPhysicalLocation().WithArtifactLocation(
						sarif.NewSimpleArtifactLocation(reportPath),
					),
				),
			})
		result.Properties = sarif.Properties{
			"severity":  f.Severity.String(),
			"fieldPath": f.FieldPath,
		}
		if f.ExtractedValue != "" {
			result.Properties["extractedValue"] = f.ExtractedValue
		}
		if f.Threshold != "" {
			result.Properties["threshold"] = f.Threshold
		}
		if f.StandardRef.Standard != "" {
			result.Properties["standard"] = f.StandardRef.Standard
			result.Properties["section"] = f.StandardRef.Section
		}
		if f.Remediation != "" {
			result.Properties["remediation"] = f.Remediation
		}
		run.AddResult(result)
	}

	doc.AddRun(run)
	return doc, nil
}

// WriteFile exports the assessment and writes it pretty-printed to
// outPath.
func (e *SARIFExporter) WriteFile(assessment *application.Assessment, reportPath, commitHash, outPath string) error {
	doc, err := e.Export(assessment, reportPath, commitHash)
	if err != nil {
		return err
	}
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer file.Close()
	return doc.PrettyWrite(file)
}

func sarifLevel(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical, domain.SeverityMajor:
		return "error"
	case domain.SeverityMinor:
		return "warning"
	default:
		return "note"
	}
}
