package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/voltcheck/voltcheck/internal/adapters/outbound/config"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/extraction"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/gitinfo"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/history"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/report"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/tui"
	"github.com/voltcheck/voltcheck/internal/application"
	"github.com/voltcheck/voltcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		profileFlag string
		certPath    string
		hygPath     string
		jsonOutput  bool
		sarifPath   string
		ciMode      bool
		minScore    float64
	)

	cmd := &cobra.Command{
		Use:   "validate <report.json>",
		Short: "Validate a field test report",
		Long:  "Validate a grounding, insulation (megger), or thermography report against the selected standard profile. Optional OCR scans of the calibration certificate and hygrometer enable the evidence reconciliation rules.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			assessment, err := runAssessment(reportPath, profileFlag, certPath, hygPath, minScore, false)
			if err != nil {
				return err
			}

			return emit(cmd, assessment, reportPath, jsonOutput, sarifPath, ciMode, minScore)
		},
	}

	cmd.Flags().StringVar(&profileFlag, "profile", "", "Standard profile: neta or microsoft (default from .voltcheck.yaml, else neta)")
	cmd.Flags().StringVar(&certPath, "certificate-ocr", "", "Path to the calibration certificate OCR JSON")
	cmd.Flags().StringVar(&hygPath, "hygrometer-ocr", "", "Path to the hygrometer OCR JSON")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the assessment as JSON")
	cmd.Flags().StringVar(&sarifPath, "sarif", "", "Write a SARIF report to the given path")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 on rejection or a score below --min-score")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum compliance score for CI mode (default from .voltcheck.yaml, else 95)")

	return cmd
}

// runAssessment is the shared pipeline behind validate and fat: load
// configuration and evidence, run the validators, score, and record the
// verdict in the evidence directory's history.
func runAssessment(reportPath, profileFlag, certPath, hygPath string, minScore float64, fat bool) (*application.Assessment, error) {
	dir := filepath.Dir(reportPath)
	logger := newLogger()

	runCfg, err := config.New().Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading run config: %w", err)
	}
	resolved, profile, err := config.Resolve(runCfg, profileFlag)
	if err != nil {
		return nil, err
	}

	loader := extraction.New()
	testReport, err := loader.LoadReport(reportPath)
	if err != nil {
		return nil, err
	}
	certOCR, err := loader.LoadCertificateOCR(certPath)
	if err != nil {
		return nil, err
	}
	hygOCR, err := loader.LoadHygrometerOCR(hygPath)
	if err != nil {
		return nil, err
	}

	svc := application.NewValidationService(&resolved, profile, logger)
	var result *domain.ValidationResult
	if fat {
		result = svc.ValidateFAT(testReport)
	} else {
		result = svc.ValidateReport(testReport, certOCR, hygOCR)
	}

	verdicts := application.NewVerdictService()
	if minScore > 0 {
		verdicts.WithMinScore(minScore)
	} else if runCfg.MinScore > 0 {
		verdicts.WithMinScore(runCfg.MinScore)
	}
	assessment := verdicts.Assess(testReport, result, profile)

	// Provenance and history are best-effort: their absence never
	// blocks a verdict.
	var hash string
	if gi := gitinfo.New(); gi.IsGitRepo(dir) {
		hash, _ = gi.CommitHash(dir)
	}
	entry := history.Entry{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		RunID:           uuid.NewString(),
		CommitHash:      hash,
		EquipmentTag:    assessment.Result.EquipmentTag,
		TestType:        assessment.Result.TestType,
		Profile:         profile.String(),
		ComplianceScore: assessment.ComplianceScore,
		Verdict:         assessment.Verdict,
		CriticalCount:   assessment.Result.CriticalCount,
	}
	if err := history.New().Save(dir, entry); err != nil {
		logger.Warn("could not record verdict history", "error", err)
	}

	return assessment, nil
}

func emit(cmd *cobra.Command, assessment *application.Assessment, reportPath string, jsonOutput bool, sarifPath string, ciMode bool, minScore float64) error {
	if sarifPath != "" {
		dir := filepath.Dir(reportPath)
		var hash string
		if gi := gitinfo.New(); gi.IsGitRepo(dir) {
			hash, _ = gi.CommitHash(dir)
		}
		if err := report.New().WriteFile(assessment, reportPath, hash, sarifPath); err != nil {
			return fmt.Errorf("writing sarif: %w", err)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderAssessment(assessment))
	}

	if ciMode {
		floor := minScore
		if floor == 0 {
			floor = application.DefaultMinScore
		}
		if assessment.Verdict == application.VerdictRejected {
			return fmt.Errorf("verdict %s", assessment.Verdict)
		}
		if assessment.ComplianceScore < floor {
			return fmt.Errorf("compliance score %.2f is below minimum %.2f", assessment.ComplianceScore, floor)
		}
	}
	return nil
}
