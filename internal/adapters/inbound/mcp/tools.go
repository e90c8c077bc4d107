package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/voltcheck/voltcheck/internal/adapters/outbound/config"
	"github.com/voltcheck/voltcheck/internal/adapters/outbound/extraction"
	"github.com/voltcheck/voltcheck/internal/application"
	"github.com/voltcheck/voltcheck/internal/domain"
	"github.com/voltcheck/voltcheck/internal/domain/standards"
)

// registerTools registers all Voltcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, evidenceDir string) {
	// 1. voltcheck_validate
	s.AddTool(
		mcplib.NewTool("voltcheck_validate",
			mcplib.WithDescription("Validate a field test report (grounding, megger, thermography) and return the full assessment as JSON"),
			mcplib.WithString("report",
				mcplib.Required(),
				mcplib.Description("Path to the report JSON, relative to the evidence directory"),
			),
			mcplib.WithString("certificate", mcplib.Description("Path to the calibration certificate OCR JSON")),
			mcplib.WithString("hygrometer", mcplib.Description("Path to the hygrometer OCR JSON")),
			mcplib.WithString("profile", mcplib.Description("Standard profile: neta or microsoft")),
		),
		handleValidate(evidenceDir, false),
	)

	// 2. voltcheck_validate_fat
	s.AddTool(
		mcplib.NewTool("voltcheck_validate_fat",
			mcplib.WithDescription("Validate a factory acceptance test protocol and return the full assessment as JSON"),
			mcplib.WithString("report",
				mcplib.Required(),
				mcplib.Description("Path to the FAT protocol JSON, relative to the evidence directory"),
			),
			mcplib.WithString("profile", mcplib.Description("Standard profile: neta or microsoft")),
		),
		handleValidate(evidenceDir, true),
	)

	// 3. voltcheck_verdict
	s.AddTool(
		mcplib.NewTool("voltcheck_verdict",
			mcplib.WithDescription("Validate a report and return only the compliance score, confidence, and verdict"),
			mcplib.WithString("report",
				mcplib.Required(),
				mcplib.Description("Path to the report JSON, relative to the evidence directory"),
			),
			mcplib.WithString("profile", mcplib.Description("Standard profile: neta or microsoft")),
		),
		handleVerdict(evidenceDir),
	)

	// 4. voltcheck_get_profile
	s.AddTool(
		mcplib.NewTool("voltcheck_get_profile",
			mcplib.WithDescription("Return the full threshold configuration of a standard profile as JSON"),
			mcplib.WithString("profile", mcplib.Description("Standard profile: neta or microsoft (default neta)")),
		),
		handleGetProfile(),
	)
}

// assess runs the shared validation pipeline for the MCP tools.
func assess(evidenceDir, reportPath, certPath, hygPath, profileName string, fat bool) (*application.Assessment, error) {
	runCfg, err := config.New().Load(evidenceDir)
	if err != nil {
		return nil, fmt.Errorf("loading run config: %w", err)
	}
	resolved, profile, err := config.Resolve(runCfg, profileName)
	if err != nil {
		return nil, err
	}

	loader := extraction.New()
	report, err := loader.LoadReport(resolve(evidenceDir, reportPath))
	if err != nil {
		return nil, err
	}
	certOCR, err := loader.LoadCertificateOCR(resolveOptional(evidenceDir, certPath))
	if err != nil {
		return nil, err
	}
	hygOCR, err := loader.LoadHygrometerOCR(resolveOptional(evidenceDir, hygPath))
	if err != nil {
		return nil, err
	}

	svc := application.NewValidationService(&resolved, profile, hclog.NewNullLogger())
	var result *domain.ValidationResult
	if fat {
		result = svc.ValidateFAT(report)
	} else {
		result = svc.ValidateReport(report, certOCR, hygOCR)
	}

	verdicts := application.NewVerdictService()
	if runCfg.MinScore > 0 {
		verdicts.WithMinScore(runCfg.MinScore)
	}
	return verdicts.Assess(report, result, profile), nil
}

func handleValidate(evidenceDir string, fat bool) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reportPath, err := request.RequireString("report")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		certPath := request.GetString("certificate", "")
		hygPath := request.GetString("hygrometer", "")
		profileName := request.GetString("profile", "")

		assessment, err := assess(evidenceDir, reportPath, certPath, hygPath, profileName, fat)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(assessment)
	}
}

func handleVerdict(evidenceDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reportPath, err := request.RequireString("report")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		profileName := request.GetString("profile", "")

		assessment, err := assess(evidenceDir, reportPath, "", "", profileName, false)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(map[string]any{
			"complianceScore": assessment.ComplianceScore,
			"confidence":      assessment.Confidence,
			"verdict":         assessment.Verdict,
			"isValid":         assessment.Result.IsValid,
		})
	}
}

func handleGetProfile() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profile, err := domain.ParseProfile(request.GetString("profile", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(standards.ConfigForProfile(profile))
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func resolveOptional(dir, path string) string {
	if path == "" {
		return ""
	}
	return resolve(dir, path)
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
