package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newFATCmd() *cobra.Command {
	var (
		profileFlag string
		jsonOutput  bool
		sarifPath   string
		ciMode      bool
		minScore    float64
	)

	cmd := &cobra.Command{
		Use:   "fat <protocol.json>",
		Short: "Validate a factory acceptance test protocol",
		Long:  "Validate a FAT protocol: checklist completion, required sign-offs per profile, and specification compliance. FAT protocols are always submitted explicitly, never auto-detected.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			assessment, err := runAssessment(reportPath, profileFlag, "", "", minScore, true)
			if err != nil {
				return err
			}

			return emit(cmd, assessment, reportPath, jsonOutput, sarifPath, ciMode, minScore)
		},
	}

	cmd.Flags().StringVar(&profileFlag, "profile", "", "Standard profile: neta or microsoft (default from .voltcheck.yaml, else neta)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the assessment as JSON")
	cmd.Flags().StringVar(&sarifPath, "sarif", "", "Write a SARIF report to the given path")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 on rejection or a score below --min-score")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum compliance score for CI mode (default from .voltcheck.yaml, else 95)")

	return cmd
}
