// Package cli wires the cobra command tree: validation runs, profile
// inspection, verdict history, and the MCP server entry point.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "voltcheck",
		Short:         "Compliance validation for electrical test reports",
		Long:          "Voltcheck validates AI-extracted electrical test reports (grounding, insulation, thermography, FAT) against NETA, IEEE 43, and Microsoft CxPOR thresholds, producing audit-traceable findings and an accept/review/reject verdict.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFATCmd())
	cmd.AddCommand(newProfilesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger builds the process logger. Level comes from
// VOLTCHECK_LOG_LEVEL; the default hides everything below warnings so
// terminal output stays clean for the renderer.
func newLogger() hclog.Logger {
	level := os.Getenv("VOLTCHECK_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "voltcheck",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}
