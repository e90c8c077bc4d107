package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/voltcheck/voltcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Voltcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var evidenceDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Voltcheck MCP server (stdio)",
		Long:  "Start the Voltcheck MCP server using stdio transport. This lets AI assistants validate reports, compute verdicts, and inspect profile thresholds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if evidenceDir == "" {
				evidenceDir = "."
			}
			s := mcpadapter.NewVoltcheckMCPServer(evidenceDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&evidenceDir, "path", "", "Evidence directory (defaults to current working directory)")

	return cmd
}
