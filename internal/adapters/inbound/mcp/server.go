// Package mcp exposes the validation engine over the Model Context
// Protocol so AI assistants can validate reports and query profile
// thresholds without shelling out to the CLI.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewVoltcheckMCPServer creates an MCP server with all Voltcheck tools
// registered. The evidenceDir anchors relative report paths and holds
// the optional .voltcheck.yaml run configuration.
func NewVoltcheckMCPServer(evidenceDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"voltcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, evidenceDir)

	return s
}
