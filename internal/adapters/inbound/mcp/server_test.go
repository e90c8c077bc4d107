package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/voltcheck/voltcheck/internal/adapters/inbound/mcp"
)

func TestNewVoltcheckMCPServer(t *testing.T) {
	s := mcpadapter.NewVoltcheckMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewVoltcheckMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"voltcheck_validate",
		"voltcheck_validate_fat",
		"voltcheck_verdict",
		"voltcheck_get_profile",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
