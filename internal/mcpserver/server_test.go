package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"capex/internal/capability"
	"capex/internal/config"
	"capex/internal/modules"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	inst, err := modules.Install(capability.New(), config.GetDefaultConfig().Modules)
	require.NoError(t, err)
	return New(inst, "test")
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return textContent.Text
}

func TestServer_Tools(t *testing.T) {
	s := newTestServer(t)

	var names []string
	for _, st := range s.tools() {
		names = append(names, st.Tool.Name)
	}
	assert.Equal(t, []string{"capability_kinds", "capability_status", "capability_lookup"}, names)
}

func TestHandleKinds(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleKinds(context.Background(), callTool("capability_kinds", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var kinds []map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &kinds))
	assert.Len(t, kinds, len(capability.Kinds()))
	assert.Equal(t, "GetFileDescriptorAccess", kinds[capability.KindIOFileDescriptor]["getter"])
}

func TestHandleStatus_DoesNotTrigger(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleStatus(context.Background(), callTool("capability_status", nil))
	require.NoError(t, err)

	var status []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &status))
	for _, st := range status {
		assert.Equal(t, false, st["triggered"], st["kind"])
	}
	assert.Zero(t, s.inst.HookCalls(capability.KindNetSocket))
}

func TestHandleLookup(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		wantOutcome string
	}{
		{"eager kind", "core-language", "present"},
		{"lazy kind", "network-socket", "present"},
		{"absent plain kind", "awt", "empty"},
		{"absent required kind", "nio-buffer", "unavailable"},
		{"absent fallback kind", "file-descriptor", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			result, err := s.handleLookup(context.Background(), callTool("capability_lookup", map[string]interface{}{"name": tt.kind}))
			require.NoError(t, err)
			assert.False(t, result.IsError)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
			assert.Equal(t, tt.kind, decoded["kind"])
			assert.Equal(t, tt.wantOutcome, decoded["outcome"])
		})
	}
}

func TestHandleLookup_Errors(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleLookup(context.Background(), callTool("capability_lookup", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "name parameter is required")

	result, err = s.handleLookup(context.Background(), callTool("capability_lookup", map[string]interface{}{"name": "telepathy"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown capability kind")
}
