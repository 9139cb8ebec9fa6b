// Package mcpserver exposes the capability registry as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"capex/internal/capability"
	"capex/internal/cli"
	"capex/internal/modules"
	"capex/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// Server serves registry inspection tools for one module installation.
type Server struct {
	inst   *modules.Installation
	server *server.MCPServer
}

// New creates the MCP server and registers its tools.
func New(inst *modules.Installation, version string) *Server {
	s := &Server{inst: inst}
	s.server = server.NewMCPServer(
		"capex",
		version,
		server.WithToolCapabilities(false),
	)
	for _, st := range s.tools() {
		s.server.AddTool(st.Tool, st.Handler)
	}
	return s
}

func (s *Server) tools() []server.ServerTool {
	names := make([]string, 0, len(capability.Kinds()))
	for _, k := range capability.Kinds() {
		names = append(names, k.String())
	}

	return []server.ServerTool{
		{
			Tool: mcp.NewTool("capability_kinds",
				mcp.WithDescription("List every capability kind with its lookup policy and accessor names"),
			),
			Handler: s.handleKinds,
		},
		{
			Tool: mcp.NewTool("capability_status",
				mcp.WithDescription("Report the state of every capability slot without triggering initialization"),
			),
			Handler: s.handleStatus,
		},
		{
			Tool: mcp.NewTool("capability_lookup",
				mcp.WithDescription("Look up one capability under its policy, initializing the owning module if needed"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Capability kind name"),
					mcp.Enum(names...),
				),
			),
			Handler: s.handleLookup,
		},
	}
}

// Serve runs the server over the given streams until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "serving capability tools over stdio")
	return server.NewStdioServer(s.server).Listen(ctx, in, out)
}

func (s *Server) handleKinds(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(cli.DescribeKinds())
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.inst.Report())
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	kind, err := capability.ParseKind(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := modules.Probe(ctx, s.inst, []capability.Kind{kind}, 1)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Lookup failed: %v", err)), nil
	}
	logging.Debug(subsystem, "lookup of %s: %s", kind, results[0].Outcome)
	return jsonResult(results[0])
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
