package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"capex/internal/mcpserver"

	"github.com/spf13/cobra"
)

// serveCmd exposes the registry to MCP clients over stdio
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve capability tools over MCP stdio",
	Long: `Install the configured modules into the process registry and serve it
to an MCP client over stdin and stdout.

Tools:
  capability_kinds   - list kinds and policies
  capability_status  - report every slot without triggering initialization
  capability_lookup  - look up one kind by name

Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}
	application.Publish()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(application.Installation(), rootCmd.Version)
	return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
