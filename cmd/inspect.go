package cmd

import (
	"context"

	"capex/internal/capability"
	"capex/internal/cli"
	"capex/internal/modules"

	"github.com/spf13/cobra"
)

var (
	inspectOutputFormat string
	inspectConcurrency  int
	inspectStatusOnly   bool
)

// inspectCmd installs modules and races lookups against the registry
var inspectCmd = &cobra.Command{
	Use:   "inspect [kind...]",
	Short: "Look up capabilities and report what they resolve to",
	Long: `Build a registry from configuration, install the owning modules and look
up each given kind (all kinds by default) from several goroutines at once.

For every kind the report shows the lookup outcome (present, empty,
unavailable or fallback), the implementation type, how often the owning
module's initializer ran and whether all lookups saw the same instance.

With --status the registry is reported without performing any lookup.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(inspectOutputFormat)
	if err != nil {
		return err
	}

	kinds := make([]capability.Kind, 0, len(args))
	for _, arg := range args {
		k, err := capability.ParseKind(arg)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	application, err := newApplication()
	if err != nil {
		return err
	}
	printer := cli.NewPrinter(cmd.OutOrStdout(), format)

	if inspectStatusOnly {
		return printer.PrintStatus(application.Installation().Report())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := modules.Probe(ctx, application.Installation(), kinds, inspectConcurrency)
	if err != nil {
		return err
	}
	return printer.PrintProbe(results)
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	inspectCmd.Flags().IntVarP(&inspectConcurrency, "concurrency", "c", 8, "Number of concurrent lookups per kind")
	inspectCmd.Flags().BoolVar(&inspectStatusOnly, "status", false, "Report slot status without looking anything up")
}
