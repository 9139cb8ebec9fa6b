package cmd

import (
	"capex/internal/cli"

	"github.com/spf13/cobra"
)

var kindsOutputFormat string

// kindsCmd lists the capability kinds compiled into capex
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List all capability kinds",
	Long: `List every capability kind with its lookup policy and the names of its
typed registration and lookup methods.

Policies:
  plain      - lookups return the slot as is
  triggered  - an empty slot initializes the owning module once
  required   - like triggered, but an empty slot is an error
  fallback   - like triggered, but an empty slot yields an inert stand-in`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(kindsOutputFormat)
	if err != nil {
		return err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), format).PrintKinds(cli.DescribeKinds())
}

func init() {
	rootCmd.AddCommand(kindsCmd)

	kindsCmd.Flags().StringVarP(&kindsOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
}
