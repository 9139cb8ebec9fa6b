package cmd

import (
	"os"

	"capex/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capex",
	Short: "Inspect the capability exchange registry",
	Long: `capex builds the capability registry through which runtime modules
hand privileged operations to each other, installs the configured owning
modules, and reports what every capability lookup resolves to.

Configuration is read from ~/.config/capex/config.yaml, ./.capex/config.yaml
and the file given with --config, in that order.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "capex version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(configPath, debug))
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file layered over user and project configuration")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
