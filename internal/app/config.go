package app

import (
	"io"
	"os"

	"capex/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath is an explicit configuration file layered over the defaults.
	ConfigPath string

	// Debug forces debug logging regardless of the configured level.
	Debug bool

	// LogOutput receives log records. Defaults to os.Stderr so that stdout
	// stays free for command output and the MCP stdio transport.
	LogOutput io.Writer

	// Loaded configuration, set by NewApplication
	CapexConfig *config.CapexConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
		LogOutput:  os.Stderr,
	}
}
