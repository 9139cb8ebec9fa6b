// Package app wires configuration, logging, the capability registry and its
// owning modules into one application instance.
package app

import (
	"fmt"
	"os"

	"capex/internal/capability"
	"capex/internal/config"
	"capex/internal/modules"
	"capex/pkg/logging"
)

// Application is the main application structure that bootstraps capex
type Application struct {
	config       *Config
	registry     *capability.Registry
	installation *modules.Installation
}

// NewApplication loads configuration, builds a registry and installs the
// configured modules into it.
func NewApplication(cfg *Config) (*Application, error) {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}

	// Configure logging based on debug flag until the configured level is known
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, out)

	capexCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load capex configuration")
		return nil, fmt.Errorf("failed to load capex configuration: %w", err)
	}
	cfg.CapexConfig = &capexCfg

	if !cfg.Debug {
		level, err := logging.ParseLevel(capexCfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid logLevel: %w", err)
		}
		logging.InitForCLI(level, out)
	}

	overwrite, err := capexCfg.OverwriteKinds()
	if err != nil {
		return nil, err
	}
	reg := capability.New(capability.WithOverwrite(overwrite...))

	inst, err := modules.Install(reg, capexCfg.Modules)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to install modules")
		return nil, fmt.Errorf("failed to install modules: %w", err)
	}
	logging.Debug("Bootstrap", "registry ready, %d kinds allow overwrite", len(overwrite))

	return &Application{
		config:       cfg,
		registry:     reg,
		installation: inst,
	}, nil
}

// Registry returns the application's registry.
func (a *Application) Registry() *capability.Registry {
	return a.registry
}

// Installation returns the installed modules.
func (a *Application) Installation() *modules.Installation {
	return a.installation
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Publish makes the application's registry the process-wide default. It
// reports false if another registry was published first.
func (a *Application) Publish() bool {
	if !capability.InitDefault(a.registry) {
		logging.Warn("Bootstrap", "process registry already initialized, keeping the existing one")
		return false
	}
	return true
}
