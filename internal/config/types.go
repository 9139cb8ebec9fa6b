package config

import (
	"errors"
	"fmt"
	"strings"

	"capex/internal/capability"
)

// CapexConfig is the top-level configuration structure for capex.
type CapexConfig struct {
	LogLevel string         `yaml:"logLevel,omitempty" toml:"logLevel,omitempty"` // debug, info, warn or error
	Registry RegistryConfig `yaml:"registry" toml:"registry"`
	Modules  []ModuleConfig `yaml:"modules" toml:"modules"`
}

// RegistryConfig controls registry construction.
type RegistryConfig struct {
	// AllowOverwrite lists kinds whose slot may be registered more than once.
	// Every other kind rejects a second registration.
	AllowOverwrite []string `yaml:"allowOverwrite,omitempty" toml:"allowOverwrite,omitempty"`
}

// ModuleMode describes how an owning module provides its capability.
type ModuleMode string

const (
	// ModuleModeEager registers during module installation.
	ModuleModeEager ModuleMode = "eager"
	// ModuleModeLazy registers when a lookup fires the kind's trigger.
	ModuleModeLazy ModuleMode = "lazy"
	// ModuleModeAbsent has nothing to offer in this build.
	ModuleModeAbsent ModuleMode = "absent"
)

// ModuleConfig defines the owning module of one capability kind.
type ModuleConfig struct {
	Kind string     `yaml:"kind" toml:"kind"` // capability kind name, e.g. "network-socket"
	Mode ModuleMode `yaml:"mode" toml:"mode"`
}

// Validate checks kind names, modes and duplicate module entries.
func (c CapexConfig) Validate() error {
	var errs []error

	if _, err := c.OverwriteKinds(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[capability.Kind]bool)
	for i, m := range c.Modules {
		k, err := capability.ParseKind(m.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("modules[%d]: %w", i, err))
			continue
		}
		if seen[k] {
			errs = append(errs, fmt.Errorf("modules[%d]: duplicate module for %s", i, k))
		}
		seen[k] = true

		switch m.Mode {
		case ModuleModeEager, ModuleModeLazy, ModuleModeAbsent:
		default:
			errs = append(errs, fmt.Errorf("modules[%d]: unknown mode %q for %s", i, m.Mode, k))
		}
	}

	return errors.Join(errs...)
}

// OverwriteKinds resolves Registry.AllowOverwrite to capability kinds.
func (c CapexConfig) OverwriteKinds() ([]capability.Kind, error) {
	kinds := make([]capability.Kind, 0, len(c.Registry.AllowOverwrite))
	for _, name := range c.Registry.AllowOverwrite {
		k, err := capability.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("registry.allowOverwrite: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Module returns the module configuration for the named kind.
func (c CapexConfig) Module(kind string) (ModuleConfig, bool) {
	key := normalizeKind(kind)
	for _, m := range c.Modules {
		if normalizeKind(m.Kind) == key {
			return m, true
		}
	}
	return ModuleConfig{}, false
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
