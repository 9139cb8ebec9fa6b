package modules

import (
	"fmt"

	"capex/internal/capability"
	"capex/internal/config"
	"capex/pkg/logging"
)

// Installation is the set of modules installed into one registry.
type Installation struct {
	registry *capability.Registry
	modules  map[capability.Kind]*Module
}

// Install creates a module for every configured kind and wires it into reg.
// Kinds without a configuration entry have no owning module.
func Install(reg *capability.Registry, cfgs []config.ModuleConfig) (*Installation, error) {
	inst := &Installation{registry: reg, modules: make(map[capability.Kind]*Module, len(cfgs))}

	var eager, lazy, absent int
	for _, c := range cfgs {
		kind, err := capability.ParseKind(c.Kind)
		if err != nil {
			return nil, err
		}
		if inst.modules[kind] != nil {
			return nil, fmt.Errorf("duplicate module for %s", kind)
		}

		m := newModule(reg, kind, c.Mode)
		switch c.Mode {
		case config.ModuleModeEager:
			if err := m.register(); err != nil {
				return nil, err
			}
			eager++
		case config.ModuleModeLazy:
			if !kind.Policy().Triggers() {
				return nil, fmt.Errorf("module %s: lazy mode: %w", m.Name(), capability.ErrNoTrigger)
			}
			if err := reg.Bind(kind, m); err != nil {
				return nil, fmt.Errorf("module %s: %w", m.Name(), err)
			}
			lazy++
		case config.ModuleModeAbsent:
			if kind.Policy().Triggers() {
				if err := reg.Bind(kind, m); err != nil {
					return nil, fmt.Errorf("module %s: %w", m.Name(), err)
				}
			}
			absent++
		default:
			return nil, fmt.Errorf("module %s: unknown mode %q", m.Name(), c.Mode)
		}
		inst.modules[kind] = m
	}

	logging.Info(subsystem, "installed %d modules (%d eager, %d lazy, %d absent)", eager+lazy+absent, eager, lazy, absent)
	return inst, nil
}

// Registry returns the registry the modules were installed into.
func (i *Installation) Registry() *capability.Registry {
	return i.registry
}

// Module returns the owning module of k, if one is installed.
func (i *Installation) Module(k capability.Kind) (*Module, bool) {
	m := i.modules[k]
	return m, m != nil
}

// HookCalls returns how often the initializer of k ran.
func (i *Installation) HookCalls(k capability.Kind) int {
	m, ok := i.Module(k)
	if !ok {
		return 0
	}
	return m.HookCalls()
}

// ModuleStatus combines a slot's registry status with its owning module.
type ModuleStatus struct {
	capability.SlotStatus `yaml:",inline"`

	Mode      config.ModuleMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	HookCalls int               `json:"hookCalls" yaml:"hookCalls"`
}

// Report returns the status of every kind without firing any trigger.
func (i *Installation) Report() []ModuleStatus {
	out := make([]ModuleStatus, 0, len(capability.Kinds()))
	for _, k := range capability.Kinds() {
		out = append(out, i.status(k))
	}
	return out
}

func (i *Installation) status(k capability.Kind) ModuleStatus {
	ms := ModuleStatus{SlotStatus: i.registry.Status(k)}
	if m, ok := i.Module(k); ok {
		ms.Mode = m.Mode()
		ms.HookCalls = m.HookCalls()
	}
	return ms
}
