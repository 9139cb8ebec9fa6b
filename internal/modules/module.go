package modules

import (
	"fmt"
	"sync/atomic"

	"capex/internal/capability"
	"capex/internal/config"
	"capex/internal/modules/fileio"
	"capex/pkg/logging"
)

const subsystem = "Modules"

// Module is the owning module of one capability kind.
type Module struct {
	kind capability.Kind
	mode config.ModuleMode
	reg  *capability.Registry

	hookCalls atomic.Int32
}

func newModule(reg *capability.Registry, kind capability.Kind, mode config.ModuleMode) *Module {
	return &Module{kind: kind, mode: mode, reg: reg}
}

// Kind returns the capability kind the module owns.
func (m *Module) Kind() capability.Kind { return m.kind }

// Mode returns the configured mode.
func (m *Module) Mode() config.ModuleMode { return m.mode }

// HookCalls returns how often the registry invoked the module's initializer.
func (m *Module) HookCalls() int { return int(m.hookCalls.Load()) }

// Name identifies the module in logs and stand-in accesses.
func (m *Module) Name() string { return m.kind.String() + "-module" }

// Access builds the implementation this module registers.
func (m *Module) Access() capability.Access {
	if m.kind == capability.KindIOFileDescriptor {
		return fileio.NewAccess()
	}
	return &standIn{kind: m.kind, module: m.Name()}
}

func (m *Module) register() error {
	if err := m.reg.Register(m.kind, m.Access()); err != nil {
		return fmt.Errorf("module %s: %w", m.Name(), err)
	}
	return nil
}

// TryInitialize runs the module's static initialization. It never looks up
// its own kind.
func (m *Module) TryInitialize() bool {
	m.hookCalls.Add(1)

	if m.mode != config.ModuleModeLazy {
		logging.Debug(subsystem, "%s has nothing to offer", m.Name())
		return false
	}

	if err := m.register(); err != nil {
		if capability.IsDoubleRegistration(err) {
			// Someone registered the slot between the empty read and the trigger.
			logging.Debug(subsystem, "%s already registered", m.kind)
			return false
		}
		logging.Error(subsystem, err, "failed to initialize %s", m.Name())
		return false
	}
	logging.Debug(subsystem, "initialized %s on first use", m.Name())
	return true
}

var _ capability.Initializer = (*Module)(nil)

// standIn is the access registered by modules whose real implementation
// lives outside this repository. It only identifies its owner.
type standIn struct {
	kind   capability.Kind
	module string
}

func (s *standIn) AccessKind() capability.Kind { return s.kind }

// Module returns the name of the registering module.
func (s *standIn) Module() string { return s.module }

func (s *standIn) String() string { return fmt.Sprintf("%s access from %s", s.kind, s.module) }
