package capability

import "sync"

var (
	// Registry instance
	registry     *Registry
	registryOnce sync.Once
)

// Default returns the process-wide registry, creating an empty one on first use.
func Default() *Registry {
	registryOnce.Do(func() {
		registry = New()
	})
	return registry
}

// InitDefault installs r as the process-wide registry. It must run before
// the first call to Default; later calls have no effect. It reports whether
// r was installed.
func InitDefault(r *Registry) bool {
	installed := false
	registryOnce.Do(func() {
		registry = r
		installed = true
	})
	return installed
}

// ResetDefault drops the process-wide registry. It is not safe for
// concurrent use and exists for tests.
func ResetDefault() {
	registryOnce = sync.Once{}
	registry = nil
}
