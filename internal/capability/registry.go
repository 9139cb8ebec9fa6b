package capability

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Registry holds one slot per capability kind. Owning modules write a slot
// with Register; consumers read it through Lookup or a typed accessor, which
// applies the kind's policy. All methods are safe for concurrent use.
type Registry struct {
	slots     [kindCount]slot
	overwrite [kindCount]bool
}

type entry struct {
	access   Access
	fallback bool
}

type slot struct {
	value atomic.Pointer[entry]
	once  sync.Once

	// mu guards the fields below. It is never held while a hook runs.
	mu      sync.Mutex
	init    Initializer
	fired   bool
	offered bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithInitializer attaches the force-initialize hook of the module owning k.
// Hooks given for plain kinds are never invoked.
func WithInitializer(k Kind, init Initializer) Option {
	return func(r *Registry) {
		if k.Valid() {
			r.slots[k].init = init
		}
	}
}

// WithOverwrite lets later registrations for the given kinds replace the
// current implementation instead of failing.
func WithOverwrite(kinds ...Kind) Option {
	return func(r *Registry) {
		for _, k := range kinds {
			if k.Valid() {
				r.overwrite[k] = true
			}
		}
	}
}

// New creates a registry with every slot empty.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores a into the slot for k. Unless k allows overwrites, a
// second registration fails with a *DoubleRegistrationError and the slot keeps
// its first implementation.
func (r *Registry) Register(k Kind, a Access) error {
	if err := validate(k, a); err != nil {
		return err
	}

	s := &r.slots[k]
	e := &entry{access: a}
	if r.overwrite[k] {
		s.value.Store(e)
		return nil
	}
	if s.value.CompareAndSwap(nil, e) {
		return nil
	}
	return &DoubleRegistrationError{Kind: k, Existing: typeName(s.value.Load().access)}
}

// MustRegister is like Register but panics on error. It suits module setup
// code where a failed registration is a programming error.
func (r *Registry) MustRegister(k Kind, a Access) {
	if err := r.Register(k, a); err != nil {
		panic(err)
	}
}

// Bind attaches an initializer after construction. It fails for kinds without
// a trigger and once the trigger of k has fired.
func (r *Registry) Bind(k Kind, init Initializer) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if !k.Policy().Triggers() {
		return fmt.Errorf("%s access: %w", k, ErrNoTrigger)
	}

	s := &r.slots[k]
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fired {
		return fmt.Errorf("%s access: %w", k, ErrTriggerConsumed)
	}
	s.init = init
	return nil
}

// Lookup reads the slot for k under the kind's policy.
func (r *Registry) Lookup(k Kind) Result {
	if !k.Valid() {
		return Result{err: fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))}
	}

	s := &r.slots[k]
	policy := k.Policy()
	e := s.value.Load()
	if e == nil && policy.Triggers() {
		s.trigger()
		e = s.value.Load()
	}

	if e == nil {
		switch policy {
		case PolicyRequired:
			return Result{err: &UnavailableError{Kind: k}}
		case PolicyFallback:
			s.value.CompareAndSwap(nil, &entry{access: fileDescriptorFallback{}, fallback: true})
			e = s.value.Load()
		default:
			return Result{}
		}
	}
	return Result{access: e.access, fallback: e.fallback}
}

// trigger runs the slot's initializer at most once. Concurrent callers block
// until the first one returns, so every caller re-reads the slot after the
// hook's registrations are visible.
func (s *slot) trigger() {
	s.once.Do(func() {
		s.mu.Lock()
		init := s.init
		s.fired = true
		s.mu.Unlock()

		if init == nil {
			return
		}
		offered := init.TryInitialize()

		s.mu.Lock()
		s.offered = offered
		s.mu.Unlock()
	})
}

func validate(k Kind, a Access) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if isNil(a) {
		return fmt.Errorf("%s access: %w", k, ErrNilAccess)
	}
	if got := a.AccessKind(); got != k {
		return fmt.Errorf("%s access: %w: implementation reports %s", k, ErrKindMismatch, got)
	}
	if k == KindIOFileDescriptor {
		if _, ok := a.(FileDescriptorAccess); !ok {
			return fmt.Errorf("%s access: %w: %s does not implement FileDescriptorAccess", k, ErrKindMismatch, typeName(a))
		}
	}
	return nil
}

func isNil(a Access) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func typeName(a Access) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%T", a)
}

// Result is the outcome of a lookup. An empty result is distinct from every
// valid implementation, including the file descriptor stand-in.
type Result struct {
	access   Access
	fallback bool
	err      error
}

// Get returns the implementation and whether one is present.
func (r Result) Get() (Access, bool) {
	return r.access, r.access != nil
}

// Present reports whether the lookup produced an implementation.
func (r Result) Present() bool {
	return r.access != nil
}

// Fallback reports whether the implementation is the registry's stand-in.
func (r Result) Fallback() bool {
	return r.fallback
}

// Err returns the lookup failure, if any.
func (r Result) Err() error {
	return r.err
}
