package capability

import (
	"errors"
	"fmt"
)

// Common errors for registry operations
var (
	// ErrUnavailable is returned by required lookups whose owning module
	// registered nothing. It is determined by the build, retrying will not help.
	ErrUnavailable = errors.New("capability not supported in this build")

	// ErrAlreadyRegistered is wrapped by DoubleRegistrationError.
	ErrAlreadyRegistered = errors.New("capability already registered")

	ErrUnknownKind     = errors.New("unknown capability kind")
	ErrNilAccess       = errors.New("capability access is nil")
	ErrKindMismatch    = errors.New("capability access does not match kind")
	ErrNoTrigger       = errors.New("capability kind has no initialization trigger")
	ErrTriggerConsumed = errors.New("capability initialization trigger already fired")
)

// UnavailableError reports a required capability that no module provided.
type UnavailableError struct {
	Kind Kind
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s access: %v", e.Kind, ErrUnavailable)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// DoubleRegistrationError reports a second registration for a kind that
// does not allow overwrites. It points to an ordering defect in module startup.
type DoubleRegistrationError struct {
	Kind Kind
	// Existing is the type of the implementation that keeps the slot.
	Existing string
}

func (e *DoubleRegistrationError) Error() string {
	return fmt.Sprintf("%s access: %v (held by %s)", e.Kind, ErrAlreadyRegistered, e.Existing)
}

func (e *DoubleRegistrationError) Unwrap() error {
	return ErrAlreadyRegistered
}

// IsUnavailable reports whether err is an ErrUnavailable failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsDoubleRegistration reports whether err is a rejected second registration.
func IsDoubleRegistration(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}
