// Package capability implements the capability exchange registry: the
// mechanism by which internal modules hand privileged, non-public operations
// to other internal modules without widening their public API.
//
// # Overview
//
// Each capability kind has exactly one slot. The module that owns the
// underlying state registers an implementation into the slot, usually during
// its own setup:
//
//	reg.SetNetURLAccess(urlAccess{})
//
// Consumers read the slot through a typed accessor instead of holding a
// reference to the owning module:
//
//	if ua, ok := reg.GetNetURLAccess(); ok {
//	    // use ua
//	}
//
// # Lookup policies
//
// Every kind has a fixed Policy:
//
//   - PolicyPlain returns the slot as is. Its owners register during early
//     startup.
//   - PolicyTriggered fires the owning module's Initializer when the slot is
//     empty, then re-reads it. The result may still be empty.
//   - PolicyRequired does the same but fails with an *UnavailableError when
//     nothing was registered.
//   - PolicyFallback does the same but installs an inert file descriptor
//     access whose getters return -1.
//
// A trigger fires at most once per kind for the lifetime of the registry,
// however many goroutines race on the empty slot. Initializers may register
// any kind and look up other kinds, but must not look up their own kind.
//
// # Registration
//
// A slot accepts one registration. A second one fails with a
// *DoubleRegistrationError unless the kind was opted into overwrites with
// WithOverwrite. The registry holds references only and never logs; failures
// are returned to the caller.
package capability
