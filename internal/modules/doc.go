// Package modules installs the owning modules of every capability kind into a
// registry.
//
// Each module is configured with a mode:
//
//   - eager modules register their access during Install
//   - lazy modules bind an initializer that registers the access the first
//     time a lookup needs it
//   - absent modules have nothing to offer; triggered kinds get an initializer
//     that registers nothing, so lookups under the kind's policy stay empty,
//     fail or receive the file descriptor stand-in
//
// Plain kinds have no initialization trigger and cannot be lazy.
package modules
