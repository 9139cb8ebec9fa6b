// Package config provides configuration management for capex.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (built into the binary)
//  2. User configuration (~/.config/capex/config.yaml)
//  3. Project configuration (./.capex/config.yaml)
//  4. An explicit file passed with --config
//
// A config.toml in the user or project directory is read when no
// config.yaml is present. Explicit files are decoded by extension.
//
// # Configuration Structure
//
//	logLevel: info
//	registry:
//	  allowOverwrite:
//	    - url
//	modules:
//	  - kind: network-socket
//	    mode: lazy
//	  - kind: file-descriptor
//	    mode: eager
//
// Modules are merged by kind. An overlay entry replaces the mode of the
// matching default entry; the remaining defaults stay in place. A non-empty
// allowOverwrite list replaces the inherited list.
//
// Mode is one of eager, lazy or absent. LoadConfig rejects unknown kinds,
// unknown modes and duplicate module entries.
package config
