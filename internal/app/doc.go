// Package app wires application dependencies for the CLI, TUI and web UI.
//
// Config is loaded from YAML with environment overrides on top; NewWire then
// builds the logger, the crypto readiness gate and the converter and
// regression services from it, exposing them via the Wire struct.
package app
