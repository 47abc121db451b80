// Package main runs the techangel web UI: the address converter and the salary
// regression demo as HTML pages, plus a JSON API for the CLI's --server mode.
//
// Flags
//
//	--config path   YAML config (default ~/.techangel/config.yaml; missing is fine)
//	--listen addr   overrides the configured listen address
//	--debug         exposes GET /debug/state
//
// Behaviour
//
//   - Logs are JSON (zap production encoder).
//   - The crypto primitives self-test in the background while the server is
//     already accepting requests; /healthz answers 503 until they are ready.
//   - All session state is held in memory and lost on process exit.
//   - SIGINT/SIGTERM drain in-flight requests before exiting.
//
// See package internal/webui for the routes.
package main
