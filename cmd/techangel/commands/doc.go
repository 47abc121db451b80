// Package commands defines the techangel CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - to-evm <ss58>          Derive the Ethereum (H160) address of an SS58 address
//   - to-ss58 <0x...>        Map an Ethereum address to SS58 (--format sets the prefix)
//   - decode <address>       Show the network prefix and public key of an address
//   - regression             Evaluate a model against a synthetic salary dataset
//   - regression export      Write the dataset, every curve and the scores to JSON,
//     optionally with a chart image
//   - tui                    Interactive terminal UI
//   - serve                  Run the web UI and JSON API
//
// # Implementation
//
// The root command loads the YAML config, applies --log-level, builds the zap
// logger and the dependency graph before any subcommand runs. With --server
// the address and regression commands call a running web UI through its JSON
// API instead of the local services.
package commands
