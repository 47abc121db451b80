// Package converter converts between Substrate SS58 and Ethereum H160
// addresses and holds the state behind the Converter View.
//
// Service is stateless and shared by every front-end (CLI, TUI, web UI,
// JSON API). It gates every call on the crypto readiness gate, validates
// input shape, and delegates the derivation itself to a domain.AddressCodec.
//
// View is the interactive state of one converter screen: two inputs, the
// derived outputs, the derived public key, one error message and a readiness
// flag. Failures are reduced to fixed user-facing messages; an invalid input
// never leaves stale output next to the error.
package converter
