// Package client talks to a running web UI through its JSON API, so the CLI
// can convert addresses and fetch regression data from a remote server.
package client
