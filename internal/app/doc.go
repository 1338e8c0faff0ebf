// Package app contains the core application logic. It wires configuration,
// logging, the record loader, the graph builder and the governance checks
// into the two operations orgmeta offers, decoupled from the CLI entrypoint.
package app
