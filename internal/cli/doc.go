// Package cli defines the Cobra command tree for the mkchal CLI. The root
// command creates a challenge; version and config are subcommands. Command
// implementations delegate to internal packages for the work and only handle
// flag parsing and output formatting.
package cli
