// Package cli defines the fasttrack command tree. The bare command
// runs the interactive TUI; subcommands drive the same persisted state
// headlessly for scripts and shell aliases.
package cli
