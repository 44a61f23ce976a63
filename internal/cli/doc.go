// Package cli defines the Cobra command tree for the scriptsmith CLI. The
// root command performs the generation run itself; each other file in this
// package registers one subcommand (config, version) with the root command.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O wiring, and user interaction.
package cli
