// Package cli implements the bisko command tree: calc, batch, diff and the
// config subcommands.
package cli
