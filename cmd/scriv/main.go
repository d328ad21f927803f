// Package main is the entry point for the scriv demo CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var version = "dev"

// Global flags.
var plain bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "scriv",
		Short: "Narrated demos of a reversible text editing core",
		Long: `scriv is a small text editing engine with reversible commands, a
permanent command log, and an undo stack. The subcommands replay short
editing sessions and narrate every operation to standard output:

  scriv replay     Drive commands and the history invoker directly
  scriv session    Drive the session facade over the same subsystem`,
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled output")

	rootCmd.AddCommand(
		newReplayCmd(),
		newSessionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}
