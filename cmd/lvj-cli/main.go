// Package main is the entry point for the lvj-cli application.
// It registers the operational sub-commands (migrate, seed, session, config, service-types)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/Khaledaun/LVJAPP/cmd/lvj-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "lvj-cli",
		Short: "Operations CLI for the LVJ case management backend",
		Long: `lvj-cli runs maintenance tasks against the configured store.

The configuration is read from --config, then CONFIG_PATH, then environment
variables only. Set SKIP_DB=1 to work against the in-memory mock data.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
