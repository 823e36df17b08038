// Package main is the entry point for the servicehub-cli application.
// It registers the operator command groups (database, admin accounts, trust scores,
// notification delivery and KYC document keys) and executes the command-line interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/MGTheTrain/servicehub/cmd/servicehub-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "servicehub-cli",
		Short: "Operator tool for the servicehub marketplace",
		Long: `servicehub-cli is a command-line tool for operating a servicehub deployment.
Runs database migrations, creates admin accounts, adjusts and inspects trust scores,
consumes the Kafka notification topic and manages the KYC document encryption key.

Commands that touch the database read the same YAML configuration as the REST API.
The path is taken from --config, falling back to the CONFIG_PATH environment variable.`,
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath(), "Path to the servicehub YAML configuration")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitTrustCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize trust commands: %w", err)
	}

	if err := commands.InitNotifierCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize notifier commands: %w", err)
	}

	if err := commands.InitDocumentCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize document commands: %w", err)
	}

	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/rest-app.yaml"
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
