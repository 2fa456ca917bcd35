package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	managerID  int
	externalID string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fantasy-manager",
		Short: "Fantasy Manager CLI - manage transfer requests of your fantasy team",
		Long: `Fantasy Manager CLI works directly against the league database.

Managers keep an ordered queue of pending transfer requests. Each request
brings one player in and sends another out; the queue holds at most
transfers.count requests (default 3).

Examples:
  fantasy-manager manager register --user 123456 --name "Jose"
  fantasy-manager league create Sunday League
  fantasy-manager team create Gunners
  fantasy-manager player add --name Haaland --position Forward --club City
  fantasy-manager transfer create "Haaland, Forward, City" "Nunez, Forward, Liverpool"
  fantasy-manager transfer list
  fantasy-manager transfer abort 2
  fantasy-manager transfer count`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().IntVar(&managerID, "manager-id", 0,
		"Manager ID (required if user not specified)")
	rootCmd.PersistentFlags().StringVar(&externalID, "user", "",
		"Chat user id of the manager (alternative to manager-id)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewManagerCommand())
	rootCmd.AddCommand(NewPlayerCommand())
	rootCmd.AddCommand(NewLeagueCommand())
	rootCmd.AddCommand(NewTeamCommand())
	rootCmd.AddCommand(NewTransferCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewServeMetricsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
