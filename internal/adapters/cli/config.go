package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Fantasy Manager configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (FM_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

User preferences (default manager) are stored in ~/.fantasy-manager/config.json

Examples:
  fantasy-manager config show
  fantasy-manager config set-manager --user 123456
  fantasy-manager config set-manager --manager-id 1
  fantasy-manager config clear-manager`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetManagerCommand())
	cmd.AddCommand(newConfigClearManagerCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Println("Fantasy Manager Configuration")
			fmt.Println("=============================")

			fmt.Println("User Preferences:")
			fmt.Printf("  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.DefaultManagerID != nil {
				fmt.Printf("  Default Manager:  ID=%d\n", *userCfg.DefaultManagerID)
			} else if userCfg.DefaultExternalID != "" {
				fmt.Printf("  Default Manager:  User=%s\n", userCfg.DefaultExternalID)
			} else {
				fmt.Printf("  Default Manager:  (not set)\n")
			}

			fmt.Println("\nDatabase:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Printf("  Host:             %s\n", cfg.Database.Host)
				fmt.Printf("  Port:             %d\n", cfg.Database.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Name)
				fmt.Printf("  User:             %s\n", cfg.Database.User)
			}
			fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Println("\nTransfers:")
			fmt.Printf("  Transfers Count:  %d\n", cfg.Transfers.Count)

			fmt.Println("\nThrottle:")
			if cfg.Throttle.Enabled() {
				fmt.Printf("  Rate Limit:       %.2f req/s (burst: %d)\n", cfg.Throttle.RequestsPerSecond, cfg.Throttle.Burst)
			} else {
				fmt.Printf("  Rate Limit:       (disabled)\n")
			}

			fmt.Println("\nMetrics:")
			fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Printf("  Address:          %s%s\n", cfg.Metrics.Address(), cfg.Metrics.Path)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

func newConfigSetManagerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-manager",
		Short: "Set default manager",
		Long: `Set the default manager to use for commands.

Specify the manager using either --manager-id or --user flag.
The manager must already be registered.

Examples:
  fantasy-manager config set-manager --manager-id 1
  fantasy-manager config set-manager --user 123456`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if managerID == 0 && externalID == "" {
				return fmt.Errorf("either --manager-id or --user flag is required")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			// Verify the manager exists before storing it
			m, err := rt.selectManager(rt.Context())
			if err != nil {
				return err
			}

			if managerID > 0 {
				err = userConfigHandler.SetDefaultManager(m.ID.Value())
			} else {
				err = userConfigHandler.SetDefaultExternalID(m.ExternalID)
			}
			if err != nil {
				return fmt.Errorf("failed to set default manager: %w", err)
			}

			fmt.Println("✓ Default manager set successfully")
			fmt.Printf("  Manager ID: %d\n", m.ID.Value())
			fmt.Printf("  User:       %s\n", m.ExternalID)
			fmt.Printf("\nCommands will now use this manager by default.\n")
			fmt.Printf("Override with --manager-id or --user flags.\n")

			return nil
		},
	}
}

func newConfigClearManagerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-manager",
		Short: "Clear default manager setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := userConfigHandler.ClearDefaultManager(); err != nil {
				return fmt.Errorf("failed to clear default manager: %w", err)
			}

			fmt.Println("✓ Default manager cleared")
			fmt.Println("\nYou must now specify --manager-id or --user unless exactly one manager is registered.")

			return nil
		},
	}
}

// maskPassword hides the password of a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "****")
	return u.String()
}
