package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/database"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Create or update the managers, players and transfers tables.

Safe to run repeatedly; existing rows are kept.

Example:
  fantasy-manager migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			fmt.Printf("✓ Database schema is up to date (%s)\n", cfg.Database.Type)
			return nil
		},
	}
}
