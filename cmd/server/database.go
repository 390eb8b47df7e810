package main

import (
	"fmt"

	"smart-hospital-display/internal/database"
	"smart-hospital-display/internal/repository"
	"smart-hospital-display/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info().Msg("Database migrated")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop all tables and load the sample display data",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.ResetSchema(db); err != nil {
			return err
		}

		seeder := service.NewSeedService(
			repository.NewTokenRepo(db),
			repository.NewInventoryRepo(db),
			repository.NewAlertRepo(db),
			repository.NewScheduleRepo(db),
		)
		summary, err := seeder.Seed(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tokens, %d items, %d alerts, %d schedules\n",
			summary.Tokens, summary.Items, summary.Alerts, summary.Schedules)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
