package main

import (
	"fmt"
	"os"

	"smart-hospital-display/internal/config"
	"smart-hospital-display/internal/database"
	"smart-hospital-display/pkg/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "hospital-display",
	Short: "Hospital display dashboard backend (tokens, inventory, alerts, schedules)",
	// Running without a subcommand starts the HTTP server
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and opens the store
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg := config.LoadConfig()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Configuration loaded")

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
