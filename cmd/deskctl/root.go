package main

import (
	"context"
	"fmt"
	"time"

	"case_desk_app_go/apiclient"
	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/models"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "deskctl",
	Short: "Operator tool for the Case Desk",
	Long: `deskctl works with a Case Desk installation from the terminal.

Commands that read screens (list) talk to the REST API. Maintenance
commands (seed, export, docket, remind, create-user) open the database
configured by the same environment as the server.`,
	SilenceUsage: true,
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "REST API base URL (default BACKEND_URL)")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", apiclient.DefaultTimeout, "API request timeout")
}

// newAPIClient builds the REST client from the flags, falling back to the
// configured backend
func newAPIClient(cfg *config.Config) *apiclient.Client {
	base := apiURL
	if base == "" {
		base = cfg.BackendURL
	}
	return apiclient.New(base, apiTimeout)
}

// openDatabase connects and migrates the configured database
func openDatabase(cfg *config.Config) error {
	if err := db.Initialize(cfg); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Case{},
		&models.CourtDate{},
		&models.Document{},
	)
}
