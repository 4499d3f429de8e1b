package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long: `Create the four tables (users, listings, bookings, reviews) with
their foreign keys and check constraints. Safe to run repeatedly;
existing tables are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		st := store.New(db, cfg.Database.Provider)
		if err := st.CreateSchema(context.Background()); err != nil {
			return err
		}

		color.Green("✅ Schema is up to date (users, listings, bookings, reviews)")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
