package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts per table",
	Long: `Show the number of rows currently stored in each of the four
tables, plus the total.`,
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
		counts, err := st.Counts(context.Background())
		if err != nil {
			return err
		}

		color.Cyan("📊 Store contents (%s)", cfg.Database.Provider)
		fmt.Printf("   users:    %d\n", counts.Users)
		fmt.Printf("   listings: %d\n", counts.Listings)
		fmt.Printf("   bookings: %d\n", counts.Bookings)
		fmt.Printf("   reviews:  %d\n", counts.Reviews)
		fmt.Printf("   total:    %d\n", counts.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
