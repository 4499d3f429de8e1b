package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/store"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all rows from all tables",
	Long: `
Delete every row from reviews, bookings, listings and users, in that
order so foreign key constraints are never violated.

⚠️  WARNING: This permanently deletes all data in these tables!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if !resetForce && !askConfirmation("This will delete ALL rows from all four tables. Continue?") {
			color.Yellow("Aborted.")
			return nil
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
		if err := st.DeleteAll(context.Background()); err != nil {
			return err
		}

		color.Green("✅ All rows deleted")
		return nil
	},
}

func askConfirmation(message string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s (y/N): ", message)
	input, _ := reader.ReadString('\n')
	answer := strings.TrimSpace(strings.ToLower(input))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip confirmation prompt")
}
