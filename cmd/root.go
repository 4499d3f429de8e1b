package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "travelseed",
	Short: "Database tooling for the travel booking app",
	Long: `
travelseed manages the travel app's relational store: it creates the
schema, populates it with a referentially consistent graph of sample
users, listings, bookings and reviews, and reports on its contents.

Database support:
- PostgreSQL
- MySQL
- SQLite`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("travelseed version %s\n", Version)
			os.Exit(0)
		}

		color.New(color.FgGreen, color.Bold).Println("🧳 travelseed — sample data for the travel booking app")
		color.New(color.FgCyan).Printf("Version: %s\n\n", Version)
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./travelseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("travelseed.config")
	}

	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	viper.ReadInConfig()
}
