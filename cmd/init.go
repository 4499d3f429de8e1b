package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/config"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a travelseed project",
	Long:  `Initialize a travelseed project: write the configuration file and make sure .env carries a DATABASE_URL entry.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := "postgresql"
		flagCount := 0

		if sqliteFlag {
			provider = "sqlite"
			flagCount++
		}
		if postgresqlFlag {
			provider = "postgresql"
			flagCount++
		}
		if mysqlFlag {
			provider = "mysql"
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		if err := config.InitializeProject(provider); err != nil {
			return err
		}

		fmt.Printf("✅ Initialized travelseed project with %s database support\n", provider)
		fmt.Println()
		fmt.Println("📝 Configuration file created:")
		fmt.Printf("   %s\n", config.ConfigFileName)
		fmt.Println()
		fmt.Println("🚀 Next steps:")
		fmt.Println("   1. Point DATABASE_URL in .env at your database")
		fmt.Println("   2. travelseed migrate   # create the tables")
		fmt.Println("   3. travelseed seed      # populate sample data")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize project for SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize project for PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize project for MySQL database")
}
