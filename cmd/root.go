package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/MyelinBots/userapi-go/config"
	"github.com/MyelinBots/userapi-go/internal/db"
	"github.com/MyelinBots/userapi-go/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "userapi",
	Short: "User CRUD API with loyalty enrichment",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.StartServer()
	},
}

var migrationsPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()
		database, err := db.NewDB(cfg.DBConfig)
		if err != nil {
			return err
		}
		return database.Migrate(migrationsPath)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsPath, "path", "internal/db/migrations", "migrations directory")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
