package cmd

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"sculpturesly.GO/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	dsn := "sqlite://" + config.GetEnv("CART_DB", "storefront.db")
	return migrate.NewWithSourceInstance("iofs", src, dsn)
}

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply pending local store migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrate()
		if err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("No pending migrations.")
				return
			}
			log.Fatalf("migrate up: %v", err)
		}
		fmt.Println("Migrations applied.")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back the last local store migration",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrate()
		if err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if err := m.Steps(-1); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Println("Rolled back one migration.")
	},
}

func init() {
	rootCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
