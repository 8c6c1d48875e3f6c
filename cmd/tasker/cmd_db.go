package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/database/seeders"
	"github.com/shashiranjanraj/tasker/pkg/database"
	"github.com/shashiranjanraj/tasker/pkg/migration"

	// Register migrations so their init() funcs run.
	_ "github.com/shashiranjanraj/tasker/database/migrations"
)

// withDB loads config, opens the database and hands it to fn.
func withDB(cmd *cobra.Command, fn func(db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(db)
}

// tasker migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
			return migration.New(db, cmd.OutOrStdout()).Run()
		})
	},
}

// tasker migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
			return migration.New(db, cmd.OutOrStdout()).Rollback()
		})
	},
}

// tasker migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			return migration.New(db, cmd.OutOrStdout()).Status()
		})
	},
}

// tasker seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
			return seeders.RunAll(db, cmd.OutOrStdout())
		})
	},
}
