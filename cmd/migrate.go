package main

import (
	"github.com/spf13/cobra"
	"github.com/supermanager/interview-eval/database"
	"go.uber.org/fx"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := fx.New(
			fx.NopLogger,
			coreModule,
			fx.Invoke(database.Migrate),
		)
		return app.Err()
	},
}
