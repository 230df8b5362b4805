package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/supermanager/interview-eval/database"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var seedDemo bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default interview rubric",
	Long:  "Migrates the schema and inserts the default rubric. Categories that already exist by name are left alone.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		app := fx.New(
			fx.NopLogger,
			coreModule,
			fx.Invoke(func(db *gorm.DB, store *repository.Store) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				return runSeed(ctx, store, seedDemo)
			}),
		)
		return app.Err()
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "also register a demo freelancer")
}

func runSeed(ctx context.Context, store *repository.Store, demo bool) error {
	if _, err := seed.Rubric(ctx, store); err != nil {
		return err
	}
	if !demo {
		return nil
	}
	f, err := seed.DemoFreelancer(ctx, store)
	if err != nil {
		return err
	}
	log.Info().Str("id", f.ID).Str("email", f.Email).Msg("Demo freelancer ready")
	return nil
}
