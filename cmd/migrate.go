package main

import (
	"context"
	"database/sql"
	"fmt"
	root "podium"
	"podium/internal/config"
	"podium/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateRiver brings river's job tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latestVersion := all[len(all)-1].Version
	currentVersion := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		currentVersion = existing[len(existing)-1].Version
	}
	if latestVersion <= currentVersion {
		logger.Info(ctx, "river queue tables are up to date", zap.Int("version", currentVersion))

		return nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	logger.Info(ctx, "river queue tables migrated",
		zap.Int("from", currentVersion),
		zap.Int("to", latestVersion))

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the site
// schema migrations with goose and then river's own migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			// members, profiles and content tables
			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			if err := migrateRiver(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	return cmd
}
