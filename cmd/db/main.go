package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database"
	"github.com/studyhive/community-core/internal/database/migrations"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup"
	"github.com/studyhive/community-core/internal/setup/config"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var ErrNameRequired = errors.New("NAME argument required")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	db, migrator, logger, closeEvents, err := setupClient()
	if err != nil {
		return fmt.Errorf("failed to setup database tool: %w", err)
	}
	defer db.Close()
	defer closeEvents()

	app := &cli.Command{
		Name:  "db",
		Usage: "Database management tool",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Initialize migration tables",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return migrator.Init(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run pending migrations",
				Action: func(ctx context.Context, _ *cli.Command) error {
					if err := migrator.Lock(ctx); err != nil {
						return err
					}
					defer migrator.Unlock(ctx) //nolint:errcheck

					group, err := migrator.Migrate(ctx)
					if err != nil {
						return err
					}

					if group.IsZero() {
						logger.Info("No new migrations to run (database is up to date)")
						return nil
					}

					logger.Info("Successfully migrated",
						zap.String("group", group.String()))
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "Rollback the last migration group",
				Action: func(ctx context.Context, _ *cli.Command) error {
					if err := migrator.Lock(ctx); err != nil {
						return err
					}
					defer migrator.Unlock(ctx) //nolint:errcheck

					group, err := migrator.Rollback(ctx)
					if err != nil {
						return err
					}

					if group.IsZero() {
						logger.Info("No groups to roll back")
						return nil
					}

					logger.Info("Successfully rolled back",
						zap.String("group", group.String()))
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show migration status",
				Action: func(ctx context.Context, _ *cli.Command) error {
					ms, err := migrator.MigrationsWithStatus(ctx)
					if err != nil {
						return err
					}

					logger.Info("Migration status",
						zap.String("migrations", ms.String()),
						zap.String("unapplied", ms.Unapplied().String()),
						zap.String("last_group", ms.LastGroup().String()))
					return nil
				},
			},
			{
				Name:      "create",
				Usage:     "Create a new Go migration file",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return ErrNameRequired
					}

					mf, err := migrator.CreateGoMigration(ctx, c.Args().First())
					if err != nil {
						return err
					}

					logger.Info("Created Go migration",
						zap.String("name", mf.Name),
						zap.String("path", mf.Path))
					return nil
				},
			},
			{
				Name:  "adjust-reputation",
				Usage: "Set an actor's reputation to a corrected value",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "actor", Usage: "Actor UUID", Required: true},
					&cli.IntFlag{Name: "score", Usage: "Target score", Required: true},
					&cli.StringFlag{Name: "by", Usage: "Administrator UUID", Required: true},
					&cli.StringFlag{Name: "reason", Usage: "Reason recorded in the ledger", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					actorID, err := uuid.Parse(c.String("actor"))
					if err != nil {
						return fmt.Errorf("invalid actor UUID: %w", err)
					}
					adminID, err := uuid.Parse(c.String("by"))
					if err != nil {
						return fmt.Errorf("invalid administrator UUID: %w", err)
					}

					result, err := db.Service().Reputation().AdjustReputation(
						ctx, actorID, c.Int("score"), adminID, c.String("reason"))
					if err != nil {
						return err
					}

					logger.Info("Reputation adjusted",
						zap.String("actorID", actorID.String()),
						zap.Int64("oldScore", result.OldScore),
						zap.Int64("applied", result.Applied),
						zap.Int64("newScore", result.NewScore))
					return nil
				},
			},
			{
				Name:  "award-badge",
				Usage: "Grant a badge to an actor by hand",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "actor", Usage: "Actor UUID", Required: true},
					&cli.StringFlag{Name: "badge", Usage: "Badge ID from the catalog", Required: true},
					&cli.StringFlag{Name: "by", Usage: "Administrator UUID", Required: true},
					&cli.StringFlag{Name: "reason", Usage: "Reason recorded with the grant", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					actorID, err := uuid.Parse(c.String("actor"))
					if err != nil {
						return fmt.Errorf("invalid actor UUID: %w", err)
					}
					adminID, err := uuid.Parse(c.String("by"))
					if err != nil {
						return fmt.Errorf("invalid administrator UUID: %w", err)
					}

					badge, err := db.Service().Badge().AwardManual(
						ctx, actorID, c.String("badge"), adminID, c.String("reason"))
					if err != nil {
						return err
					}

					logger.Info("Badge awarded",
						zap.String("actorID", actorID.String()),
						zap.String("badgeID", badge.BadgeID))
					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// setupClient initializes the database connection, the event emitter, and
// the migrator.
func setupClient() (database.Client, *migrate.Migrator, *zap.Logger, func(), error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := setup.NewLogger(&cfg.Debug)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	emitter, closeEvents, err := events.NewEmitter(cfg, logger)
	if err != nil {
		return nil, nil, logger, nil, fmt.Errorf("failed to create event emitter: %w", err)
	}

	db, err := database.NewConnection(context.Background(), cfg, emitter, logger, false)
	if err != nil {
		closeEvents()
		return nil, nil, logger, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrate.NewMigrator(db.DB(), migrations.Migrations)

	return db, migrator, logger, closeEvents, nil
}
