package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/studyhive/community-core/internal/audit"
	"github.com/studyhive/community-core/internal/audit/export"
	"github.com/studyhive/community-core/internal/database"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup"
	"github.com/studyhive/community-core/internal/setup/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var ErrInconsistenciesFound = errors.New("ledger inconsistencies found")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := setup.NewLogger(&cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	emitter, closeEvents, err := events.NewEmitter(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create event emitter: %w", err)
	}
	defer closeEvents()

	db, err := database.NewConnection(context.Background(), cfg, emitter, logger, false)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	app := &cli.Command{
		Name:  "audit",
		Usage: "Reputation ledger audit tool",
		Commands: []*cli.Command{
			{
				Name:  "verify",
				Usage: "Replay every ledger and compare against stored scores",
				Action: func(ctx context.Context, _ *cli.Command) error {
					verifier := audit.NewVerifier(db, logger)

					findings, err := verifier.VerifyAll(ctx)
					if err != nil {
						return err
					}

					for _, finding := range findings {
						fmt.Println(finding)
					}

					if len(findings) > 0 {
						return fmt.Errorf("%w: %d", ErrInconsistenciesFound, len(findings))
					}
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Write a pseudonymized audit report",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "Output directory", Value: "."},
					&cli.StringFlag{Name: "salt", Usage: "Pseudonymization salt", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					outDir := c.String("out")
					if err := os.MkdirAll(outDir, 0o750); err != nil {
						return fmt.Errorf("failed to create output directory: %w", err)
					}

					exporter := export.New(db, outDir, &export.Config{Salt: c.String("salt")})
					if err := exporter.ExportAll(ctx); err != nil {
						return err
					}

					logger.Info("Audit export complete", zap.String("outDir", outDir))
					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}
