package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"book-rental-tracker/internal/handler/middleware"
	"book-rental-tracker/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const applyTimeout = 2 * time.Minute

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(cfg, *dryRun, logger); err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}
}

// run brings the database in line with the schema files under cfg.Migrate.Dir.
func run(cfg config.Config, dryRun bool, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Migrate.Dir,
		DevURL:      cfg.Migrate.DevURL,
		DryRun:      dryRun,
		AutoApprove: !dryRun,
	})
	if err != nil {
		return err
	}

	logger.Info("schema apply finished",
		"database", cfg.DB.DBName,
		"dry_run", dryRun,
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
	)
	for _, stmt := range res.Changes.Pending {
		logger.Info("pending change", "sql", stmt)
	}
	return nil
}
