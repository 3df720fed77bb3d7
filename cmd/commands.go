package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sbilibin2017/gw-vacancies/internal/ingestion"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/migrations"
)

// initDB applies migrations and loads vacancies from every active source
func initDB(ctx context.Context, cfg appConfig) error {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	return ingest(ctx, cfg, nil, io.Discard)
}

// updateVacancies loads vacancies from the given sources, or every active one
func updateVacancies(ctx context.Context, cfg appConfig, sources []string, out io.Writer) error {
	return ingest(ctx, cfg, sources, out)
}

func ingest(ctx context.Context, cfg appConfig, sources []string, out io.Writer) error {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	orchestrator, closePublisher, err := newOrchestrator(cfg, db)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Log.Errorw("failed to close publisher", "err", err)
		}
	}()

	outcomes, err := orchestrator.Run(ctx, sources)
	if err != nil {
		return err
	}

	printOutcomes(out, outcomes)
	return nil
}

func printOutcomes(out io.Writer, outcomes []ingestion.Outcome) {
	for _, o := range outcomes {
		if o.Error != "" {
			fmt.Fprintf(out, "%s: failed: %s\n", o.Source, o.Error)
			continue
		}
		fmt.Fprintf(out, "%s: fetched %d, created %d, updated %d, failed %d\n",
			o.Source, o.Fetched, o.Created, o.Updated, o.Failed)
	}
}

// runParsers prints parsed vacancies as JSON lines without storing them
func runParsers(ctx context.Context, cfg appConfig, sources []string, out io.Writer) error {
	orchestrator, _, err := newOrchestrator(appConfig{
		SourcesConfig: cfg.SourcesConfig,
		HTTPTimeout:   cfg.HTTPTimeout,
		IngestWorkers: cfg.IngestWorkers,
	}, nil)
	if err != nil {
		return err
	}

	results, err := orchestrator.Fetch(ctx, sources)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for res := range results {
		if res.Err != nil {
			logger.Log.Errorw("parser failed", "source", res.Source, "err", res.Err)
			continue
		}
		for _, v := range res.Vacancies {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// createUser registers an administrator
func createUser(ctx context.Context, cfg appConfig, username, password string, out io.Writer) error {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := newAuthService(cfg, db, nil).CreateUser(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "user %s created with id %d\n", user.Username, user.ID)
	return nil
}

// dropExpiredVacancies deletes vacancies older than the retention window
func dropExpiredVacancies(ctx context.Context, cfg appConfig, out io.Writer) error {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := newVacancyService(cfg, db).DropExpired(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d expired vacancies deleted\n", deleted)
	return nil
}
