package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/nucampsite/internal/adapter/driven/memory"
	sqliteadapter "github.com/ericfisherdev/nucampsite/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/config"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
	"github.com/ericfisherdev/nucampsite/internal/seed"
)

// catalog is the selected data provider behind the driven ports.
type catalog struct {
	campsites  driven.CampsiteStore
	comments   driven.CommentStore
	partners   driven.PartnerStore
	promotions driven.PromotionStore
	seeder     driven.Seeder
	close      func() error
}

// openCatalog opens the backend named by cfg.Store. SQLite databases are
// migrated before use.
func openCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog, error) {
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		logger.Info("using in-memory store")
		return &catalog{
			campsites:  store,
			comments:   store,
			partners:   store.Partners(),
			promotions: store.Promotions(),
			seeder:     store,
			close:      func() error { return nil },
		}, nil

	case config.StoreSQLite:
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		logger.Info("database opened", "path", cfg.DBPath)

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("migrations complete")

		return &catalog{
			campsites:  sqliteadapter.NewCampsiteRepo(db),
			comments:   sqliteadapter.NewCommentRepo(db),
			partners:   sqliteadapter.NewPartnerRepo(db),
			promotions: sqliteadapter.NewPromotionRepo(db),
			seeder:     sqliteadapter.NewSeedRepo(db),
			close:      db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// loadCatalog seeds the store and then marks the application ready. With
// seeding disabled an empty catalog is loaded, which leaves a populated
// store untouched. Readiness is marked even on failure so pages render the
// store's error instead of loading forever.
func loadCatalog(ctx context.Context, seeder driven.Seeder, enabled bool, ready *application.Readiness, logger *slog.Logger) error {
	defer ready.MarkReady()

	var data driven.SeedData
	if enabled {
		var err error
		if data, err = seed.Load(); err != nil {
			return err
		}
	} else {
		logger.Info("seeding disabled, loading empty catalog")
	}

	seeded, err := seeder.Seed(ctx, data)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"seeded", seeded,
		"campsites", len(data.Campsites),
		"comments", len(data.Comments),
	)
	return nil
}
