package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sqliteadapter "github.com/ericfisherdev/nucampsite/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/nucampsite/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web"
	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/config"
)

func (a *app) serve(parent context.Context) error {
	cfg, logger := a.cfg, a.logger
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"db_path", cfg.DBPath,
		"base_url", cfg.BaseURL,
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cat.close(); closeErr != nil {
			logger.Error("error closing store", "error", closeErr)
		}
	}()

	ready := application.NewReadiness()
	directorySvc := application.NewDirectoryService(cat.campsites, cat.comments, cat.partners, cat.promotions, ready, logger)
	commentSvc := application.NewCommentService(cat.comments, logger)

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(directorySvc, commentSvc, logger))

	translator, err := webhandler.NewTranslator()
	if err != nil {
		return err
	}
	webHandler := webhandler.NewHandler(directorySvc, commentSvc, translator, webhandler.Options{
		BaseURL:       cfg.BaseURL,
		Animations:    cfg.Animations,
		SecureCookies: cfg.SecureCookies,
	}, logger)
	webhandler.RegisterRoutes(mux, webHandler)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.ApplyMiddleware(mux, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Pages show the loading indicator until the catalog is in place.
	go func() {
		if err := loadCatalog(ctx, cat.seeder, cfg.Seed, ready, logger); err != nil {
			logger.Error("catalog load failed", "error", err)
		}
	}()

	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func (a *app) migrate(ctx context.Context, down int) error {
	if a.cfg.Store != config.StoreSQLite {
		return errors.New("migrate requires NUCAMPSITE_STORE=sqlite")
	}

	db, err := sqliteadapter.NewDB(ctx, a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if down > 0 {
		if err := sqliteadapter.RollbackMigrations(db.Writer, down); err != nil {
			return err
		}
	} else if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	version, dirty, err := sqliteadapter.MigrationVersion(db.Writer)
	if err != nil {
		return err
	}
	a.logger.Info("migrations complete", "path", a.cfg.DBPath, "version", version, "dirty", dirty)
	return nil
}

func (a *app) seed(ctx context.Context) error {
	if a.cfg.Store != config.StoreSQLite {
		return errors.New("seed requires NUCAMPSITE_STORE=sqlite")
	}

	cat, err := openCatalog(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = cat.close() }()

	return loadCatalog(ctx, cat.seeder, true, application.NewReadiness(), a.logger)
}
