package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autobox/internal/account"
	"autobox/internal/audit"
	"autobox/internal/catalog"
	catalogcache "autobox/internal/catalog/cache"
	"autobox/internal/listing"
	"autobox/internal/platform/config"
	"autobox/internal/platform/httpserver"
	"autobox/internal/platform/logger"
	"autobox/internal/platform/metrics"
	"autobox/internal/platform/postgres"
	"autobox/internal/platform/redis"
	"autobox/internal/platform/token"
	"autobox/internal/submission"
	httptransport "autobox/internal/transport/http"
	"autobox/internal/vehicle"
)

func main() {
	log := logger.New()
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.PostgresURL == "" {
		log.Error("AUTOBOX_POSTGRES_URL is required")
		os.Exit(1)
	}
	db, err := postgres.Open(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("catalog cache enabled", "ttl", config.CatalogCacheTTL)
	}

	m := metrics.New()

	var catalogStore catalog.Store = catalog.NewPostgres(db)
	if redisClient != nil {
		catalogStore = catalogcache.New(catalogStore, redisClient.Client, config.CatalogCacheTTL, m)
	}

	auditor := audit.NewRecorder(audit.NewPostgres(db), log, 256)
	auditDone := make(chan struct{})
	go func() {
		auditor.Run(ctx)
		close(auditDone)
	}()

	vehicleSvc := vehicle.NewService(vehicle.NewPostgres(db), m)
	listingStore := listing.NewPostgres(db)
	listingSvc := listing.NewService(listingStore, catalogStore, m)
	accountSvc := account.NewService(account.NewPostgres(db), auditor, m)
	submissionSvc := submission.New(vehicleSvc, listingSvc, auditor, m, log)
	issuer := token.NewIssuer(cfg.JWTSigningKey, cfg.TokenTTL)

	handler := httptransport.New(httptransport.Deps{
		Logger:     log,
		Validator:  issuer,
		Issuer:     issuer,
		Submission: submissionSvc,
		Accounts:   accountSvc,
		Catalog:    catalog.NewService(catalogStore),
		Listings:   listingStore,
	})

	srv := httpserver.New(cfg.Addr, handler)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}

	// Let the audit worker drain its buffer before the process exits.
	stop()
	select {
	case <-auditDone:
	case <-time.After(5 * time.Second):
		log.Warn("audit worker did not drain in time")
	}
}
