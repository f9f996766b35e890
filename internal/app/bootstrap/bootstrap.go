// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	reviewservice "internhub/contexts/community/review-service"
	reviewmemory "internhub/contexts/community/review-service/adapters/memory"
	reviewpostgres "internhub/contexts/community/review-service/adapters/postgres"
	companyservice "internhub/contexts/identity-access/company-service"
	companypostgres "internhub/contexts/identity-access/company-service/adapters/postgres"
	admindashboardservice "internhub/contexts/internal-ops/admin-dashboard-service"
	adminmemory "internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	adminpostgres "internhub/contexts/internal-ops/admin-dashboard-service/adapters/postgres"
	applicationservice "internhub/contexts/recruiting/application-service"
	applicationmemory "internhub/contexts/recruiting/application-service/adapters/memory"
	applicationpostgres "internhub/contexts/recruiting/application-service/adapters/postgres"
	internshipservice "internhub/contexts/recruiting/internship-service"
	internshipmemory "internhub/contexts/recruiting/internship-service/adapters/memory"
	internshippostgres "internhub/contexts/recruiting/internship-service/adapters/postgres"
	"internhub/internal/platform/config"
	"internhub/internal/platform/db"
	"internhub/internal/platform/httpserver"
	"internhub/internal/platform/migrations"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	switch cfg.StorageMode {
	case config.StorageModeMemory:
		return buildMemoryAPI(cfg, logger)
	case config.StorageModePostgres:
		return buildPostgresAPI(cfg, logger)
	default:
		return nil, errors.New("STORAGE_MODE must be postgres or memory")
	}
}

func buildMemoryAPI(cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	server := httpserver.New(
		companyservice.NewInMemoryModule(nil, logger),
		internshipservice.NewInMemoryModule(internshipmemory.Seed{}, logger),
		applicationservice.NewInMemoryModule(applicationmemory.Seed{}, logger),
		reviewservice.NewInMemoryModule(reviewmemory.Seed{}, logger),
		admindashboardservice.NewInMemoryModule(adminmemory.Seed{}, logger),
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{server: server, logger: logger}, nil
}

func buildPostgresAPI(cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		sqlDB, err := pg.SQL()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := migrations.Apply(ctx, sqlDB); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	companyModule := companyservice.NewModule(companyservice.Dependencies{
		Repository: companypostgres.NewRepository(pg.DB, logger),
		Clock:      companypostgres.SystemClock{},
		IDGen:      companypostgres.UUIDGenerator{},
		Logger:     logger,
	})
	internshipModule := internshipservice.NewModule(internshipservice.Dependencies{
		Repository: internshippostgres.NewRepository(pg.DB, logger),
		Clock:      internshippostgres.SystemClock{},
		IDGen:      internshippostgres.UUIDGenerator{},
		Logger:     logger,
	})
	applicationModule := applicationservice.NewModule(applicationservice.Dependencies{
		Repository: applicationpostgres.NewRepository(pg.DB, logger),
		Clock:      applicationpostgres.SystemClock{},
		IDGen:      applicationpostgres.UUIDGenerator{},
		Logger:     logger,
	})
	reviewModule := reviewservice.NewModule(reviewservice.Dependencies{
		Repository: reviewpostgres.NewRepository(pg.DB, logger),
		Clock:      reviewpostgres.SystemClock{},
		IDGen:      reviewpostgres.UUIDGenerator{},
		Logger:     logger,
	})
	adminRepo := adminpostgres.NewRepository(pg.DB, logger)
	adminModule := admindashboardservice.NewModule(admindashboardservice.Dependencies{
		Stats:          adminRepo,
		Audit:          adminRepo,
		Idempotency:    adminpostgres.NewIdempotencyStore(pg.DB),
		Clock:          adminpostgres.SystemClock{},
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})

	server := httpserver.New(
		companyModule,
		internshipModule,
		applicationModule,
		reviewModule,
		adminModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
