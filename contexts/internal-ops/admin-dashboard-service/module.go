package admindashboardservice

import (
	"log/slog"
	"time"

	httpadapter "internhub/contexts/internal-ops/admin-dashboard-service/adapters/http"
	"internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	"internhub/contexts/internal-ops/admin-dashboard-service/application"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Stats          ports.StatsRepository
	Audit          ports.AuditRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Stats:          deps.Stats,
		Audit:          deps.Audit,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Stats:          store,
		Audit:          store,
		Idempotency:    store,
		Clock:          store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
