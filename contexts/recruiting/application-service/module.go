package applicationservice

import (
	"log/slog"

	httpadapter "internhub/contexts/recruiting/application-service/adapters/http"
	"internhub/contexts/recruiting/application-service/adapters/memory"
	"internhub/contexts/recruiting/application-service/application/commands"
	"internhub/contexts/recruiting/application-service/application/queries"
	"internhub/contexts/recruiting/application-service/ports"
)

type Module struct {
	Handler      httpadapter.Handler
	Apply        commands.ApplyUseCase
	UpdateStatus commands.UpdateStatusUseCase
	Queries      queries.QueryUseCase
	Store        *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	apply := commands.ApplyUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	updateStatus := commands.UpdateStatusUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Apply:        apply,
			UpdateStatus: updateStatus,
			Queries:      queryUseCase,
			Logger:       deps.Logger,
		},
		Apply:        apply,
		UpdateStatus: updateStatus,
		Queries:      queryUseCase,
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
