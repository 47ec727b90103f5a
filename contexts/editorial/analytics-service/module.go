package analyticsservice

import (
	"log/slog"

	httpadapter "pressboard/contexts/editorial/analytics-service/adapters/http"
	"pressboard/contexts/editorial/analytics-service/adapters/memory"
	"pressboard/contexts/editorial/analytics-service/application"
	"pressboard/contexts/editorial/analytics-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Stats  ports.StatsRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Stats:  deps.Stats,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []ports.TaskStat, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Stats:  store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
