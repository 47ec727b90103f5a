package messageservice

import (
	"log/slog"

	httpadapter "pressboard/contexts/collaboration/message-service/adapters/http"
	"pressboard/contexts/collaboration/message-service/adapters/memory"
	"pressboard/contexts/collaboration/message-service/application"
	"pressboard/contexts/collaboration/message-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Board  ports.BoardPublisher
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:   deps.Repo,
				Board:  deps.Board,
				Clock:  deps.Clock,
				IDGen:  deps.IDGen,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []ports.Message, board ports.BoardPublisher, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repo:   store,
		Board:  board,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
