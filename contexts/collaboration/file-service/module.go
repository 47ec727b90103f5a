package fileservice

import (
	"log/slog"

	httpadapter "pressboard/contexts/collaboration/file-service/adapters/http"
	"pressboard/contexts/collaboration/file-service/adapters/memory"
	"pressboard/contexts/collaboration/file-service/application"
	"pressboard/contexts/collaboration/file-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo          ports.Repository
	Blobs         ports.BlobStore
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
	MaxUploadSize int64
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:          deps.Repo,
				Blobs:         deps.Blobs,
				Clock:         deps.Clock,
				IDGen:         deps.IDGen,
				Logger:        deps.Logger,
				MaxUploadSize: deps.MaxUploadSize,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Blobs:  store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
