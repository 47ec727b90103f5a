package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	fileservice "pressboard/contexts/collaboration/file-service"
	fileblobfs "pressboard/contexts/collaboration/file-service/adapters/fs"
	filepostgres "pressboard/contexts/collaboration/file-service/adapters/postgres"
	messageservice "pressboard/contexts/collaboration/message-service"
	messagepostgres "pressboard/contexts/collaboration/message-service/adapters/postgres"
	analyticsservice "pressboard/contexts/editorial/analytics-service"
	analyticspostgres "pressboard/contexts/editorial/analytics-service/adapters/postgres"
	clientservice "pressboard/contexts/editorial/client-service"
	clientpostgres "pressboard/contexts/editorial/client-service/adapters/postgres"
	outletservice "pressboard/contexts/editorial/outlet-service"
	outletpostgres "pressboard/contexts/editorial/outlet-service/adapters/postgres"
	taskservice "pressboard/contexts/editorial/task-service"
	taskmemory "pressboard/contexts/editorial/task-service/adapters/memory"
	taskpostgres "pressboard/contexts/editorial/task-service/adapters/postgres"
	taskredis "pressboard/contexts/editorial/task-service/adapters/redis"
	"pressboard/contexts/editorial/task-service/application/workers"
	"pressboard/contexts/editorial/task-service/ports"
	userservice "pressboard/contexts/identity/user-service"
	userpostgres "pressboard/contexts/identity/user-service/adapters/postgres"
	"pressboard/internal/platform/broadcast"
	"pressboard/internal/platform/config"
	"pressboard/internal/platform/db"
	"pressboard/internal/platform/httpserver"
	"pressboard/internal/platform/notify"
	"pressboard/internal/platform/redisconn"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	hub      *broadcast.Hub
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	reminder     workers.ReminderJob
	pollInterval time.Duration
	enabled      bool
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	hub := broadcast.NewHub(logger)
	notifier := buildNotifier(cfg, logger)

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		modules, err := buildMemoryModules(cfg, hub, notifier, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("running with in-memory stores",
			"event", "bootstrap_memory_mode",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		return &APIApp{
			server: httpserver.New(modules, hub, logger, normalizeAddr(cfg.HTTPPort)),
			hub:    hub,
			logger: logger,
		}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	ledger, err := buildUndoLedger(cfg)
	if err != nil {
		pg.Close()
		return nil, err
	}

	taskRepo := taskpostgres.NewRepository(pg.DB, logger)
	taskModule := taskservice.NewModule(taskservice.Dependencies{
		Tasks:    taskRepo,
		History:  taskRepo,
		Ledger:   ledger,
		Board:    hub,
		Notifier: notifier,
		Clock:    taskpostgres.SystemClock{},
		IDGen:    taskpostgres.UUIDGenerator{},
		Logger:   logger,
	})

	clientModule := clientservice.NewModule(clientservice.Dependencies{
		Repo:   clientpostgres.NewRepository(pg.DB, logger),
		Clock:  clientpostgres.SystemClock{},
		IDGen:  clientpostgres.UUIDGenerator{},
		Logger: logger,
	})

	outletModule := outletservice.NewModule(outletservice.Dependencies{
		Repo:   outletpostgres.NewRepository(pg.DB, logger),
		Clock:  outletpostgres.SystemClock{},
		IDGen:  outletpostgres.UUIDGenerator{},
		Logger: logger,
	})

	userModule := userservice.NewModule(userservice.Dependencies{
		Repo:   userpostgres.NewRepository(pg.DB, logger),
		Clock:  userpostgres.SystemClock{},
		IDGen:  userpostgres.UUIDGenerator{},
		Logger: logger,
	})

	messageModule := messageservice.NewModule(messageservice.Dependencies{
		Repo:   messagepostgres.NewRepository(pg.DB, logger),
		Board:  hub,
		Clock:  messagepostgres.SystemClock{},
		IDGen:  messagepostgres.UUIDGenerator{},
		Logger: logger,
	})

	blobs, err := fileblobfs.NewBlobStore(cfg.UploadDir)
	if err != nil {
		pg.Close()
		return nil, err
	}
	fileModule := fileservice.NewModule(fileservice.Dependencies{
		Repo:          filepostgres.NewRepository(pg.DB, logger),
		Blobs:         blobs,
		Clock:         filepostgres.SystemClock{},
		IDGen:         filepostgres.UUIDGenerator{},
		Logger:        logger,
		MaxUploadSize: cfg.MaxUploadSize,
	})

	analyticsModule := analyticsservice.NewModule(analyticsservice.Dependencies{
		Stats:  analyticspostgres.NewRepository(pg.DB, logger),
		Clock:  analyticspostgres.SystemClock{},
		Logger: logger,
	})

	modules := httpserver.Modules{
		Tasks:     taskModule,
		Clients:   clientModule,
		Outlets:   outletModule,
		Users:     userModule,
		Messages:  messageModule,
		Files:     fileModule,
		Analytics: analyticsModule,
	}

	return &APIApp{
		server:   httpserver.New(modules, hub, logger, normalizeAddr(cfg.HTTPPort)),
		hub:      hub,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	notifier := buildNotifier(cfg, logger)

	app := WorkerApp{
		pollInterval: cfg.ReminderInterval,
		enabled:      cfg.EnableReminders,
		logger:       logger,
	}

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		store := taskmemory.NewStore(nil)
		app.reminder = workers.ReminderJob{
			Tasks:    store,
			Notifier: notifier,
			Clock:    store,
			Logger:   logger,
		}
		return &app, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	app.postgres = pg
	app.reminder = workers.ReminderJob{
		Tasks:    taskpostgres.NewRepository(pg.DB, logger),
		Notifier: notifier,
		Clock:    taskpostgres.SystemClock{},
		Logger:   logger,
	}
	return &app, nil
}

func buildMemoryModules(cfg config.Config, hub *broadcast.Hub, notifier ports.Notifier, logger *slog.Logger) (httpserver.Modules, error) {
	taskModule := taskservice.NewInMemoryModule(nil, hub, logger)
	taskModule.Handler.ChangeStatus.Notifier = notifier

	blobs, err := fileblobfs.NewBlobStore(cfg.UploadDir)
	if err != nil {
		return httpserver.Modules{}, err
	}
	inMemoryFiles := fileservice.NewInMemoryModule(logger)
	fileModule := fileservice.NewModule(fileservice.Dependencies{
		Repo:          inMemoryFiles.Store,
		Blobs:         blobs,
		Clock:         inMemoryFiles.Store,
		IDGen:         inMemoryFiles.Store,
		Logger:        logger,
		MaxUploadSize: cfg.MaxUploadSize,
	})
	fileModule.Store = inMemoryFiles.Store

	return httpserver.Modules{
		Tasks:     taskModule,
		Clients:   clientservice.NewInMemoryModule(nil, logger),
		Outlets:   outletservice.NewInMemoryModule(nil, logger),
		Users:     userservice.NewInMemoryModule(nil, logger),
		Messages:  messageservice.NewInMemoryModule(nil, hub, logger),
		Files:     fileModule,
		Analytics: analyticsservice.NewInMemoryModule(nil, logger),
	}, nil
}

func buildUndoLedger(cfg config.Config) (ports.UndoLedger, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return taskmemory.NewStore(nil), nil
	}
	client, err := redisconn.Connect(cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	return taskredis.NewUndoLedger(client), nil
}

func buildNotifier(cfg config.Config, logger *slog.Logger) ports.Notifier {
	if strings.TrimSpace(cfg.TelegramBotToken) == "" {
		return notify.Noop{}
	}
	return notify.NewTelegram(cfg.TelegramBotToken, logger)
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
	if a.hub != nil {
		a.hub.CloseAll()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("reminders disabled, worker idle",
			"event", "bootstrap_reminders_disabled",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.reminder.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
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
