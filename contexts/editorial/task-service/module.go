package taskservice

import (
	"log/slog"

	httpadapter "pressboard/contexts/editorial/task-service/adapters/http"
	"pressboard/contexts/editorial/task-service/adapters/memory"
	"pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/application/commands"
	"pressboard/contexts/editorial/task-service/application/queries"
	"pressboard/contexts/editorial/task-service/domain/entities"
	"pressboard/contexts/editorial/task-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Tasks    ports.TaskRepository
	History  ports.HistoryRepository
	Ledger   ports.UndoLedger
	Board    ports.BoardPublisher
	Notifier ports.Notifier
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	locks := application.NewTaskLocks()

	createTask := commands.CreateTaskUseCase{
		Tasks:  deps.Tasks,
		Board:  deps.Board,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	updateTask := commands.UpdateTaskUseCase{
		Tasks:  deps.Tasks,
		Board:  deps.Board,
		Locks:  locks,
		Logger: deps.Logger,
	}
	deleteTask := commands.DeleteTaskUseCase{
		Tasks:  deps.Tasks,
		Board:  deps.Board,
		Locks:  locks,
		Logger: deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Tasks:    deps.Tasks,
		Ledger:   deps.Ledger,
		Board:    deps.Board,
		Notifier: deps.Notifier,
		Locks:    locks,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	takeTask := commands.TakeTaskUseCase{
		Tasks:  deps.Tasks,
		Board:  deps.Board,
		Locks:  locks,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	undo := commands.UndoUseCase{
		Tasks:  deps.Tasks,
		Ledger: deps.Ledger,
		Board:  deps.Board,
		Locks:  locks,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateTask:   createTask,
			UpdateTask:   updateTask,
			DeleteTask:   deleteTask,
			ChangeStatus: changeStatus,
			TakeTask:     takeTask,
			Undo:         undo,
			GetTask:      queries.GetTaskUseCase{Tasks: deps.Tasks, Logger: deps.Logger},
			ListTasks:    queries.ListTasksUseCase{Tasks: deps.Tasks, Logger: deps.Logger},
			ListHistory:  queries.ListHistoryUseCase{History: deps.History, Logger: deps.Logger},
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Task, board ports.BoardPublisher, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	if board == nil {
		board = dropPublisher{}
	}
	module := NewModule(Dependencies{
		Tasks:   store,
		History: store,
		Ledger:  store,
		Board:   board,
		Clock:   store,
		IDGen:   store,
		Logger:  logger,
	})
	module.Store = store
	return module
}

type dropPublisher struct{}

func (dropPublisher) Publish(ports.BoardEvent) {}
