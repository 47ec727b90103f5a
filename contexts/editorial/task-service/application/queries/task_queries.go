package queries

import (
	"context"
	"log/slog"
	"strings"

	"pressboard/contexts/editorial/task-service/domain/entities"
	"pressboard/contexts/editorial/task-service/ports"
)

type GetTaskUseCase struct {
	Tasks  ports.TaskRepository
	Logger *slog.Logger
}

func (uc GetTaskUseCase) Execute(ctx context.Context, taskID string) (entities.Task, error) {
	return uc.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
}

type ListTasksQuery struct {
	Status    string
	AuthorID  string
	EditorID  string
	ManagerID string
	ClientID  string
	OutletID  string
	Search    string
}

type ListTasksUseCase struct {
	Tasks  ports.TaskRepository
	Logger *slog.Logger
}

func (uc ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) ([]entities.Task, error) {
	return uc.Tasks.ListTasks(ctx, ports.TaskFilter{
		Status:    entities.TaskStatus(strings.TrimSpace(query.Status)),
		AuthorID:  strings.TrimSpace(query.AuthorID),
		EditorID:  strings.TrimSpace(query.EditorID),
		ManagerID: strings.TrimSpace(query.ManagerID),
		ClientID:  strings.TrimSpace(query.ClientID),
		OutletID:  strings.TrimSpace(query.OutletID),
		Search:    strings.TrimSpace(query.Search),
	})
}

type ListHistoryUseCase struct {
	History ports.HistoryRepository
	Logger  *slog.Logger
}

func (uc ListHistoryUseCase) Execute(ctx context.Context, taskID string) ([]entities.StatusHistoryEntry, error) {
	return uc.History.ListHistoryByTask(ctx, strings.TrimSpace(taskID))
}
