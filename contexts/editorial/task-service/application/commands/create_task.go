package commands

import (
	"context"
	"log/slog"
	"strings"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	"pressboard/contexts/editorial/task-service/ports"
	"pressboard/internal/shared/events"
)

type CreateTaskCommand struct {
	ClientID    string
	OutletID    string
	AuthorID    string
	EditorID    string
	ManagerID   string
	Title       string
	Description string
	TaskType    entities.TaskType
	Language    string

	GoogleDocURL   string
	GoogleFormsURL string
}

type CreateTaskUseCase struct {
	Tasks  ports.TaskRepository
	Board  ports.BoardPublisher
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	title := strings.TrimSpace(cmd.Title)
	clientID := strings.TrimSpace(cmd.ClientID)
	if title == "" || clientID == "" {
		return entities.Task{}, domainerrors.ErrInvalidTaskInput
	}
	taskType := cmd.TaskType
	if taskType == "" {
		taskType = entities.TaskTypeArticle
	}
	if !entities.IsSupportedTaskType(taskType) {
		return entities.Task{}, domainerrors.ErrInvalidTaskInput
	}
	language := strings.TrimSpace(cmd.Language)
	if language == "" {
		language = "RU"
	}

	taskID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	now := uc.Clock.Now().UTC()
	task := entities.Task{
		TaskID:          taskID,
		ClientID:        clientID,
		OutletID:        strings.TrimSpace(cmd.OutletID),
		AuthorID:        strings.TrimSpace(cmd.AuthorID),
		EditorID:        strings.TrimSpace(cmd.EditorID),
		ManagerID:       strings.TrimSpace(cmd.ManagerID),
		Title:           title,
		Description:     cmd.Description,
		TaskType:        taskType,
		Language:        language,
		Status:          entities.TaskStatusNew,
		GoogleDocURL:    strings.TrimSpace(cmd.GoogleDocURL),
		GoogleFormsURL:  strings.TrimSpace(cmd.GoogleFormsURL),
		Iteration:       0,
		StatusChangedAt: now,
		CreatedAt:       now,
	}
	if err := uc.Tasks.CreateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:   events.EventTaskCreated,
		TaskID: task.TaskID,
	})

	logger.Info("task created",
		"event", "task_created",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"client_id", task.ClientID,
	)
	return task, nil
}
