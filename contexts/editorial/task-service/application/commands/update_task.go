package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	"pressboard/contexts/editorial/task-service/ports"
	"pressboard/internal/shared/events"
)

// UpdateTaskCommand carries partial updates. Nil fields are left untouched.
// Status is deliberately absent: status moves go through ChangeStatusUseCase.
type UpdateTaskCommand struct {
	TaskID string

	ClientID    *string
	OutletID    *string
	AuthorID    *string
	EditorID    *string
	ManagerID   *string
	Title       *string
	Description *string
	TaskType    *entities.TaskType
	Language    *string

	GoogleDocURL   *string
	GoogleFormsURL *string

	PublicationURL  *string
	PublicationDate *time.Time
	ClientGratitude *string
	SentToWhom      *string
	SentMethod      *string
}

type UpdateTaskUseCase struct {
	Tasks  ports.TaskRepository
	Board  ports.BoardPublisher
	Locks  *application.TaskLocks
	Logger *slog.Logger
}

func (uc UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.TaskID)

	release := uc.Locks.Lock(taskID)
	defer release()

	task, err := uc.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return entities.Task{}, err
	}

	if cmd.Title != nil {
		if strings.TrimSpace(*cmd.Title) == "" {
			return entities.Task{}, domainerrors.ErrInvalidTaskInput
		}
		task.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.TaskType != nil {
		if !entities.IsSupportedTaskType(*cmd.TaskType) {
			return entities.Task{}, domainerrors.ErrInvalidTaskInput
		}
		task.TaskType = *cmd.TaskType
	}
	if cmd.ClientID != nil {
		task.ClientID = strings.TrimSpace(*cmd.ClientID)
	}
	if cmd.OutletID != nil {
		task.OutletID = strings.TrimSpace(*cmd.OutletID)
	}
	if cmd.AuthorID != nil {
		task.AuthorID = strings.TrimSpace(*cmd.AuthorID)
	}
	if cmd.EditorID != nil {
		task.EditorID = strings.TrimSpace(*cmd.EditorID)
	}
	if cmd.ManagerID != nil {
		task.ManagerID = strings.TrimSpace(*cmd.ManagerID)
	}
	if cmd.Description != nil {
		task.Description = *cmd.Description
	}
	if cmd.Language != nil {
		task.Language = strings.TrimSpace(*cmd.Language)
	}
	if cmd.GoogleDocURL != nil {
		task.GoogleDocURL = strings.TrimSpace(*cmd.GoogleDocURL)
	}
	if cmd.GoogleFormsURL != nil {
		task.GoogleFormsURL = strings.TrimSpace(*cmd.GoogleFormsURL)
	}
	if cmd.PublicationURL != nil {
		task.PublicationURL = strings.TrimSpace(*cmd.PublicationURL)
	}
	if cmd.PublicationDate != nil {
		task.PublicationDate = cmd.PublicationDate
	}
	if cmd.ClientGratitude != nil {
		task.ClientGratitude = *cmd.ClientGratitude
	}
	if cmd.SentToWhom != nil {
		task.SentToWhom = strings.TrimSpace(*cmd.SentToWhom)
	}
	if cmd.SentMethod != nil {
		task.SentMethod = strings.TrimSpace(*cmd.SentMethod)
	}

	if err := uc.Tasks.UpdateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:   events.EventTaskUpdated,
		TaskID: task.TaskID,
	})

	logger.Info("task updated",
		"event", "task_updated",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", task.TaskID,
	)
	return task, nil
}
