package commands

import (
	"context"
	"log/slog"
	"strings"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/ports"
	"pressboard/internal/shared/events"
)

type DeleteTaskCommand struct {
	TaskID string
}

type DeleteTaskUseCase struct {
	Tasks  ports.TaskRepository
	Board  ports.BoardPublisher
	Locks  *application.TaskLocks
	Logger *slog.Logger
}

func (uc DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.TaskID)

	release := uc.Locks.Lock(taskID)
	defer release()

	if _, err := uc.Tasks.GetTask(ctx, taskID); err != nil {
		return err
	}
	if err := uc.Tasks.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:   events.EventTaskDeleted,
		TaskID: taskID,
	})

	logger.Info("task deleted",
		"event", "task_deleted",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", taskID,
	)
	return nil
}
