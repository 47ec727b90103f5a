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

type UndoCommand struct {
	TaskID string
}

type UndoUseCase struct {
	Tasks  ports.TaskRepository
	Ledger ports.UndoLedger
	Board  ports.BoardPublisher
	Locks  *application.TaskLocks
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute reverses the most recent status transition. The ledger read is
// destructive, so a second undo without an intervening transition fails.
func (uc UndoUseCase) Execute(ctx context.Context, cmd UndoCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.TaskID)

	release := uc.Locks.Lock(taskID)
	defer release()

	now := uc.Clock.Now().UTC()
	snapshot, ok, err := uc.Ledger.GetAndConsume(ctx, taskID, now)
	if err != nil {
		return entities.Task{}, err
	}
	if !ok {
		return entities.Task{}, domainerrors.ErrNoUndoAvailable
	}

	task, err := uc.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return entities.Task{}, err
	}

	task.Status = snapshot.Status
	task.StatusChangedAt = snapshot.StatusChangedAt
	task.Iteration = snapshot.Iteration
	if err := uc.Tasks.CommitUndo(ctx, task); err != nil {
		return entities.Task{}, err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:   events.EventTaskUndo,
		TaskID: task.TaskID,
	})

	logger.Info("task status change undone",
		"event", "task_undo",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"restored_status", string(task.Status),
		"iteration", task.Iteration,
	)
	return task, nil
}
