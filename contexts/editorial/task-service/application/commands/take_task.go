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

// takeComment is the fixed system comment written when an author claims a task.
const takeComment = "taken into work"

type TakeTaskCommand struct {
	TaskID  string
	ActorID string
}

type TakeTaskUseCase struct {
	Tasks  ports.TaskRepository
	Board  ports.BoardPublisher
	Locks  *application.TaskLocks
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Execute claims a new task for the acting user and moves it straight to
// in_progress. The shortcut bypasses the forward/backward classifier and
// leaves the iteration counter alone.
func (uc TakeTaskUseCase) Execute(ctx context.Context, cmd TakeTaskCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.TaskID)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return entities.Task{}, domainerrors.ErrInvalidTaskInput
	}

	release := uc.Locks.Lock(taskID)
	defer release()

	task, err := uc.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if task.Status != entities.TaskStatusNew {
		return entities.Task{}, domainerrors.ErrTaskNotTakeable
	}

	now := uc.Clock.Now().UTC()
	task.AuthorID = actorID
	task.Status = entities.TaskStatusInProgress
	task.StatusChangedAt = now

	entryID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	entry := entities.StatusHistoryEntry{
		EntryID:    entryID,
		TaskID:     task.TaskID,
		UserID:     actorID,
		FromStatus: entities.TaskStatusNew,
		ToStatus:   entities.TaskStatusInProgress,
		Comment:    takeComment,
		Iteration:  task.Iteration,
		CreatedAt:  now,
	}
	if err := uc.Tasks.CommitStatusChange(ctx, task, entry); err != nil {
		return entities.Task{}, err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:   events.EventTaskTaken,
		TaskID: task.TaskID,
		UserID: actorID,
	})

	logger.Info("task taken",
		"event", "task_taken",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"author_id", actorID,
	)
	return task, nil
}
