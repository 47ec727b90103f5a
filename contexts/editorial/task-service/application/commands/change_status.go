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

// UndoWindow is how long a transition stays reversible.
const UndoWindow = 20 * time.Second

type ChangeStatusCommand struct {
	TaskID             string
	ActorID            string
	ToStatus           entities.TaskStatus
	Comment            string
	PostponeReason     string
	PostponeResumeDate *time.Time
}

type ChangeStatusUseCase struct {
	Tasks    ports.TaskRepository
	Ledger   ports.UndoLedger
	Board    ports.BoardPublisher
	Notifier ports.Notifier
	Locks    *application.TaskLocks
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)
	taskID := strings.TrimSpace(cmd.TaskID)
	if !entities.IsSupportedStatus(cmd.ToStatus) {
		return entities.Task{}, domainerrors.ErrInvalidStatus
	}

	release := uc.Locks.Lock(taskID)
	defer release()

	task, err := uc.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return entities.Task{}, err
	}

	from := task.Status
	forward := entities.IsForwardMove(from, cmd.ToStatus)
	if !forward && strings.TrimSpace(cmd.Comment) == "" {
		return entities.Task{}, domainerrors.ErrCommentRequired
	}

	now := uc.Clock.Now().UTC()
	snapshot := ports.UndoSnapshot{
		Status:          from,
		StatusChangedAt: task.StatusChangedAt,
		Iteration:       task.Iteration,
	}
	if err := uc.Ledger.Put(ctx, taskID, snapshot, now.Add(UndoWindow)); err != nil {
		return entities.Task{}, err
	}

	// Leaving postponed never counts as a revision cycle even though it
	// is never a forward move.
	if !forward && from != entities.TaskStatusPostponed {
		task.Iteration++
	}
	task.Status = cmd.ToStatus
	task.StatusChangedAt = now
	if cmd.ToStatus == entities.TaskStatusPostponed {
		task.PostponeReason = cmd.PostponeReason
		task.PostponeResumeDate = cmd.PostponeResumeDate
	}

	entryID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Task{}, err
	}
	entry := entities.StatusHistoryEntry{
		EntryID:    entryID,
		TaskID:     task.TaskID,
		UserID:     strings.TrimSpace(cmd.ActorID),
		FromStatus: from,
		ToStatus:   cmd.ToStatus,
		Comment:    strings.TrimSpace(cmd.Comment),
		Iteration:  task.Iteration,
		CreatedAt:  now,
	}
	if err := uc.Tasks.CommitStatusChange(ctx, task, entry); err != nil {
		return entities.Task{}, err
	}

	uc.Board.Publish(ports.BoardEvent{
		Type:       events.EventTaskStatusChanged,
		TaskID:     task.TaskID,
		FromStatus: string(from),
		ToStatus:   string(cmd.ToStatus),
	})

	if !forward && uc.Notifier != nil && task.AuthorID != "" && task.AuthorID != entry.UserID {
		if err := uc.Notifier.Notify(ctx, task.AuthorID, "task_returned", map[string]string{
			"task_id":   task.TaskID,
			"title":     task.Title,
			"to_status": string(cmd.ToStatus),
			"comment":   entry.Comment,
		}); err != nil {
			logger.Warn("task notification failed",
				"event", "task_notify_failed",
				"module", "editorial/task-service",
				"layer", "application",
				"task_id", task.TaskID,
				"error", err.Error(),
			)
		}
	}

	logger.Info("task status changed",
		"event", "task_status_changed",
		"module", "editorial/task-service",
		"layer", "application",
		"task_id", task.TaskID,
		"from_status", string(from),
		"to_status", string(cmd.ToStatus),
		"forward", forward,
		"iteration", task.Iteration,
	)
	return task, nil
}
