package ports

import (
	"context"
	"time"

	"pressboard/contexts/editorial/task-service/domain/entities"
	"pressboard/internal/shared/events"
)

type TaskFilter struct {
	Status    entities.TaskStatus
	AuthorID  string
	EditorID  string
	ManagerID string
	ClientID  string
	OutletID  string
	Search    string
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task entities.Task) error
	UpdateTask(ctx context.Context, task entities.Task) error
	GetTask(ctx context.Context, taskID string) (entities.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	// CommitStatusChange persists the mutated task and appends the history
	// entry in one atomic commit. Either both land or neither does.
	CommitStatusChange(ctx context.Context, task entities.Task, entry entities.StatusHistoryEntry) error

	// CommitUndo persists the restored task and deletes the newest history
	// entry for it in one atomic commit. Deleting is a no-op when the task
	// has no history.
	CommitUndo(ctx context.Context, task entities.Task) error
}

type HistoryRepository interface {
	ListHistoryByTask(ctx context.Context, taskID string) ([]entities.StatusHistoryEntry, error)
}

// UndoSnapshot captures the task fields restored by an undo.
type UndoSnapshot struct {
	Status          entities.TaskStatus
	StatusChangedAt time.Time
	Iteration       int
}

// UndoLedger is the short-lived snapshot store keyed by task id.
// Put overwrites any live snapshot for the key. GetAndConsume applies
// lazy expiry: it returns the snapshot only while now is before the
// expiry, and removes the entry either way.
type UndoLedger interface {
	Put(ctx context.Context, taskID string, snapshot UndoSnapshot, expiresAt time.Time) error
	GetAndConsume(ctx context.Context, taskID string, now time.Time) (UndoSnapshot, bool, error)
}

type BoardEvent = events.BoardEvent

// BoardPublisher fans a board event out to connected viewers.
// Delivery is best effort and must never fail the calling operation.
type BoardPublisher interface {
	Publish(event BoardEvent)
}

// Notifier delivers an out-of-band notification to one recipient.
// Errors are logged and swallowed by callers, never propagated.
type Notifier interface {
	Notify(ctx context.Context, recipientID string, kind string, fields map[string]string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
