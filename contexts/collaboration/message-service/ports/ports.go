package ports

import (
	"context"
	"time"

	"pressboard/internal/shared/events"
)

// Message is one entry in a task's discussion thread.
type Message struct {
	MessageID string
	TaskID    string
	UserID    string
	Text      string
	IsRead    bool
	CreatedAt time.Time
}

type Repository interface {
	CreateMessage(ctx context.Context, message Message) error
	ListMessagesByTask(ctx context.Context, taskID string) ([]Message, error)
	// MarkMessagesRead flags every message in the task not authored by readerID.
	MarkMessagesRead(ctx context.Context, taskID, readerID string) error
	CountUnread(ctx context.Context, taskID, readerID string) (int, error)
}

type BoardEvent = events.BoardEvent

type BoardPublisher interface {
	Publish(event BoardEvent)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
