package application

import (
	"context"
	"errors"
	"testing"

	"pressboard/contexts/collaboration/message-service/adapters/memory"
	domainerrors "pressboard/contexts/collaboration/message-service/domain/errors"
	"pressboard/contexts/collaboration/message-service/ports"
	"pressboard/internal/shared/events"
)

type boardRecorder struct {
	published []events.BoardEvent
}

func (b *boardRecorder) Publish(event events.BoardEvent) {
	b.published = append(b.published, event)
}

func newService(board ports.BoardPublisher) Service {
	store := memory.NewStore(nil)
	return Service{Repo: store, Board: board, Clock: store, IDGen: store}
}

func TestPostMessagePublishesBoardEvent(t *testing.T) {
	board := &boardRecorder{}
	service := newService(board)

	message, err := service.PostMessage(context.Background(), "task-1", "user-1", "draft attached")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if message.MessageID == "" || message.IsRead {
		t.Fatalf("bad message: %+v", message)
	}
	if len(board.published) != 1 {
		t.Fatalf("expected one board event, got %d", len(board.published))
	}
	event := board.published[0]
	if event.Type != events.EventNewMessage || event.TaskID != "task-1" || event.MessageID != message.MessageID {
		t.Fatalf("wrong event: %+v", event)
	}
}

func TestPostMessageRejectsEmptyText(t *testing.T) {
	service := newService(nil)

	_, err := service.PostMessage(context.Background(), "task-1", "user-1", "   ")
	if !errors.Is(err, domainerrors.ErrInvalidMessageInput) {
		t.Fatalf("expected ErrInvalidMessageInput, got %v", err)
	}
}

func TestListMessagesAscending(t *testing.T) {
	service := newService(nil)
	ctx := context.Background()

	first, _ := service.PostMessage(ctx, "task-1", "user-1", "first")
	second, _ := service.PostMessage(ctx, "task-1", "user-2", "second")
	_, _ = service.PostMessage(ctx, "task-2", "user-1", "other thread")

	items, err := service.ListMessages(ctx, "task-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0].MessageID != first.MessageID || items[1].MessageID != second.MessageID {
		t.Fatalf("wrong thread: %+v", items)
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	service := newService(nil)
	ctx := context.Background()

	_, _ = service.PostMessage(ctx, "task-1", "author", "one")
	_, _ = service.PostMessage(ctx, "task-1", "author", "two")
	_, _ = service.PostMessage(ctx, "task-1", "reader", "mine")

	count, err := service.UnreadCount(ctx, "task-1", "reader")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	if err := service.MarkRead(ctx, "task-1", "reader"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	count, _ = service.UnreadCount(ctx, "task-1", "reader")
	if count != 0 {
		t.Fatalf("expected 0 unread after mark read, got %d", count)
	}

	// The author's own message stays untouched for other readers.
	count, _ = service.UnreadCount(ctx, "task-1", "author")
	if count != 1 {
		t.Fatalf("expected 1 unread for author, got %d", count)
	}
}
