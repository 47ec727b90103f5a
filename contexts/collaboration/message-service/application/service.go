package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/collaboration/message-service/domain/errors"
	"pressboard/contexts/collaboration/message-service/ports"
	"pressboard/internal/shared/events"
)

type Service struct {
	Repo   ports.Repository
	Board  ports.BoardPublisher
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) PostMessage(ctx context.Context, taskID, authorID, text string) (ports.Message, error) {
	taskID = strings.TrimSpace(taskID)
	authorID = strings.TrimSpace(authorID)
	if taskID == "" || authorID == "" || strings.TrimSpace(text) == "" {
		return ports.Message{}, domainerrors.ErrInvalidMessageInput
	}

	messageID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Message{}, err
	}
	message := ports.Message{
		MessageID: messageID,
		TaskID:    taskID,
		UserID:    authorID,
		Text:      strings.TrimSpace(text),
		CreatedAt: s.now(),
	}
	if err := s.Repo.CreateMessage(ctx, message); err != nil {
		return ports.Message{}, err
	}

	if s.Board != nil {
		s.Board.Publish(events.BoardEvent{
			Type:      events.EventNewMessage,
			TaskID:    taskID,
			UserID:    authorID,
			MessageID: messageID,
		})
	}
	resolveLogger(s.Logger).Info("message posted",
		"event", "message_posted",
		"module", "collaboration/message-service",
		"layer", "application",
		"task_id", taskID,
		"message_id", messageID,
	)
	return message, nil
}

func (s Service) ListMessages(ctx context.Context, taskID string) ([]ports.Message, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, domainerrors.ErrInvalidMessageInput
	}
	return s.Repo.ListMessagesByTask(ctx, strings.TrimSpace(taskID))
}

func (s Service) MarkRead(ctx context.Context, taskID, readerID string) error {
	if strings.TrimSpace(taskID) == "" || strings.TrimSpace(readerID) == "" {
		return domainerrors.ErrInvalidMessageInput
	}
	return s.Repo.MarkMessagesRead(ctx, strings.TrimSpace(taskID), strings.TrimSpace(readerID))
}

func (s Service) UnreadCount(ctx context.Context, taskID, readerID string) (int, error) {
	if strings.TrimSpace(taskID) == "" || strings.TrimSpace(readerID) == "" {
		return 0, domainerrors.ErrInvalidMessageInput
	}
	return s.Repo.CountUnread(ctx, strings.TrimSpace(taskID), strings.TrimSpace(readerID))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
