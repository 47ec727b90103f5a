package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/collaboration/message-service/application"
	"pressboard/contexts/collaboration/message-service/ports"
	httptransport "pressboard/contexts/collaboration/message-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PostMessageHandler(ctx context.Context, taskID, actorID string, req httptransport.PostMessageRequest) (httptransport.MessageResponse, error) {
	message, err := h.Service.PostMessage(ctx, taskID, actorID, req.Text)
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: mapMessage(message)}, nil
}

func (h Handler) ListMessagesHandler(ctx context.Context, taskID string) (httptransport.ListMessagesResponse, error) {
	items, err := h.Service.ListMessages(ctx, taskID)
	if err != nil {
		return httptransport.ListMessagesResponse{}, err
	}
	resp := httptransport.ListMessagesResponse{Messages: make([]httptransport.MessageDTO, 0, len(items))}
	for _, item := range items {
		resp.Messages = append(resp.Messages, mapMessage(item))
	}
	return resp, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, taskID, actorID string) (httptransport.MarkReadResponse, error) {
	if err := h.Service.MarkRead(ctx, taskID, actorID); err != nil {
		return httptransport.MarkReadResponse{}, err
	}
	return httptransport.MarkReadResponse{OK: true}, nil
}

func (h Handler) UnreadCountHandler(ctx context.Context, taskID, actorID string) (httptransport.UnreadCountResponse, error) {
	count, err := h.Service.UnreadCount(ctx, taskID, actorID)
	if err != nil {
		return httptransport.UnreadCountResponse{}, err
	}
	return httptransport.UnreadCountResponse{Unread: count}, nil
}

func mapMessage(message ports.Message) httptransport.MessageDTO {
	return httptransport.MessageDTO{
		MessageID: message.MessageID,
		TaskID:    message.TaskID,
		UserID:    message.UserID,
		Text:      message.Text,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
