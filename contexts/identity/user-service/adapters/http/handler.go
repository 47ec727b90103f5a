package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/identity/user-service/application"
	"pressboard/contexts/identity/user-service/ports"
	httptransport "pressboard/contexts/identity/user-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterUserHandler(ctx context.Context, req httptransport.RegisterUserRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.RegisterUser(ctx, application.RegisterUserInput{
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AvatarURL:        req.AvatarURL,
		Phone:            req.Phone,
		TelegramUsername: req.TelegramUsername,
		Topics:           req.Topics,
		Bio:              req.Bio,
		Languages:        req.Languages,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{User: mapUser(user)}, nil
}

func (h Handler) UpdateUserHandler(ctx context.Context, actorID, userID string, req httptransport.UpdateUserRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.UpdateProfile(ctx, actorID, userID, ports.UserUpdate{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AvatarURL:        req.AvatarURL,
		Phone:            req.Phone,
		TelegramUsername: req.TelegramUsername,
		Topics:           req.Topics,
		Bio:              req.Bio,
		Languages:        req.Languages,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{User: mapUser(user)}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.UserResponse, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{User: mapUser(user)}, nil
}

func (h Handler) ListUsersHandler(ctx context.Context, search string) (httptransport.ListUsersResponse, error) {
	items, err := h.Service.ListUsers(ctx, search)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	resp := httptransport.ListUsersResponse{Users: make([]httptransport.UserDTO, 0, len(items))}
	for _, item := range items {
		resp.Users = append(resp.Users, mapUser(item))
	}
	return resp, nil
}

func mapUser(user ports.User) httptransport.UserDTO {
	topics := user.Topics
	if topics == nil {
		topics = []string{}
	}
	languages := user.Languages
	if languages == nil {
		languages = []string{}
	}
	return httptransport.UserDTO{
		UserID:           user.UserID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		AvatarURL:        user.AvatarURL,
		Phone:            user.Phone,
		TelegramUsername: user.TelegramUsername,
		Topics:           topics,
		Bio:              user.Bio,
		Languages:        languages,
		CreatedAt:        user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
