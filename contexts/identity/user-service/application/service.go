package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/identity/user-service/domain/errors"
	"pressboard/contexts/identity/user-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type RegisterUserInput struct {
	Email            string
	FirstName        string
	LastName         string
	AvatarURL        string
	Phone            string
	TelegramUsername string
	Topics           []string
	Bio              string
	Languages        []string
}

func (s Service) RegisterUser(ctx context.Context, input RegisterUserInput) (ports.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return ports.User{}, domainerrors.ErrInvalidUserInput
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return ports.User{}, domainerrors.ErrInvalidUserInput
	}

	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.User{}, err
	}
	languages := input.Languages
	if len(languages) == 0 {
		languages = []string{"RU"}
	}
	now := s.now()
	user := ports.User{
		UserID:           userID,
		Email:            email,
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		AvatarURL:        strings.TrimSpace(input.AvatarURL),
		Phone:            strings.TrimSpace(input.Phone),
		TelegramUsername: strings.TrimSpace(input.TelegramUsername),
		Topics:           input.Topics,
		Bio:              strings.TrimSpace(input.Bio),
		Languages:        languages,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return ports.User{}, err
	}

	resolveLogger(s.Logger).Info("user registered",
		"event", "user_registered",
		"module", "identity/user-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return user, nil
}

// UpdateProfile only lets users edit their own record.
func (s Service) UpdateProfile(ctx context.Context, actorID, userID string, update ports.UserUpdate) (ports.User, error) {
	if strings.TrimSpace(actorID) != strings.TrimSpace(userID) {
		return ports.User{}, domainerrors.ErrForbidden
	}

	user, err := s.Repo.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return ports.User{}, err
	}

	applyString(&user.FirstName, update.FirstName)
	applyString(&user.LastName, update.LastName)
	applyString(&user.AvatarURL, update.AvatarURL)
	applyString(&user.Phone, update.Phone)
	applyString(&user.TelegramUsername, update.TelegramUsername)
	applyString(&user.Bio, update.Bio)
	if update.Topics != nil {
		user.Topics = update.Topics
	}
	if update.Languages != nil {
		user.Languages = update.Languages
	}
	if strings.TrimSpace(user.FirstName) == "" || strings.TrimSpace(user.LastName) == "" {
		return ports.User{}, domainerrors.ErrInvalidUserInput
	}
	user.UpdatedAt = s.now()

	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return ports.User{}, err
	}
	return user, nil
}

func (s Service) GetUser(ctx context.Context, userID string) (ports.User, error) {
	if strings.TrimSpace(userID) == "" {
		return ports.User{}, domainerrors.ErrInvalidUserInput
	}
	return s.Repo.GetUser(ctx, strings.TrimSpace(userID))
}

func (s Service) ListUsers(ctx context.Context, search string) ([]ports.User, error) {
	return s.Repo.ListUsers(ctx, strings.TrimSpace(search))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}
