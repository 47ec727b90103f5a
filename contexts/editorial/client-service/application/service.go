package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/editorial/client-service/domain/errors"
	"pressboard/contexts/editorial/client-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type CreateClientInput struct {
	FirstName        string
	LastName         string
	AvatarURL        string
	Company          string
	Position         string
	Phone            string
	Email            string
	TelegramUsername string
	LawyerName       string
	LawyerContact    string
}

func (s Service) CreateClient(ctx context.Context, input CreateClientInput) (ports.Client, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return ports.Client{}, domainerrors.ErrInvalidClientInput
	}

	clientID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Client{}, err
	}
	now := s.now()
	client := ports.Client{
		ClientID:         clientID,
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		AvatarURL:        strings.TrimSpace(input.AvatarURL),
		Company:          strings.TrimSpace(input.Company),
		Position:         strings.TrimSpace(input.Position),
		Phone:            strings.TrimSpace(input.Phone),
		Email:            strings.TrimSpace(input.Email),
		TelegramUsername: strings.TrimSpace(input.TelegramUsername),
		LawyerName:       strings.TrimSpace(input.LawyerName),
		LawyerContact:    strings.TrimSpace(input.LawyerContact),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.CreateClient(ctx, client); err != nil {
		return ports.Client{}, err
	}

	resolveLogger(s.Logger).Info("client created",
		"event", "client_created",
		"module", "editorial/client-service",
		"layer", "application",
		"client_id", client.ClientID,
	)
	return client, nil
}

func (s Service) UpdateClient(ctx context.Context, clientID string, update ports.ClientUpdate) (ports.Client, error) {
	client, err := s.Repo.GetClient(ctx, strings.TrimSpace(clientID))
	if err != nil {
		return ports.Client{}, err
	}

	applyString(&client.FirstName, update.FirstName)
	applyString(&client.LastName, update.LastName)
	applyString(&client.AvatarURL, update.AvatarURL)
	applyString(&client.Company, update.Company)
	applyString(&client.Position, update.Position)
	applyString(&client.Phone, update.Phone)
	applyString(&client.Email, update.Email)
	applyString(&client.TelegramUsername, update.TelegramUsername)
	applyString(&client.LawyerName, update.LawyerName)
	applyString(&client.LawyerContact, update.LawyerContact)
	if strings.TrimSpace(client.FirstName) == "" || strings.TrimSpace(client.LastName) == "" {
		return ports.Client{}, domainerrors.ErrInvalidClientInput
	}
	client.UpdatedAt = s.now()

	if err := s.Repo.UpdateClient(ctx, client); err != nil {
		return ports.Client{}, err
	}
	return client, nil
}

func (s Service) GetClient(ctx context.Context, clientID string) (ports.Client, error) {
	if strings.TrimSpace(clientID) == "" {
		return ports.Client{}, domainerrors.ErrInvalidClientInput
	}
	return s.Repo.GetClient(ctx, strings.TrimSpace(clientID))
}

func (s Service) ListClients(ctx context.Context, search string) ([]ports.Client, error) {
	return s.Repo.ListClients(ctx, strings.TrimSpace(search))
}

func (s Service) DeleteClient(ctx context.Context, clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return domainerrors.ErrInvalidClientInput
	}
	return s.Repo.DeleteClient(ctx, strings.TrimSpace(clientID))
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
