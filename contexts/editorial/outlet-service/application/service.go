package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/editorial/outlet-service/domain/errors"
	"pressboard/contexts/editorial/outlet-service/ports"
)

const defaultLanguage = "RU"

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type CreateOutletInput struct {
	Name        string
	LogoURL     string
	Description string
	Category    string
	Language    string
	WebsiteURL  string
	Contacts    map[string]string
	Notes       string
}

func (s Service) CreateOutlet(ctx context.Context, input CreateOutletInput) (ports.Outlet, error) {
	if strings.TrimSpace(input.Name) == "" {
		return ports.Outlet{}, domainerrors.ErrInvalidOutletInput
	}

	outletID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Outlet{}, err
	}
	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = defaultLanguage
	}
	contacts := input.Contacts
	if contacts == nil {
		contacts = map[string]string{}
	}
	now := s.now()
	outlet := ports.Outlet{
		OutletID:    outletID,
		Name:        strings.TrimSpace(input.Name),
		LogoURL:     strings.TrimSpace(input.LogoURL),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Language:    language,
		WebsiteURL:  strings.TrimSpace(input.WebsiteURL),
		Contacts:    contacts,
		Notes:       strings.TrimSpace(input.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateOutlet(ctx, outlet); err != nil {
		return ports.Outlet{}, err
	}

	resolveLogger(s.Logger).Info("outlet created",
		"event", "outlet_created",
		"module", "editorial/outlet-service",
		"layer", "application",
		"outlet_id", outlet.OutletID,
	)
	return outlet, nil
}

func (s Service) UpdateOutlet(ctx context.Context, outletID string, update ports.OutletUpdate) (ports.Outlet, error) {
	outlet, err := s.Repo.GetOutlet(ctx, strings.TrimSpace(outletID))
	if err != nil {
		return ports.Outlet{}, err
	}

	applyString(&outlet.Name, update.Name)
	applyString(&outlet.LogoURL, update.LogoURL)
	applyString(&outlet.Description, update.Description)
	applyString(&outlet.Category, update.Category)
	applyString(&outlet.Language, update.Language)
	applyString(&outlet.WebsiteURL, update.WebsiteURL)
	applyString(&outlet.Notes, update.Notes)
	if update.Contacts != nil {
		outlet.Contacts = update.Contacts
	}
	if strings.TrimSpace(outlet.Name) == "" {
		return ports.Outlet{}, domainerrors.ErrInvalidOutletInput
	}
	if strings.TrimSpace(outlet.Language) == "" {
		outlet.Language = defaultLanguage
	}
	outlet.UpdatedAt = s.now()

	if err := s.Repo.UpdateOutlet(ctx, outlet); err != nil {
		return ports.Outlet{}, err
	}
	return outlet, nil
}

func (s Service) GetOutlet(ctx context.Context, outletID string) (ports.Outlet, error) {
	if strings.TrimSpace(outletID) == "" {
		return ports.Outlet{}, domainerrors.ErrInvalidOutletInput
	}
	return s.Repo.GetOutlet(ctx, strings.TrimSpace(outletID))
}

func (s Service) ListOutlets(ctx context.Context, filter ports.OutletFilter) ([]ports.Outlet, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Language = strings.TrimSpace(filter.Language)
	return s.Repo.ListOutlets(ctx, filter)
}

func (s Service) DeleteOutlet(ctx context.Context, outletID string) error {
	if strings.TrimSpace(outletID) == "" {
		return domainerrors.ErrInvalidOutletInput
	}
	return s.Repo.DeleteOutlet(ctx, strings.TrimSpace(outletID))
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
