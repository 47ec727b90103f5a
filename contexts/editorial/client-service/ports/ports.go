package ports

import (
	"context"
	"time"
)

// Client is a company or person the newsroom produces material for.
type Client struct {
	ClientID         string
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ClientUpdate struct {
	FirstName        *string
	LastName         *string
	AvatarURL        *string
	Company          *string
	Position         *string
	Phone            *string
	Email            *string
	TelegramUsername *string
	LawyerName       *string
	LawyerContact    *string
}

type Repository interface {
	CreateClient(ctx context.Context, client Client) error
	UpdateClient(ctx context.Context, client Client) error
	GetClient(ctx context.Context, clientID string) (Client, error)
	ListClients(ctx context.Context, search string) ([]Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
