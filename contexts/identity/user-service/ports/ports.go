package ports

import (
	"context"
	"time"
)

// User is a newsroom member: journalist, editor or manager.
type User struct {
	UserID           string
	Email            string
	FirstName        string
	LastName         string
	AvatarURL        string
	Phone            string
	TelegramUsername string
	Topics           []string
	Bio              string
	Languages        []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type UserUpdate struct {
	FirstName        *string
	LastName         *string
	AvatarURL        *string
	Phone            *string
	TelegramUsername *string
	Topics           []string
	Bio              *string
	Languages        []string
}

type Repository interface {
	CreateUser(ctx context.Context, user User) error
	UpdateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, userID string) (User, error)
	ListUsers(ctx context.Context, search string) ([]User, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
