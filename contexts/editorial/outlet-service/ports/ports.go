package ports

import (
	"context"
	"time"
)

// Outlet is a publication the newsroom places material in.
type Outlet struct {
	OutletID    string
	Name        string
	LogoURL     string
	Description string
	Category    string
	Language    string
	WebsiteURL  string
	Contacts    map[string]string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OutletUpdate struct {
	Name        *string
	LogoURL     *string
	Description *string
	Category    *string
	Language    *string
	WebsiteURL  *string
	Contacts    map[string]string
	Notes       *string
}

// OutletFilter narrows ListOutlets. Empty fields match everything.
type OutletFilter struct {
	Search   string
	Category string
	Language string
}

type Repository interface {
	CreateOutlet(ctx context.Context, outlet Outlet) error
	UpdateOutlet(ctx context.Context, outlet Outlet) error
	GetOutlet(ctx context.Context, outletID string) (Outlet, error)
	ListOutlets(ctx context.Context, filter OutletFilter) ([]Outlet, error)
	DeleteOutlet(ctx context.Context, outletID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
