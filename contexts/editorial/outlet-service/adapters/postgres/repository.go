package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/editorial/outlet-service/domain/errors"
	"pressboard/contexts/editorial/outlet-service/ports"

	"gorm.io/gorm"
)

type outletModel struct {
	OutletID    string    `gorm:"column:outlet_id;primaryKey"`
	Name        string    `gorm:"column:name"`
	LogoURL     string    `gorm:"column:logo_url"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category;index"`
	Language    string    `gorm:"column:language;index"`
	WebsiteURL  string    `gorm:"column:website_url"`
	Contacts    []byte    `gorm:"column:contacts;type:jsonb"`
	Notes       string    `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (outletModel) TableName() string { return "media_outlets" }

func outletModelFromEntity(outlet ports.Outlet) (outletModel, error) {
	contacts, err := json.Marshal(outlet.Contacts)
	if err != nil {
		return outletModel{}, err
	}
	return outletModel{
		OutletID:    outlet.OutletID,
		Name:        outlet.Name,
		LogoURL:     outlet.LogoURL,
		Description: outlet.Description,
		Category:    outlet.Category,
		Language:    outlet.Language,
		WebsiteURL:  outlet.WebsiteURL,
		Contacts:    contacts,
		Notes:       outlet.Notes,
		CreatedAt:   outlet.CreatedAt,
		UpdatedAt:   outlet.UpdatedAt,
	}, nil
}

func (m outletModel) toEntity() (ports.Outlet, error) {
	contacts := map[string]string{}
	if len(m.Contacts) > 0 {
		if err := json.Unmarshal(m.Contacts, &contacts); err != nil {
			return ports.Outlet{}, err
		}
	}
	return ports.Outlet{
		OutletID:    m.OutletID,
		Name:        m.Name,
		LogoURL:     m.LogoURL,
		Description: m.Description,
		Category:    m.Category,
		Language:    m.Language,
		WebsiteURL:  m.WebsiteURL,
		Contacts:    contacts,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateOutlet(ctx context.Context, outlet ports.Outlet) error {
	row, err := outletModelFromEntity(outlet)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateOutlet(ctx context.Context, outlet ports.Outlet) error {
	row, err := outletModelFromEntity(outlet)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&outletModel{}).
		Where("outlet_id = ?", outlet.OutletID).
		Select("*").
		Omit("outlet_id", "created_at").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOutletNotFound
	}
	return nil
}

func (r *Repository) GetOutlet(ctx context.Context, outletID string) (ports.Outlet, error) {
	var row outletModel
	err := r.db.WithContext(ctx).
		Where("outlet_id = ?", outletID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Outlet{}, domainerrors.ErrOutletNotFound
	}
	if err != nil {
		return ports.Outlet{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListOutlets(ctx context.Context, filter ports.OutletFilter) ([]ports.Outlet, error) {
	query := r.db.WithContext(ctx).Model(&outletModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if needle := strings.TrimSpace(filter.Search); needle != "" {
		pattern := "%" + strings.ToLower(needle) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var rows []outletModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Outlet, 0, len(rows))
	for _, row := range rows {
		outlet, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, outlet)
	}
	return items, nil
}

func (r *Repository) DeleteOutlet(ctx context.Context, outletID string) error {
	result := r.db.WithContext(ctx).
		Where("outlet_id = ?", outletID).
		Delete(&outletModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOutletNotFound
	}
	return nil
}
