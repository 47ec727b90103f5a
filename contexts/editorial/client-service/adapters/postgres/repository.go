package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/editorial/client-service/domain/errors"
	"pressboard/contexts/editorial/client-service/ports"

	"gorm.io/gorm"
)

type clientModel struct {
	ClientID         string    `gorm:"column:client_id;primaryKey"`
	FirstName        string    `gorm:"column:first_name"`
	LastName         string    `gorm:"column:last_name"`
	AvatarURL        string    `gorm:"column:avatar_url"`
	Company          string    `gorm:"column:company"`
	Position         string    `gorm:"column:position"`
	Phone            string    `gorm:"column:phone"`
	Email            string    `gorm:"column:email"`
	TelegramUsername string    `gorm:"column:telegram_username"`
	LawyerName       string    `gorm:"column:lawyer_name"`
	LawyerContact    string    `gorm:"column:lawyer_contact"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (clientModel) TableName() string { return "clients" }

func clientModelFromEntity(client ports.Client) clientModel {
	return clientModel{
		ClientID:         client.ClientID,
		FirstName:        client.FirstName,
		LastName:         client.LastName,
		AvatarURL:        client.AvatarURL,
		Company:          client.Company,
		Position:         client.Position,
		Phone:            client.Phone,
		Email:            client.Email,
		TelegramUsername: client.TelegramUsername,
		LawyerName:       client.LawyerName,
		LawyerContact:    client.LawyerContact,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

func (m clientModel) toEntity() ports.Client {
	return ports.Client{
		ClientID:         m.ClientID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		AvatarURL:        m.AvatarURL,
		Company:          m.Company,
		Position:         m.Position,
		Phone:            m.Phone,
		Email:            m.Email,
		TelegramUsername: m.TelegramUsername,
		LawyerName:       m.LawyerName,
		LawyerContact:    m.LawyerContact,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
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

func (r *Repository) CreateClient(ctx context.Context, client ports.Client) error {
	row := clientModelFromEntity(client)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateClient(ctx context.Context, client ports.Client) error {
	row := clientModelFromEntity(client)
	result := r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("client_id = ?", client.ClientID).
		Select("*").
		Omit("client_id", "created_at").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrClientNotFound
	}
	return nil
}

func (r *Repository) GetClient(ctx context.Context, clientID string) (ports.Client, error) {
	var row clientModel
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Client{}, domainerrors.ErrClientNotFound
	}
	if err != nil {
		return ports.Client{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListClients(ctx context.Context, search string) ([]ports.Client, error) {
	query := r.db.WithContext(ctx).Model(&clientModel{})
	if needle := strings.TrimSpace(search); needle != "" {
		pattern := "%" + strings.ToLower(needle) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []clientModel
	if err := query.Order("last_name ASC, first_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Client, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteClient(ctx context.Context, clientID string) error {
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&clientModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrClientNotFound
	}
	return nil
}
