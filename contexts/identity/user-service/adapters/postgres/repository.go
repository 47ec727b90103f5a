package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "pressboard/contexts/identity/user-service/domain/errors"
	"pressboard/contexts/identity/user-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type userModel struct {
	UserID           string    `gorm:"column:user_id;primaryKey"`
	Email            string    `gorm:"column:email;uniqueIndex"`
	FirstName        string    `gorm:"column:first_name"`
	LastName         string    `gorm:"column:last_name"`
	AvatarURL        string    `gorm:"column:avatar_url"`
	Phone            string    `gorm:"column:phone"`
	TelegramUsername string    `gorm:"column:telegram_username"`
	Topics           []byte    `gorm:"column:topics;type:jsonb"`
	Bio              string    `gorm:"column:bio"`
	Languages        []byte    `gorm:"column:languages;type:jsonb"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func userModelFromEntity(user ports.User) (userModel, error) {
	topics, err := json.Marshal(user.Topics)
	if err != nil {
		return userModel{}, err
	}
	languages, err := json.Marshal(user.Languages)
	if err != nil {
		return userModel{}, err
	}
	return userModel{
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
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}, nil
}

func (m userModel) toEntity() (ports.User, error) {
	var topics []string
	if len(m.Topics) > 0 {
		if err := json.Unmarshal(m.Topics, &topics); err != nil {
			return ports.User{}, err
		}
	}
	var languages []string
	if len(m.Languages) > 0 {
		if err := json.Unmarshal(m.Languages, &languages); err != nil {
			return ports.User{}, err
		}
	}
	return ports.User{
		UserID:           m.UserID,
		Email:            m.Email,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		AvatarURL:        m.AvatarURL,
		Phone:            m.Phone,
		TelegramUsername: m.TelegramUsername,
		Topics:           topics,
		Bio:              m.Bio,
		Languages:        languages,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
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

func (r *Repository) CreateUser(ctx context.Context, user ports.User) error {
	row, err := userModelFromEntity(user)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainerrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user ports.User) error {
	row, err := userModelFromEntity(user)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", user.UserID).
		Select("*").
		Omit("user_id", "email", "created_at").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return ports.User{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListUsers(ctx context.Context, search string) ([]ports.User, error) {
	query := r.db.WithContext(ctx).Model(&userModel{})
	if needle := strings.TrimSpace(search); needle != "" {
		pattern := "%" + strings.ToLower(needle) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []userModel
	if err := query.Order("last_name ASC, first_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.User, 0, len(rows))
	for _, row := range rows {
		user, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, user)
	}
	return items, nil
}
