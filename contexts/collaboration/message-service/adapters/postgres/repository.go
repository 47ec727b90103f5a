package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pressboard/contexts/collaboration/message-service/ports"

	"gorm.io/gorm"
)

type messageModel struct {
	MessageID string    `gorm:"column:message_id;primaryKey"`
	TaskID    string    `gorm:"column:task_id;index"`
	UserID    string    `gorm:"column:user_id"`
	Text      string    `gorm:"column:text"`
	IsRead    bool      `gorm:"column:is_read"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func messageModelFromEntity(message ports.Message) messageModel {
	return messageModel{
		MessageID: message.MessageID,
		TaskID:    message.TaskID,
		UserID:    message.UserID,
		Text:      message.Text,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt,
	}
}

func (m messageModel) toEntity() ports.Message {
	return ports.Message{
		MessageID: m.MessageID,
		TaskID:    m.TaskID,
		UserID:    m.UserID,
		Text:      m.Text,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
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

func (r *Repository) CreateMessage(ctx context.Context, message ports.Message) error {
	row := messageModelFromEntity(message)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListMessagesByTask(ctx context.Context, taskID string) ([]ports.Message, error) {
	var rows []messageModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", strings.TrimSpace(taskID)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) MarkMessagesRead(ctx context.Context, taskID, readerID string) error {
	return r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("task_id = ? AND user_id <> ?", taskID, readerID).
		Update("is_read", true).
		Error
}

func (r *Repository) CountUnread(ctx context.Context, taskID, readerID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("task_id = ? AND user_id <> ? AND is_read = FALSE", taskID, readerID).
		Count(&count).
		Error
	return int(count), err
}
