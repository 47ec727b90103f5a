package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/editorial/analytics-service/ports"

	"gorm.io/gorm"
)

type taskStatRow struct {
	TaskID          string    `gorm:"column:task_id"`
	Status          string    `gorm:"column:status"`
	StatusChangedAt time.Time `gorm:"column:status_changed_at"`
	AuthorID        string    `gorm:"column:author_id"`
	EditorID        string    `gorm:"column:editor_id"`
	ManagerID       string    `gorm:"column:manager_id"`
	ClientID        string    `gorm:"column:client_id"`
	OutletID        string    `gorm:"column:outlet_id"`
}

func (taskStatRow) TableName() string { return "tasks" }

// Repository reads task rows for reporting. It never writes.
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

func (r *Repository) ListStats(ctx context.Context, filter ports.StatFilter) ([]ports.TaskStat, error) {
	tx := r.db.WithContext(ctx).Model(&taskStatRow{}).
		Select("task_id", "status", "status_changed_at", "author_id", "editor_id", "manager_id", "client_id", "outlet_id")
	if filter.AuthorID != "" {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.EditorID != "" {
		tx = tx.Where("editor_id = ?", filter.EditorID)
	}
	if filter.ManagerID != "" {
		tx = tx.Where("manager_id = ?", filter.ManagerID)
	}
	if filter.ClientID != "" {
		tx = tx.Where("client_id = ?", filter.ClientID)
	}
	if filter.OutletID != "" {
		tx = tx.Where("outlet_id = ?", filter.OutletID)
	}

	var rows []taskStatRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.TaskStat, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.TaskStat{
			TaskID:          row.TaskID,
			Status:          row.Status,
			StatusChangedAt: row.StatusChangedAt,
			AuthorID:        row.AuthorID,
			EditorID:        row.EditorID,
			ManagerID:       row.ManagerID,
			ClientID:        row.ClientID,
			OutletID:        row.OutletID,
		})
	}
	return items, nil
}
