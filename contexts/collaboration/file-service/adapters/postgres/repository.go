package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
	"pressboard/contexts/collaboration/file-service/ports"

	"gorm.io/gorm"
)

type fileModel struct {
	FileID     string    `gorm:"column:file_id;primaryKey"`
	TaskID     string    `gorm:"column:task_id;index"`
	Filename   string    `gorm:"column:filename"`
	StoredName string    `gorm:"column:stored_name"`
	Size       int64     `gorm:"column:size"`
	UploadedAt time.Time `gorm:"column:uploaded_at"`
}

func (fileModel) TableName() string { return "task_files" }

func fileModelFromEntity(record ports.FileRecord) fileModel {
	return fileModel{
		FileID:     record.FileID,
		TaskID:     record.TaskID,
		Filename:   record.Filename,
		StoredName: record.StoredName,
		Size:       record.Size,
		UploadedAt: record.UploadedAt,
	}
}

func (m fileModel) toEntity() ports.FileRecord {
	return ports.FileRecord{
		FileID:     m.FileID,
		TaskID:     m.TaskID,
		Filename:   m.Filename,
		StoredName: m.StoredName,
		Size:       m.Size,
		UploadedAt: m.UploadedAt,
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

func (r *Repository) CreateFile(ctx context.Context, record ports.FileRecord) error {
	row := fileModelFromEntity(record)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetFile(ctx context.Context, fileID string) (ports.FileRecord, error) {
	var row fileModel
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.FileRecord{}, domainerrors.ErrFileNotFound
	}
	if err != nil {
		return ports.FileRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListFilesByTask(ctx context.Context, taskID string) ([]ports.FileRecord, error) {
	var rows []fileModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("uploaded_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.FileRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteFile(ctx context.Context, fileID string) error {
	result := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Delete(&fileModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrFileNotFound
	}
	return nil
}
