package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	"pressboard/contexts/editorial/task-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

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

func (r *Repository) CreateTask(ctx context.Context, task entities.Task) error {
	row := taskModelFromEntity(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidTaskInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateTask(ctx context.Context, task entities.Task) error {
	row := taskModelFromEntity(task)
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("task_id = ?", strings.TrimSpace(task.TaskID)).
		Select("*").
		Omit("task_id", "created_at").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", strings.TrimSpace(taskID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Task{}, domainerrors.ErrTaskNotFound
		}
		return entities.Task{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	tx := r.db.WithContext(ctx).Model(&taskModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
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
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var rows []taskModel
	if err := tx.Order("status_changed_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteTask(ctx context.Context, taskID string) error {
	key := strings.TrimSpace(taskID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", key).Delete(&statusHistoryModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("task_id = ?", key).Delete(&taskModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTaskNotFound
		}
		return nil
	})
}

func (r *Repository) CommitStatusChange(ctx context.Context, task entities.Task, entry entities.StatusHistoryEntry) error {
	taskRow := taskModelFromEntity(task)
	entryRow := statusHistoryModelFromEntity(entry)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&taskModel{}).
			Where("task_id = ?", task.TaskID).
			Select("*").
			Omit("task_id", "created_at").
			Updates(&taskRow)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTaskNotFound
		}
		return tx.Create(&entryRow).Error
	})
}

func (r *Repository) CommitUndo(ctx context.Context, task entities.Task) error {
	taskRow := taskModelFromEntity(task)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&taskModel{}).
			Where("task_id = ?", task.TaskID).
			Select("*").
			Omit("task_id", "created_at").
			Updates(&taskRow)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTaskNotFound
		}

		var newest statusHistoryModel
		err := tx.Where("task_id = ?", task.TaskID).
			Order("created_at DESC").
			First(&newest).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Where("entry_id = ?", newest.EntryID).Delete(&statusHistoryModel{}).Error
	})
}

func (r *Repository) ListHistoryByTask(ctx context.Context, taskID string) ([]entities.StatusHistoryEntry, error) {
	var rows []statusHistoryModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", strings.TrimSpace(taskID)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.StatusHistoryEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type taskModel struct {
	TaskID    string `gorm:"column:task_id;primaryKey"`
	ClientID  string `gorm:"column:client_id"`
	OutletID  string `gorm:"column:outlet_id"`
	AuthorID  string `gorm:"column:author_id"`
	EditorID  string `gorm:"column:editor_id"`
	ManagerID string `gorm:"column:manager_id"`

	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	TaskType    string `gorm:"column:task_type"`
	Language    string `gorm:"column:language"`
	Status      string `gorm:"column:status"`

	GoogleDocURL   string `gorm:"column:google_doc_url"`
	GoogleFormsURL string `gorm:"column:google_forms_url"`

	Iteration       int       `gorm:"column:iteration"`
	StatusChangedAt time.Time `gorm:"column:status_changed_at"`
	CreatedAt       time.Time `gorm:"column:created_at"`

	PostponeReason     string     `gorm:"column:postpone_reason"`
	PostponeResumeDate *time.Time `gorm:"column:postpone_resume_date"`

	PublicationURL  string     `gorm:"column:publication_url"`
	PublicationDate *time.Time `gorm:"column:publication_date"`
	ClientGratitude string     `gorm:"column:client_gratitude"`

	SentToWhom string `gorm:"column:sent_to_whom"`
	SentMethod string `gorm:"column:sent_method"`
}

func (taskModel) TableName() string { return "tasks" }

func taskModelFromEntity(task entities.Task) taskModel {
	return taskModel{
		TaskID:             task.TaskID,
		ClientID:           task.ClientID,
		OutletID:           task.OutletID,
		AuthorID:           task.AuthorID,
		EditorID:           task.EditorID,
		ManagerID:          task.ManagerID,
		Title:              task.Title,
		Description:        task.Description,
		TaskType:           string(task.TaskType),
		Language:           task.Language,
		Status:             string(task.Status),
		GoogleDocURL:       task.GoogleDocURL,
		GoogleFormsURL:     task.GoogleFormsURL,
		Iteration:          task.Iteration,
		StatusChangedAt:    task.StatusChangedAt,
		CreatedAt:          task.CreatedAt,
		PostponeReason:     task.PostponeReason,
		PostponeResumeDate: task.PostponeResumeDate,
		PublicationURL:     task.PublicationURL,
		PublicationDate:    task.PublicationDate,
		ClientGratitude:    task.ClientGratitude,
		SentToWhom:         task.SentToWhom,
		SentMethod:         task.SentMethod,
	}
}

func (m taskModel) toEntity() entities.Task {
	return entities.Task{
		TaskID:             m.TaskID,
		ClientID:           m.ClientID,
		OutletID:           m.OutletID,
		AuthorID:           m.AuthorID,
		EditorID:           m.EditorID,
		ManagerID:          m.ManagerID,
		Title:              m.Title,
		Description:        m.Description,
		TaskType:           entities.TaskType(m.TaskType),
		Language:           m.Language,
		Status:             entities.TaskStatus(m.Status),
		GoogleDocURL:       m.GoogleDocURL,
		GoogleFormsURL:     m.GoogleFormsURL,
		Iteration:          m.Iteration,
		StatusChangedAt:    m.StatusChangedAt,
		CreatedAt:          m.CreatedAt,
		PostponeReason:     m.PostponeReason,
		PostponeResumeDate: m.PostponeResumeDate,
		PublicationURL:     m.PublicationURL,
		PublicationDate:    m.PublicationDate,
		ClientGratitude:    m.ClientGratitude,
		SentToWhom:         m.SentToWhom,
		SentMethod:         m.SentMethod,
	}
}

type statusHistoryModel struct {
	EntryID    string    `gorm:"column:entry_id;primaryKey"`
	TaskID     string    `gorm:"column:task_id"`
	UserID     string    `gorm:"column:user_id"`
	FromStatus string    `gorm:"column:from_status"`
	ToStatus   string    `gorm:"column:to_status"`
	Comment    string    `gorm:"column:comment"`
	Iteration  int       `gorm:"column:iteration"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (statusHistoryModel) TableName() string { return "status_history" }

func statusHistoryModelFromEntity(entry entities.StatusHistoryEntry) statusHistoryModel {
	return statusHistoryModel{
		EntryID:    entry.EntryID,
		TaskID:     entry.TaskID,
		UserID:     entry.UserID,
		FromStatus: string(entry.FromStatus),
		ToStatus:   string(entry.ToStatus),
		Comment:    entry.Comment,
		Iteration:  entry.Iteration,
		CreatedAt:  entry.CreatedAt,
	}
}

func (m statusHistoryModel) toEntity() entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		EntryID:    m.EntryID,
		TaskID:     m.TaskID,
		UserID:     m.UserID,
		FromStatus: entities.TaskStatus(m.FromStatus),
		ToStatus:   entities.TaskStatus(m.ToStatus),
		Comment:    m.Comment,
		Iteration:  m.Iteration,
		CreatedAt:  m.CreatedAt,
	}
}
