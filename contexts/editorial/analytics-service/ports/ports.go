package ports

import (
	"context"
	"time"
)

// Pipeline stage names, mirrored from the task board.
const (
	StatusNew            = "new"
	StatusInProgress     = "in_progress"
	StatusEditorReview   = "editor_review"
	StatusClientApproval = "client_approval"
	StatusClientApproved = "client_approved"
	StatusSentToMedia    = "sent_to_media"
	StatusPublished      = "published"
	StatusPostponed      = "postponed"
)

// AllStatuses lists every stage in board order.
var AllStatuses = []string{
	StatusNew,
	StatusInProgress,
	StatusEditorReview,
	StatusClientApproval,
	StatusClientApproved,
	StatusSentToMedia,
	StatusPublished,
	StatusPostponed,
}

// WIPStatuses are the stages counted as active work.
var WIPStatuses = []string{
	StatusNew,
	StatusInProgress,
	StatusEditorReview,
	StatusClientApproval,
}

// TaskStat is the slice of a task the reports need.
type TaskStat struct {
	TaskID          string
	Status          string
	StatusChangedAt time.Time
	AuthorID        string
	EditorID        string
	ManagerID       string
	ClientID        string
	OutletID        string
}

// StatFilter narrows a report to one participant or client.
// Empty fields match everything.
type StatFilter struct {
	AuthorID  string
	EditorID  string
	ManagerID string
	ClientID  string
	OutletID  string
}

type StatsRepository interface {
	ListStats(ctx context.Context, filter StatFilter) ([]TaskStat, error)
}

type Clock interface {
	Now() time.Time
}
