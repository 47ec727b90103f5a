package entities

import "time"

type TaskStatus string
type TaskType string

const (
	TaskStatusNew            TaskStatus = "new"
	TaskStatusInProgress     TaskStatus = "in_progress"
	TaskStatusEditorReview   TaskStatus = "editor_review"
	TaskStatusClientApproval TaskStatus = "client_approval"
	TaskStatusClientApproved TaskStatus = "client_approved"
	TaskStatusSentToMedia    TaskStatus = "sent_to_media"
	TaskStatusPublished      TaskStatus = "published"
	TaskStatusPostponed      TaskStatus = "postponed"

	TaskTypeArticle        TaskType = "article"
	TaskTypeRecommendation TaskType = "recommendation"
	TaskTypeCoverLetter    TaskType = "cover_letter"
)

// PipelineOrder is the fixed publication pipeline. Postponed sits outside
// the order and is reachable from, and returns to, any stage.
var PipelineOrder = []TaskStatus{
	TaskStatusNew,
	TaskStatusInProgress,
	TaskStatusEditorReview,
	TaskStatusClientApproval,
	TaskStatusClientApproved,
	TaskStatusSentToMedia,
	TaskStatusPublished,
}

// WIPStatuses are the stages counted as work in progress for analytics
// and overdue detection.
var WIPStatuses = []TaskStatus{
	TaskStatusNew,
	TaskStatusInProgress,
	TaskStatusEditorReview,
	TaskStatusClientApproval,
}

func IsSupportedStatus(value TaskStatus) bool {
	if value == TaskStatusPostponed {
		return true
	}
	return pipelineIndex(value) >= 0
}

func IsSupportedTaskType(value TaskType) bool {
	switch value {
	case TaskTypeArticle, TaskTypeRecommendation, TaskTypeCoverLetter:
		return true
	default:
		return false
	}
}

// IsForwardMove reports whether the transition advances exactly one stage
// in the pipeline. Any move touching postponed, skipping a stage, staying
// in place, or going backward is not forward.
func IsForwardMove(from TaskStatus, to TaskStatus) bool {
	if from == TaskStatusPostponed || to == TaskStatusPostponed {
		return false
	}
	fromIdx := pipelineIndex(from)
	toIdx := pipelineIndex(to)
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx == fromIdx+1
}

func pipelineIndex(status TaskStatus) int {
	for i, item := range PipelineOrder {
		if item == status {
			return i
		}
	}
	return -1
}

type Task struct {
	TaskID    string
	ClientID  string
	OutletID  string
	AuthorID  string
	EditorID  string
	ManagerID string

	Title       string
	Description string
	TaskType    TaskType
	Language    string
	Status      TaskStatus

	GoogleDocURL   string
	GoogleFormsURL string

	Iteration       int
	StatusChangedAt time.Time
	CreatedAt       time.Time

	PostponeReason     string
	PostponeResumeDate *time.Time

	PublicationURL  string
	PublicationDate *time.Time
	ClientGratitude string

	SentToWhom string
	SentMethod string
}
