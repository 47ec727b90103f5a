package events

// BoardEvent is the shared realtime event shape pushed to board viewers.
// Fields beyond Type and TaskID are populated per event type.
type BoardEvent struct {
	Type       string `json:"type"`
	TaskID     string `json:"task_id"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	MessageID  string `json:"message_id,omitempty"`
}

const (
	EventTaskCreated       = "task_created"
	EventTaskUpdated       = "task_updated"
	EventTaskDeleted       = "task_deleted"
	EventTaskStatusChanged = "task_status_changed"
	EventTaskTaken         = "task_taken"
	EventTaskUndo          = "task_undo"
	EventNewMessage        = "new_message"
)
