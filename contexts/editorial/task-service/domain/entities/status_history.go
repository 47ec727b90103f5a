package entities

import "time"

// StatusHistoryEntry is the append-only audit record of a status
// transition. Iteration holds the task's post-transition counter.
type StatusHistoryEntry struct {
	EntryID    string
	TaskID     string
	UserID     string
	FromStatus TaskStatus
	ToStatus   TaskStatus
	Comment    string
	Iteration  int
	CreatedAt  time.Time
}
