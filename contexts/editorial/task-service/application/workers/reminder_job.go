package workers

import (
	"context"
	"log/slog"
	"time"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/domain/entities"
	"pressboard/contexts/editorial/task-service/ports"
)

// ReminderJob scans the board and pushes out-of-band reminders:
// tasks stuck in a WIP stage past OverdueAfter, sent_to_media tasks
// waiting past FollowupAfter, and postponed tasks whose resume date
// has arrived. Notification failures are logged and skipped so one
// unreachable recipient never stops the scan.
type ReminderJob struct {
	Tasks         ports.TaskRepository
	Notifier      ports.Notifier
	Clock         ports.Clock
	OverdueAfter  time.Duration
	FollowupAfter time.Duration
	Logger        *slog.Logger
}

func (j ReminderJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	overdueAfter := j.OverdueAfter
	if overdueAfter <= 0 {
		overdueAfter = 3 * 24 * time.Hour
	}
	followupAfter := j.FollowupAfter
	if followupAfter <= 0 {
		followupAfter = 2 * 24 * time.Hour
	}

	tasks, err := j.Tasks.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		logger.Error("reminder scan failed",
			"event", "reminder_scan_failed",
			"module", "editorial/task-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := j.Clock.Now().UTC()
	sent := 0
	for _, task := range tasks {
		kind, recipient := classifyReminder(task, now, overdueAfter, followupAfter)
		if kind == "" || recipient == "" {
			continue
		}
		err := j.Notifier.Notify(ctx, recipient, kind, map[string]string{
			"task_id": task.TaskID,
			"title":   task.Title,
			"status":  string(task.Status),
		})
		if err != nil {
			logger.Warn("reminder delivery failed",
				"event", "reminder_delivery_failed",
				"module", "editorial/task-service",
				"layer", "worker",
				"task_id", task.TaskID,
				"kind", kind,
				"error", err.Error(),
			)
			continue
		}
		sent++
	}

	if sent > 0 {
		logger.Info("reminder cycle completed",
			"event", "reminder_cycle_completed",
			"module", "editorial/task-service",
			"layer", "worker",
			"sent", sent,
		)
	}
	return nil
}

func classifyReminder(task entities.Task, now time.Time, overdueAfter, followupAfter time.Duration) (string, string) {
	switch task.Status {
	case entities.TaskStatusSentToMedia:
		if now.Sub(task.StatusChangedAt) >= followupAfter {
			return "followup_reminder", firstNonEmpty(task.ManagerID, task.AuthorID)
		}
	case entities.TaskStatusPostponed:
		if task.PostponeResumeDate != nil && !task.PostponeResumeDate.After(now) {
			return "resume_reminder", firstNonEmpty(task.AuthorID, task.ManagerID)
		}
	default:
		for _, wip := range entities.WIPStatuses {
			if task.Status == wip && now.Sub(task.StatusChangedAt) >= overdueAfter {
				return "overdue_reminder", firstNonEmpty(task.AuthorID, task.ManagerID)
			}
		}
	}
	return "", ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
