package commands

import (
	"context"
	"errors"
	"testing"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/adapters/memory"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
)

func newTake(store *memory.Store, board *boardRecorder) TakeTaskUseCase {
	return TakeTaskUseCase{
		Tasks: store,
		Board: board,
		Locks: application.NewTaskLocks(),
		Clock: store,
		IDGen: store,
	}
}

func TestTakeAssignsAuthorAndStartsWork(t *testing.T) {
	task := seedTask(entities.TaskStatusNew, 0)
	task.AuthorID = ""
	store := memory.NewStore([]entities.Task{task})
	board := &boardRecorder{}
	uc := newTake(store, board)

	taken, err := uc.Execute(context.Background(), TakeTaskCommand{TaskID: "task-1", ActorID: "writer-7"})
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if taken.Status != entities.TaskStatusInProgress {
		t.Fatalf("expected in_progress, got %s", taken.Status)
	}
	if taken.AuthorID != "writer-7" {
		t.Fatalf("author not assigned, got %q", taken.AuthorID)
	}
	if taken.Iteration != 0 {
		t.Fatalf("take must not touch iteration, got %d", taken.Iteration)
	}

	history, _ := store.ListHistoryByTask(context.Background(), "task-1")
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Comment == "" {
		t.Fatalf("take must record the system comment")
	}

	events := board.list()
	if len(events) != 1 || events[0].Type != "task_taken" || events[0].UserID != "writer-7" {
		t.Fatalf("unexpected board events: %+v", events)
	}
}

func TestTakeRejectsNonNewTask(t *testing.T) {
	for _, status := range []entities.TaskStatus{
		entities.TaskStatusInProgress,
		entities.TaskStatusEditorReview,
		entities.TaskStatusClientApproval,
		entities.TaskStatusClientApproved,
		entities.TaskStatusSentToMedia,
		entities.TaskStatusPublished,
		entities.TaskStatusPostponed,
	} {
		store := memory.NewStore([]entities.Task{seedTask(status, 0)})
		uc := newTake(store, &boardRecorder{})

		_, err := uc.Execute(context.Background(), TakeTaskCommand{TaskID: "task-1", ActorID: "writer-7"})
		if !errors.Is(err, domainerrors.ErrTaskNotTakeable) {
			t.Fatalf("take from %s should fail, got %v", status, err)
		}
	}
}

func TestTakeMissingTask(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newTake(store, &boardRecorder{})

	_, err := uc.Execute(context.Background(), TakeTaskCommand{TaskID: "missing", ActorID: "writer-7"})
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
