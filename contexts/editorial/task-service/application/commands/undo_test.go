package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/adapters/memory"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
)

func newUndo(store *memory.Store) UndoUseCase {
	return UndoUseCase{
		Tasks:  store,
		Ledger: store,
		Board:  &boardRecorder{},
		Locks:  application.NewTaskLocks(),
		Clock:  store,
	}
}

func TestUndoRestoresPreTransitionState(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })
	change := newChangeStatus(store, &boardRecorder{})
	undo := newUndo(store)

	before, _ := store.GetTask(context.Background(), "task-1")

	if _, err := change.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	}); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	now = now.Add(5 * time.Second)
	task, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"})
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if task.Status != before.Status {
		t.Fatalf("status not restored: got %s, want %s", task.Status, before.Status)
	}
	if !task.StatusChangedAt.Equal(before.StatusChangedAt) {
		t.Fatalf("status_changed_at not restored")
	}
	if task.Iteration != before.Iteration {
		t.Fatalf("iteration not restored")
	}

	history, _ := store.ListHistoryByTask(context.Background(), "task-1")
	if len(history) != 0 {
		t.Fatalf("undo must remove the newest history entry, %d left", len(history))
	}
}

func TestSecondConsecutiveUndoFails(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	change := newChangeStatus(store, &boardRecorder{})
	undo := newUndo(store)

	if _, err := change.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	}); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if _, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"}); err != nil {
		t.Fatalf("first undo failed: %v", err)
	}
	_, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"})
	if !errors.Is(err, domainerrors.ErrNoUndoAvailable) {
		t.Fatalf("second undo should fail, got %v", err)
	}
}

func TestUndoAfterWindowExpires(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })
	change := newChangeStatus(store, &boardRecorder{})
	undo := newUndo(store)

	if _, err := change.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	}); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	now = now.Add(UndoWindow + time.Second)
	_, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"})
	if !errors.Is(err, domainerrors.ErrNoUndoAvailable) {
		t.Fatalf("expired undo should fail, got %v", err)
	}

	task, _ := store.GetTask(context.Background(), "task-1")
	if task.Status != entities.TaskStatusInProgress {
		t.Fatalf("expired undo mutated the task: %s", task.Status)
	}
	history, _ := store.ListHistoryByTask(context.Background(), "task-1")
	if len(history) != 1 {
		t.Fatalf("expired undo touched history: %d entries", len(history))
	}
}

func TestUndoWithoutAnyTransition(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	undo := newUndo(store)

	_, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"})
	if !errors.Is(err, domainerrors.ErrNoUndoAvailable) {
		t.Fatalf("expected no undo available, got %v", err)
	}
}

func TestNewTransitionSupersedesOldSnapshot(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	change := newChangeStatus(store, &boardRecorder{})
	undo := newUndo(store)

	if _, err := change.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	}); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}
	if _, err := change.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusEditorReview,
	}); err != nil {
		t.Fatalf("second transition failed: %v", err)
	}

	// Undo reverses only the second transition.
	task, err := undo.Execute(context.Background(), UndoCommand{TaskID: "task-1"})
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if task.Status != entities.TaskStatusInProgress {
		t.Fatalf("expected in_progress after undo, got %s", task.Status)
	}
}

// Mirrors the board walkthrough: forward for free, regress with a comment,
// then take it all back inside the window.
func TestReviewCycleScenario(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	now := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })
	change := newChangeStatus(store, &boardRecorder{})
	undo := newUndo(store)
	ctx := context.Background()

	task, err := change.Execute(ctx, ChangeStatusCommand{TaskID: "task-1", ActorID: "u", ToStatus: entities.TaskStatusInProgress})
	if err != nil || task.Iteration != 0 {
		t.Fatalf("forward step: task %+v err %v", task, err)
	}

	now = now.Add(time.Minute)
	if _, err := change.Execute(ctx, ChangeStatusCommand{TaskID: "task-1", ActorID: "u", ToStatus: entities.TaskStatusNew}); !errors.Is(err, domainerrors.ErrCommentRequired) {
		t.Fatalf("regress without comment should fail, got %v", err)
	}

	task, err = change.Execute(ctx, ChangeStatusCommand{TaskID: "task-1", ActorID: "u", ToStatus: entities.TaskStatusNew, Comment: "revert"})
	if err != nil {
		t.Fatalf("regress with comment failed: %v", err)
	}
	if task.Status != entities.TaskStatusNew || task.Iteration != 1 {
		t.Fatalf("after regress: %+v", task)
	}

	now = now.Add(10 * time.Second)
	task, err = undo.Execute(ctx, UndoCommand{TaskID: "task-1"})
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if task.Status != entities.TaskStatusInProgress || task.Iteration != 0 {
		t.Fatalf("undo restored wrong state: %+v", task)
	}
	history, _ := store.ListHistoryByTask(ctx, "task-1")
	if len(history) != 1 {
		t.Fatalf("expected only the forward entry to remain, got %d", len(history))
	}
	if history[0].ToStatus != entities.TaskStatusInProgress {
		t.Fatalf("remaining entry should be the forward move: %+v", history[0])
	}
}
