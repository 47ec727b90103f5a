package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	application "pressboard/contexts/editorial/task-service/application"
	"pressboard/contexts/editorial/task-service/adapters/memory"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	"pressboard/contexts/editorial/task-service/ports"
)

type boardRecorder struct {
	mu     sync.Mutex
	events []ports.BoardEvent
}

func (r *boardRecorder) Publish(event ports.BoardEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *boardRecorder) list() []ports.BoardEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.BoardEvent(nil), r.events...)
}

func seedTask(status entities.TaskStatus, iteration int) entities.Task {
	return entities.Task{
		TaskID:          "task-1",
		ClientID:        "client-1",
		AuthorID:        "author-1",
		Title:           "Profile interview",
		TaskType:        entities.TaskTypeArticle,
		Language:        "RU",
		Status:          status,
		Iteration:       iteration,
		StatusChangedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newChangeStatus(store *memory.Store, board ports.BoardPublisher) ChangeStatusUseCase {
	return ChangeStatusUseCase{
		Tasks:  store,
		Ledger: store,
		Board:  board,
		Locks:  application.NewTaskLocks(),
		Clock:  store,
		IDGen:  store,
	}
}

func TestForwardMoveNeedsNoComment(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	board := &boardRecorder{}
	uc := newChangeStatus(store, board)

	task, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	})
	if err != nil {
		t.Fatalf("forward move failed: %v", err)
	}
	if task.Status != entities.TaskStatusInProgress {
		t.Fatalf("expected in_progress, got %s", task.Status)
	}
	if task.Iteration != 0 {
		t.Fatalf("forward move must not touch iteration, got %d", task.Iteration)
	}

	events := board.list()
	if len(events) != 1 {
		t.Fatalf("expected 1 board event, got %d", len(events))
	}
	if events[0].Type != "task_status_changed" || events[0].FromStatus != "new" || events[0].ToStatus != "in_progress" {
		t.Fatalf("unexpected event payload: %+v", events[0])
	}
}

func TestEveryAdjacentPairIsForward(t *testing.T) {
	for i := 0; i < len(entities.PipelineOrder)-1; i++ {
		from := entities.PipelineOrder[i]
		to := entities.PipelineOrder[i+1]
		store := memory.NewStore([]entities.Task{seedTask(from, 0)})
		uc := newChangeStatus(store, &boardRecorder{})

		task, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TaskID:   "task-1",
			ActorID:  "user-1",
			ToStatus: to,
		})
		if err != nil {
			t.Fatalf("%s -> %s should be forward: %v", from, to, err)
		}
		if task.Iteration != 0 {
			t.Fatalf("%s -> %s incremented iteration", from, to)
		}
	}
}

func TestBackwardMoveWithoutCommentFailsUnchanged(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusEditorReview, 2)})
	board := &boardRecorder{}
	uc := newChangeStatus(store, board)

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	})
	if !errors.Is(err, domainerrors.ErrCommentRequired) {
		t.Fatalf("expected comment required error, got %v", err)
	}

	task, err := store.GetTask(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Status != entities.TaskStatusEditorReview || task.Iteration != 2 {
		t.Fatalf("failed move mutated task: %+v", task)
	}
	history, _ := store.ListHistoryByTask(context.Background(), "task-1")
	if len(history) != 0 {
		t.Fatalf("failed move appended history")
	}
	if len(board.list()) != 0 {
		t.Fatalf("failed move emitted an event")
	}
}

func TestSkipAheadIsNotForward(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	uc := newChangeStatus(store, &boardRecorder{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusEditorReview,
	})
	if !errors.Is(err, domainerrors.ErrCommentRequired) {
		t.Fatalf("skip-ahead without comment must fail, got %v", err)
	}

	task, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusEditorReview,
		Comment:  "editor picked it up directly",
	})
	if err != nil {
		t.Fatalf("skip-ahead with comment failed: %v", err)
	}
	if task.Iteration != 1 {
		t.Fatalf("skip-ahead should count as a revision cycle, got iteration %d", task.Iteration)
	}
}

func TestBackwardMoveWithCommentIncrementsIteration(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusEditorReview, 0)})
	uc := newChangeStatus(store, &boardRecorder{})

	task, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "editor-1",
		ToStatus: entities.TaskStatusInProgress,
		Comment:  "needs another pass on the lede",
	})
	if err != nil {
		t.Fatalf("backward move failed: %v", err)
	}
	if task.Iteration != 1 {
		t.Fatalf("expected iteration 1, got %d", task.Iteration)
	}

	history, err := store.ListHistoryByTask(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.FromStatus != entities.TaskStatusEditorReview || entry.ToStatus != entities.TaskStatusInProgress {
		t.Fatalf("unexpected history statuses: %+v", entry)
	}
	if entry.Iteration != 1 {
		t.Fatalf("history must record post-update iteration, got %d", entry.Iteration)
	}
	if entry.UserID != "editor-1" {
		t.Fatalf("expected acting user in history, got %s", entry.UserID)
	}
}

func TestMoveToPostponedRequiresCommentAndStoresReason(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusInProgress, 0)})
	uc := newChangeStatus(store, &boardRecorder{})

	resume := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	task, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:             "task-1",
		ActorID:            "manager-1",
		ToStatus:           entities.TaskStatusPostponed,
		Comment:            "client is traveling",
		PostponeReason:     "client unavailable until April",
		PostponeResumeDate: &resume,
	})
	if err != nil {
		t.Fatalf("postpone failed: %v", err)
	}
	if task.Iteration != 1 {
		t.Fatalf("postpone from a pipeline stage counts as a cycle, got %d", task.Iteration)
	}
	if task.PostponeReason != "client unavailable until April" {
		t.Fatalf("postpone reason not stored")
	}
	if task.PostponeResumeDate == nil || !task.PostponeResumeDate.Equal(resume) {
		t.Fatalf("postpone resume date not stored")
	}
}

func TestLeavingPostponedDoesNotIncrementIteration(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusPostponed, 3)})
	uc := newChangeStatus(store, &boardRecorder{})

	task, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "manager-1",
		ToStatus: entities.TaskStatusInProgress,
		Comment:  "resuming after client returned",
	})
	if err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if task.Iteration != 3 {
		t.Fatalf("leaving postponed must not increment iteration, got %d", task.Iteration)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusNew, 0)})
	uc := newChangeStatus(store, &boardRecorder{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "task-1",
		ActorID:  "user-1",
		ToStatus: "archived",
	})
	if !errors.Is(err, domainerrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestChangeStatusOnMissingTask(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newChangeStatus(store, &boardRecorder{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TaskID:   "missing",
		ActorID:  "user-1",
		ToStatus: entities.TaskStatusInProgress,
	})
	if !errors.Is(err, domainerrors.ErrTaskNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestConcurrentTransitionsOnOneTaskStaySerialized(t *testing.T) {
	store := memory.NewStore([]entities.Task{seedTask(entities.TaskStatusPublished, 0)})
	uc := newChangeStatus(store, &boardRecorder{})

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = uc.Execute(context.Background(), ChangeStatusCommand{
				TaskID:   "task-1",
				ActorID:  "user-1",
				ToStatus: entities.TaskStatusPublished,
				Comment:  "lateral touch",
			})
		}()
	}
	wg.Wait()

	task, err := store.GetTask(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("get task failed: %v", err)
	}
	if task.Iteration != workers {
		t.Fatalf("lost updates under concurrency: iteration %d, want %d", task.Iteration, workers)
	}
	history, _ := store.ListHistoryByTask(context.Background(), "task-1")
	if len(history) != workers {
		t.Fatalf("expected %d history entries, got %d", workers, len(history))
	}
}
