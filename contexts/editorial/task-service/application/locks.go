package application

import "sync"

// TaskLocks serializes mutating operations per task id. Operations on
// different tasks proceed in parallel; two operations on the same task
// never overlap. Entries are reference counted so the registry does not
// grow with the number of tasks ever touched.
type TaskLocks struct {
	mu    sync.Mutex
	locks map[string]*taskLock
}

type taskLock struct {
	mu   sync.Mutex
	refs int
}

func NewTaskLocks() *TaskLocks {
	return &TaskLocks{locks: make(map[string]*taskLock)}
}

// Lock acquires the exclusive scope for taskID and returns its release
// function. Callers must invoke the release exactly once.
func (l *TaskLocks) Lock(taskID string) func() {
	l.mu.Lock()
	entry, exists := l.locks[taskID]
	if !exists {
		entry = &taskLock{}
		l.locks[taskID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, taskID)
		}
		l.mu.Unlock()
	}
}
