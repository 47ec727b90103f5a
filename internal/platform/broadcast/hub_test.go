package broadcast

import (
	"fmt"
	"testing"

	"pressboard/internal/shared/events"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub(nil)
	first := hub.Subscribe()
	second := hub.Subscribe()

	hub.Publish(events.BoardEvent{Type: events.EventTaskCreated, TaskID: "task-1"})

	for _, sub := range []*Subscription{first, second} {
		got := <-sub.Events()
		if got.Type != events.EventTaskCreated || got.TaskID != "task-1" {
			t.Fatalf("unexpected event: %+v", got)
		}
	}
}

func TestSubscriberReceivesEventsInOrder(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe()

	for i := 0; i < 10; i++ {
		hub.Publish(events.BoardEvent{Type: events.EventTaskUpdated, TaskID: fmt.Sprintf("task-%d", i)})
	}
	for i := 0; i < 10; i++ {
		got := <-sub.Events()
		if want := fmt.Sprintf("task-%d", i); got.TaskID != want {
			t.Fatalf("event %d out of order: got %s want %s", i, got.TaskID, want)
		}
	}
}

func TestSlowSubscriberIsDetached(t *testing.T) {
	hub := NewHub(nil)
	slow := hub.Subscribe()
	live := hub.Subscribe()

	for i := 0; i <= defaultBuffer; i++ {
		hub.Publish(events.BoardEvent{Type: events.EventTaskUpdated, TaskID: "task-1"})
	}

	if hub.SubscriberCount() != 1 {
		t.Fatalf("slow subscriber still attached, count=%d", hub.SubscriberCount())
	}

	// The detached channel is closed after its buffered backlog.
	received := 0
	for range slow.Events() {
		received++
	}
	if received != defaultBuffer {
		t.Fatalf("detached subscriber got %d buffered events, want %d", received, defaultBuffer)
	}

	// The healthy subscriber keeps receiving.
	hub.Publish(events.BoardEvent{Type: events.EventTaskDeleted, TaskID: "task-2"})
	drained := 0
	for got := range live.Events() {
		drained++
		if got.Type == events.EventTaskDeleted {
			break
		}
	}
	if drained == 0 {
		t.Fatalf("live subscriber received nothing")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe()
	sub.Close()
	sub.Close()

	if hub.SubscriberCount() != 0 {
		t.Fatalf("subscriber not removed")
	}
	if _, open := <-sub.Events(); open {
		t.Fatalf("channel should be closed")
	}

	// Publishing after the last subscriber left is a no-op.
	hub.Publish(events.BoardEvent{Type: events.EventTaskCreated, TaskID: "task-1"})
}

func TestCloseAllDetachesEverything(t *testing.T) {
	hub := NewHub(nil)
	subs := []*Subscription{hub.Subscribe(), hub.Subscribe(), hub.Subscribe()}

	hub.CloseAll()

	if hub.SubscriberCount() != 0 {
		t.Fatalf("subscribers left after CloseAll: %d", hub.SubscriberCount())
	}
	for _, sub := range subs {
		if _, open := <-sub.Events(); open {
			t.Fatalf("channel left open after CloseAll")
		}
	}
}
