package broadcast

import (
	"log/slog"
	"sync"

	"pressboard/internal/shared/events"

	"github.com/google/uuid"
)

const defaultBuffer = 64

// Subscription is one live board listener. Events arrive on Events in
// publish order until the subscription is closed or detached.
type Subscription struct {
	id     string
	stream chan events.BoardEvent
	hub    *Hub
	once   sync.Once
}

func (s *Subscription) Events() <-chan events.BoardEvent {
	return s.stream
}

// Close detaches the subscription and closes its event channel.
func (s *Subscription) Close() {
	s.hub.drop(s.id)
}

// Hub fans board events out to every active subscription. Publishing
// never blocks: a subscriber whose buffer is full is detached so one
// stalled connection cannot hold up the rest.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*Subscription
	buffer      int
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[string]*Subscription),
		buffer:      defaultBuffer,
		logger:      logger,
	}
}

func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscription{
		id:     uuid.NewString(),
		stream: make(chan events.BoardEvent, h.buffer),
		hub:    h,
	}
	h.subscribers[sub.id] = sub
	return sub
}

func (h *Hub) Publish(event events.BoardEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subscribers {
		select {
		case sub.stream <- event:
		default:
			delete(h.subscribers, id)
			sub.once.Do(func() { close(sub.stream) })
			h.logger.Warn("detached slow board subscriber",
				"event", "board.subscriber_detached",
				"subscriber_id", id,
			)
		}
	}
}

// CloseAll detaches every subscription. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		sub.once.Do(func() { close(sub.stream) })
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) drop(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, exists := h.subscribers[id]
	if !exists {
		return
	}
	delete(h.subscribers, id)
	sub.once.Do(func() { close(sub.stream) })
}
