package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pressboard/contexts/editorial/task-service/domain/entities"
	"pressboard/contexts/editorial/task-service/ports"

	"github.com/redis/go-redis/v9"
)

const undoKeyPrefix = "pressboard:undo:"

// UndoLedger stores undo snapshots in Redis with the window as key TTL.
// GETDEL makes the read destructive in one round trip; the payload also
// carries the expiry so the engine's clock stays authoritative even if
// Redis reaps slightly late.
type UndoLedger struct {
	client *redis.Client
}

func NewUndoLedger(client *redis.Client) *UndoLedger {
	return &UndoLedger{client: client}
}

type undoPayload struct {
	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
	Iteration       int       `json:"iteration"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func (l *UndoLedger) Put(ctx context.Context, taskID string, snapshot ports.UndoSnapshot, expiresAt time.Time) error {
	payload, err := json.Marshal(undoPayload{
		Status:          string(snapshot.Status),
		StatusChangedAt: snapshot.StatusChangedAt,
		Iteration:       snapshot.Iteration,
		ExpiresAt:       expiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode undo snapshot: %w", err)
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := l.client.Set(ctx, undoKeyPrefix+taskID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store undo snapshot: %w", err)
	}
	return nil
}

func (l *UndoLedger) GetAndConsume(ctx context.Context, taskID string, now time.Time) (ports.UndoSnapshot, bool, error) {
	raw, err := l.client.GetDel(ctx, undoKeyPrefix+taskID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.UndoSnapshot{}, false, nil
		}
		return ports.UndoSnapshot{}, false, fmt.Errorf("consume undo snapshot: %w", err)
	}

	var payload undoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ports.UndoSnapshot{}, false, fmt.Errorf("decode undo snapshot: %w", err)
	}
	if !now.Before(payload.ExpiresAt) {
		return ports.UndoSnapshot{}, false, nil
	}
	return ports.UndoSnapshot{
		Status:          entities.TaskStatus(payload.Status),
		StatusChangedAt: payload.StatusChangedAt,
		Iteration:       payload.Iteration,
	}, true, nil
}
