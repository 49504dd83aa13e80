package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/state"
	"github.com/redis/go-redis/v9"
)

// ExpeditionTTL is how long an idle expedition is kept.
const ExpeditionTTL = 30 * 24 * time.Hour

func expeditionKey(id uuid.UUID) string {
	return "expedition:" + id.String()
}

// Expedition operations (Redis-backed)

func (r *RedisStorage) SaveExpedition(ctx context.Context, e *state.Expedition) error {
	if e == nil {
		return errors.New("expedition cannot be nil")
	}
	e.UpdatedAt = time.Now()

	data, err := json.Marshal(e)
	if err != nil {
		r.logger.Error("Failed to marshal expedition", "uuid", e.ID, "error", err)
		return fmt.Errorf("failed to marshal expedition: %w", err)
	}

	if err := r.client.Set(ctx, expeditionKey(e.ID), data, ExpeditionTTL).Err(); err != nil {
		r.logger.Error("Failed to save expedition", "uuid", e.ID, "error", err)
		return fmt.Errorf("failed to save expedition: %w", err)
	}

	r.logger.Debug("Expedition saved", "uuid", e.ID, "intel", e.Intel.Progress())
	return nil
}

func (r *RedisStorage) LoadExpedition(ctx context.Context, id uuid.UUID) (*state.Expedition, error) {
	data, err := r.client.Get(ctx, expeditionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Expedition not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load expedition", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load expedition: %w", err)
	}

	var e state.Expedition
	if err := json.Unmarshal(data, &e); err != nil {
		r.logger.Error("Failed to unmarshal expedition", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal expedition: %w", err)
	}
	return &e, nil
}

func (r *RedisStorage) DeleteExpedition(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, expeditionKey(id), journalKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete expedition", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete expedition: %w", err)
	}
	return nil
}
