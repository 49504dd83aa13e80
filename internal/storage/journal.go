package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/state"
	"github.com/jwebster45206/expedition/pkg/storage"
	"github.com/redis/go-redis/v9"
)

func journalKey(id uuid.UUID) string {
	return "journal:" + id.String()
}

// Journal operations (Redis list, oldest first)

// AppendJournal pushes an entry and trims the list to the newest MaxJournalEntries.
func (r *RedisStorage) AppendJournal(ctx context.Context, id uuid.UUID, entry state.JournalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	key := journalKey(id)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -storage.MaxJournalEntries, -1)
	pipe.Expire(ctx, key, ExpeditionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to append journal entry", "uuid", id, "error", err)
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *RedisStorage) Journal(ctx context.Context, id uuid.UUID, limit int) ([]state.JournalEntry, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	raw, err := r.client.LRange(ctx, journalKey(id), start, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	entries := make([]state.JournalEntry, 0, len(raw))
	for _, item := range raw {
		var entry state.JournalEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			r.logger.Warn("Skipping corrupt journal entry", "uuid", id, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
