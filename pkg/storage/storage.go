package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/jwebster45206/expedition/pkg/state"
)

// MaxJournalEntries caps how many visits are kept per expedition.
const MaxJournalEntries = 50

// Storage defines a unified interface for all storage operations.
// Expedition progress is kept in a key-value store (Redis); region catalogs
// are static resources loaded from the filesystem.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Expedition operations (Redis-backed)
	SaveExpedition(ctx context.Context, e *state.Expedition) error
	LoadExpedition(ctx context.Context, id uuid.UUID) (*state.Expedition, error)
	// DeleteExpedition also removes the expedition's journal.
	DeleteExpedition(ctx context.Context, id uuid.UUID) error

	// Journal operations (Redis-backed list, oldest first)
	AppendJournal(ctx context.Context, id uuid.UUID, entry state.JournalEntry) error
	// Journal returns the newest limit entries; limit <= 0 returns all of them.
	Journal(ctx context.Context, id uuid.UUID, limit int) ([]state.JournalEntry, error)

	// Region catalog operations (filesystem-backed)
	// ListRegions maps region names to catalog file names.
	ListRegions(ctx context.Context) (map[string]string, error)
	// GetRegion returns a fresh copy that callers may modify.
	GetRegion(ctx context.Context, filename string) (*region.Region, error)
}
