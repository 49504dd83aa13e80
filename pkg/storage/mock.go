package storage

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/jwebster45206/expedition/pkg/state"
)

// MockStorage is an in-memory Storage used by tests and by the console when
// no Redis server is configured.
type MockStorage struct {
	mu          sync.RWMutex
	expeditions map[uuid.UUID]state.Expedition
	journals    map[uuid.UUID][]state.JournalEntry
	regions     map[string]*region.Region
	pingError   error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		expeditions: make(map[uuid.UUID]state.Expedition),
		journals:    make(map[uuid.UUID][]state.JournalEntry),
		regions:     make(map[string]*region.Region),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveExpedition stores a copy of the expedition
func (m *MockStorage) SaveExpedition(ctx context.Context, e *state.Expedition) error {
	if e == nil {
		return errors.New("expedition cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.UpdatedAt = time.Now()
	m.expeditions[e.ID] = copyExpedition(e)
	return nil
}

// LoadExpedition returns a copy of the stored expedition, or nil when missing
func (m *MockStorage) LoadExpedition(ctx context.Context, id uuid.UUID) (*state.Expedition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, exists := m.expeditions[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	out := copyExpedition(&e)
	return &out, nil
}

// DeleteExpedition removes an expedition
func (m *MockStorage) DeleteExpedition(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expeditions, id)
	delete(m.journals, id)
	return nil
}

// AppendJournal adds an entry, dropping the oldest beyond MaxJournalEntries
func (m *MockStorage) AppendJournal(ctx context.Context, id uuid.UUID, entry state.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := append(m.journals[id], entry)
	if len(entries) > MaxJournalEntries {
		entries = entries[len(entries)-MaxJournalEntries:]
	}
	m.journals[id] = entries
	return nil
}

// Journal returns a copy of the newest limit entries
func (m *MockStorage) Journal(ctx context.Context, id uuid.UUID, limit int) ([]state.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := m.journals[id]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return slices.Clone(entries), nil
}

// ListRegions maps region names to their registered file names
func (m *MockStorage) ListRegions(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]string, len(m.regions))
	for filename, r := range m.regions {
		result[r.Name] = filename
	}
	return result, nil
}

// GetRegion returns a copy of a registered region
func (m *MockStorage) GetRegion(ctx context.Context, filename string) (*region.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, exists := m.regions[filename]
	if !exists {
		return nil, errors.New("region not found")
	}
	out := *r
	out.Locations = slices.Clone(r.Locations)
	return &out, nil
}

// AddRegion registers a region under a file name (for testing)
func (m *MockStorage) AddRegion(filename string, r *region.Region) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions[filename] = r
}

func copyExpedition(e *state.Expedition) state.Expedition {
	out := *e
	out.Completed = slices.Clone(e.Completed)
	out.Unlocked = slices.Clone(e.Unlocked)
	return out
}
