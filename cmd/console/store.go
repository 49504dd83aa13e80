package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/expedition/internal/config"
	redisstore "github.com/jwebster45206/expedition/internal/storage"
	"github.com/jwebster45206/expedition/pkg/region"
	"github.com/jwebster45206/expedition/pkg/state"
	"github.com/jwebster45206/expedition/pkg/storage"
)

// openStorage connects to Redis when REDIS_URL is set. Otherwise expeditions
// live in memory for the session and catalogs are read from disk up front.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory storage")
		mock := storage.NewMockStorage()
		if err := loadCatalogs(mock, cfg.DataDir, logger); err != nil {
			return nil, err
		}
		return mock, nil
	}

	rs, err := redisstore.NewRedisStorage(cfg.RedisURL, cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}
	if err := rs.WaitForConnection(ctx, 30, 2*time.Second); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rs, nil
}

func loadCatalogs(mock *storage.MockStorage, dataDir string, logger *slog.Logger) error {
	dir := filepath.Join(dataDir, "regions")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read regions directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !redisstore.IsCatalogFile(entry.Name()) {
			continue
		}
		reg, err := redisstore.ReadRegionFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("Skipping unreadable region file", "file", entry.Name(), "error", err)
			continue
		}
		mock.AddRegion(entry.Name(), reg)
	}
	return nil
}

// promptRegion lists the catalogs and asks the player to pick one.
func promptRegion(ctx context.Context, store storage.Storage) (string, error) {
	regions, err := store.ListRegions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list regions: %w", err)
	}
	if len(regions) == 0 {
		return "", fmt.Errorf("no region catalogs found")
	}

	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Println("Available Regions:")
	for i, name := range names {
		fmt.Printf("  %d - %s (%s)\n", i+1, name, regions[name])
	}
	fmt.Print("\nSelect a region by number: ")

	var choice int
	if _, err := fmt.Scanf("%d", &choice); err != nil || choice < 1 || choice > len(names) {
		return "", fmt.Errorf("invalid selection")
	}
	return regions[names[choice-1]], nil
}

// loadExpedition loads the region catalog and either resumes the expedition
// with the given id or starts a new one and saves it.
func loadExpedition(ctx context.Context, store storage.Storage, regionFile, expeditionID string) (*region.Region, *state.Expedition, error) {
	reg, err := store.GetRegion(ctx, regionFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load region: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("region %s is invalid: %w", regionFile, err)
	}

	if expeditionID == "" {
		exp := state.NewExpedition(reg, state.DefaultMaxIntel)
		if err := store.SaveExpedition(ctx, exp); err != nil {
			return nil, nil, err
		}
		return reg, exp, nil
	}

	id, err := uuid.Parse(expeditionID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid EXPEDITION_ID: %w", err)
	}
	exp, err := store.LoadExpedition(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if exp == nil {
		return nil, nil, fmt.Errorf("expedition %s not found", id)
	}
	if exp.RegionID != reg.ID {
		return nil, nil, fmt.Errorf("expedition %s belongs to region %q, not %q", id, exp.RegionID, reg.ID)
	}
	exp.ApplyTo(reg)
	return reg, exp, nil
}

type expeditionSavedMsg struct {
	err error
}

// saveExpedition persists a snapshot so the command goroutine never shares
// slices with the model. Journal entries are appended after the save.
func saveExpedition(store storage.Storage, exp *state.Expedition, journal ...state.JournalEntry) tea.Cmd {
	snapshot := *exp
	snapshot.Completed = slices.Clone(exp.Completed)
	snapshot.Unlocked = slices.Clone(exp.Unlocked)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.SaveExpedition(ctx, &snapshot); err != nil {
			return expeditionSavedMsg{err: err}
		}
		for _, entry := range journal {
			if err := store.AppendJournal(ctx, snapshot.ID, entry); err != nil {
				return expeditionSavedMsg{err: err}
			}
		}
		return expeditionSavedMsg{}
	}
}

type journalLoadedMsg struct {
	entries []state.JournalEntry
	err     error
}

const journalPageSize = 15

func loadJournal(store storage.Storage, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		entries, err := store.Journal(ctx, id, journalPageSize)
		return journalLoadedMsg{entries: entries, err: err}
	}
}
