package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/expedition/internal/config"
	"github.com/jwebster45206/expedition/internal/logger"
	"github.com/jwebster45206/expedition/pkg/draw"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the expedition console needs an interactive terminal")
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	regionFile := cfg.Region
	if regionFile == "" {
		if regionFile, err = promptRegion(ctx, store); err != nil {
			return err
		}
	}

	reg, exp, err := loadExpedition(ctx, store, regionFile, cfg.ExpeditionID)
	if err != nil {
		return err
	}
	log = logger.WithExpedition(log, exp.ID.String(), reg.ID)
	log.Info("Expedition ready", "region_file", regionFile, "progress", reg.Progress(), "intel", exp.Intel.Progress())

	drawer := draw.NewDrawer(cfg.DrawSeed, intelRule(cfg), log)

	p := tea.NewProgram(NewExpeditionUI(cfg, store, log, reg, exp, drawer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	fmt.Printf("Expedition %s saved. Resume with EXPEDITION_ID=%s REGION=%s\n", exp.ID, exp.ID, regionFile)
	return nil
}

func intelRule(cfg *config.Config) draw.IntelRule {
	return draw.IntelRule{PartialCost: cfg.PartialIntelCost, FullCost: cfg.FullIntelCost}
}
