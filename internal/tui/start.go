package tui

import (
	"context"
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/cave-miner/internal/config"
	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/logger"
	"github.com/tatianab/cave-miner/internal/narrator"
)

// Start wires the engine, logger and optional narrator for cfg and runs the
// game until the player quits.
func Start(cfg *config.Config) error {
	f, err := tea.LogToFile(cfg.LogFile, "cave-miner")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()
	log := logger.New(f)

	eng := engine.New(engine.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
	}, rand.New(rand.NewSource(cfg.Seed)), log)
	log.Infof("session %s started with seed %d", eng.SessionID(), cfg.Seed)

	var nar *narrator.Narrator
	if cfg.Narrator.Enabled() {
		nar, err = narrator.New(context.Background(), cfg.Narrator.APIKey, cfg.Narrator.Model)
		if err != nil {
			log.Warn("narrator disabled: " + err.Error())
			nar = nil
		} else {
			defer nar.Close()
		}
	}

	if err := Run(eng, nar, cfg.FrameTime()); err != nil {
		log.Error("program exited: " + err.Error())
		return err
	}
	log.Info("session " + eng.SessionID() + " ended")
	return nil
}
