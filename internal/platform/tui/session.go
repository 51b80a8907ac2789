package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tycoon/internal/config"
	"github.com/vovakirdan/tui-tycoon/internal/sim"
	"github.com/vovakirdan/tui-tycoon/internal/storage"
)

// NewSession builds the session model for a profile. A saved profile is
// restored and ticked forward over the time it spent offline; a missing
// one starts a fresh empire. The store may be nil, in which case nothing
// is persisted.
func NewSession(cfg *config.GameConfig, store *storage.Store, profile string, seed int64) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := time.Now().Unix()
	opts := sim.Options{Seed: seed, Clock: now}

	if store != nil {
		snap, err := store.LoadProfile(profile)
		switch {
		case err == nil:
			engine, rerr := sim.Restore(cfg, snap, sim.Options{Seed: seed})
			if rerr != nil {
				return Model{}, fmt.Errorf("restore profile %s: %w", profile, rerr)
			}
			if offline := now - snap.Clock; offline > 0 {
				engine.Tick(offline)
			}
			return NewModel(engine, cfg, store, profile, seed), nil
		case errors.Is(err, storage.ErrNoProfile):
			// fresh start below
		default:
			return Model{}, err
		}
	}

	return NewModel(sim.New(cfg, opts), cfg, store, profile, seed), nil
}
