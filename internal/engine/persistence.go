package engine

import (
	"fmt"
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/internal/infrastructure/storage"
	"delve-server/internal/systems"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MakeSnapshot собирает полное состояние забега для сохранения.
func (e *Engine) MakeSnapshot() *storage.Snapshot {
	return &storage.Snapshot{
		Seed:       e.cfg.Seed,
		Depth:      e.Depth,
		Turn:       e.Turn,
		PlayerDead: e.State == StatePlayerDead,
		Floors:     e.Floors,
		Log:        e.Log,
	}
}

// RestoreEngine восстанавливает движок из снимка. Генератор случайных
// чисел засеивается от зерна и номера хода: повторная загрузка одного
// снимка дает одинаковое дальнейшее поведение.
func RestoreEngine(cfg Config, snap *storage.Snapshot) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	active, ok := snap.Floors[snap.Depth]
	if !ok {
		return nil, fmt.Errorf("snapshot has no floor %d", snap.Depth)
	}

	player := active.Player()
	if player == nil {
		return nil, fmt.Errorf("snapshot floor %d has no player", snap.Depth)
	}

	cfg.Seed = snap.Seed

	e := &Engine{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(snap.Seed ^ int64(snap.Turn))),
		player:     player,
		Map:        active,
		Floors:     snap.Floors,
		Depth:      snap.Depth,
		Turn:       snap.Turn,
		Log:        snap.Log,
		Visibility: systems.ComputeVisibleTiles,
	}
	if snap.PlayerDead {
		e.State = StatePlayerDead
	}
	if e.Log == nil {
		e.Log = domain.NewMessageLog()
	}
	e.registerHandlers()
	e.UpdateFOV()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      snap.Seed,
		"depth":     snap.Depth,
		"turn":      snap.Turn,
	}).Info("Engine restored from snapshot.")

	return e, nil
}
