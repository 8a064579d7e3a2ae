package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/engine/handlers/actions"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
	"delve-server/pkg/dungeon"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameState - фаза цикла движка.
type GameState uint8

const (
	// StateAwaitingInput: движок ждет команду игрока.
	StateAwaitingInput GameState = iota
	// StatePlayerDead: терминальное состояние, команды не принимаются.
	StatePlayerDead
)

// VisibilityFn - подключаемый расчет поля зрения. Движку важен только
// контракт: множество видимых индексов клеток вокруг origin.
type VisibilityFn func(m *domain.GameMap, origin domain.Position, radius int) map[int]bool

// Engine - однопользовательский игровой цикл: команда игрока, затем
// ходы всех врагов активного этажа в порядке их появления на карте.
type Engine struct {
	cfg Config
	rng *rand.Rand

	player *domain.Entity

	// Map - активный этаж; Floors хранит все посещенные, включая
	// активный (по его глубине).
	Map    *domain.GameMap
	Floors map[int]*domain.GameMap
	Depth  int
	Turn   int

	Log   *domain.MessageLog
	State GameState

	// Visibility по умолчанию - теневое зрение (systems.ComputeVisibleTiles),
	// тесты могут подменить на детерминированную заглушку.
	Visibility VisibilityFn

	handlers map[domain.ActionType]handlers.HandlerFunc

	// freeActions выполняются вне игрового времени: враги не ходят.
	freeActions map[domain.ActionType]bool
}

// NewEngine создает движок с первым этажом и игроком на входе.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		Floors:     make(map[int]*domain.GameMap),
		Log:        domain.NewMessageLog(),
		Visibility: systems.ComputeVisibleTiles,
	}
	e.registerHandlers()

	m, err := dungeon.Generate(1, cfg.GenParams(), e.floorRNG(1))
	if err != nil {
		return nil, err
	}

	e.player = dungeon.NewPlayer()
	e.player.Pos = m.EntryPos
	m.AddEntity(e.player)

	e.Map = m
	e.Floors[1] = m
	e.Depth = 1
	e.UpdateFOV()

	e.Log.Add("Добро пожаловать, искатель приключений, в очередное подземелье!", domain.MsgInfo)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
	}).Info("Engine initialized.")

	return e, nil
}

func (e *Engine) registerHandlers() {
	e.handlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:       handlers.WithPayload(actions.HandleMove),
		domain.ActionMelee:      handlers.WithPayload(actions.HandleMelee),
		domain.ActionBump:       handlers.WithPayload(actions.HandleBump),
		domain.ActionWait:       handlers.WithEmptyPayload(actions.HandleWait),
		domain.ActionPickup:     handlers.WithEmptyPayload(actions.HandlePickup),
		domain.ActionDrop:       handlers.WithPayload(actions.HandleDrop),
		domain.ActionUse:        handlers.WithPayload(actions.HandleUse),
		domain.ActionEquip:      handlers.WithPayload(actions.HandleEquip),
		domain.ActionTakeStairs: handlers.WithEmptyPayload(actions.HandleTakeStairs),
		domain.ActionLevelUp:    handlers.WithPayload(actions.HandleLevelUp),
	}

	// Распределение очков уровня - меню, а не ход: враги не получают
	// права хода, пока игрок выбирает характеристику.
	e.freeActions = map[domain.ActionType]bool{
		domain.ActionLevelUp: true,
	}
}

// Player возвращает сущность игрока.
func (e *Engine) Player() *domain.Entity {
	return e.player
}

// Seed возвращает мастер-зерно (для сохранений).
func (e *Engine) Seed() int64 {
	return e.cfg.Seed
}

// HandleCommand выполняет один полный игровой цикл: действие игрока,
// затем ходы врагов. Невыполнимое действие (Impossible) пишется в лог
// и НЕ передает ход врагам.
func (e *Engine) HandleCommand(cmd domain.Command) error {
	if e.State == StatePlayerDead {
		return domain.Impossiblef("Вы мертвы.")
	}
	if cmd.ActorID != e.player.ID {
		return fmt.Errorf("unknown actor: %s", cmd.ActorID)
	}

	if err := e.execute(e.player, cmd); err != nil {
		var imp *domain.Impossible
		if errors.As(err, &imp) {
			e.Log.Add(imp.Reason, domain.MsgError)
			return err
		}
		return err
	}

	if !e.freeActions[cmd.Action] {
		e.runEnemyTurns()
		e.Turn++
	}

	if !e.player.IsAlive() && e.State != StatePlayerDead {
		e.State = StatePlayerDead
	}

	e.UpdateFOV()
	return nil
}

func (e *Engine) execute(actor *domain.Entity, cmd domain.Command) error {
	handler, ok := e.handlers[cmd.Action]
	if !ok {
		return fmt.Errorf("unknown action: %s", cmd.Action)
	}

	ctx := handlers.Context{
		World:  e.Map,
		Actor:  actor,
		Log:    e.Log,
		RNG:    e.rng,
		Floors: e,
	}

	res, err := handler(ctx, cmd.Payload)
	if err != nil {
		return err
	}
	if res.Msg != "" {
		e.Log.Add(res.Msg, res.MsgType)
	}
	return nil
}

// runEnemyTurns дает ход каждому врагу активного этажа в порядке
// появления на карте. Невыполнимые действия врагов молча глотаются:
// враг, упершийся в стену, просто теряет ход.
func (e *Engine) runEnemyTurns() {
	// Копия списка: разрешение смертей меняет e.Map.Entities.
	queue := make([]*domain.Entity, len(e.Map.Entities))
	copy(queue, e.Map.Entities)

	for _, npc := range queue {
		// Игрок мог погибнуть еще до фазы врагов (огненный шар по
		// себе) или от предыдущего врага: фаза обрывается сразу.
		if !e.player.IsAlive() {
			e.State = StatePlayerDead
			return
		}
		if npc.IsPlayer() || !npc.IsAlive() || npc.AI == nil {
			continue
		}

		decision := systems.ComputeNPCAction(npc, e.player, e.Map, e.rng)
		if decision.ConfusionExpired {
			e.Log.Addf(domain.MsgInfo, "%s приходит в себя.", npc.Name)
		}

		if err := e.executeNPC(npc, decision); err != nil {
			var imp *domain.Impossible
			if !errors.As(err, &imp) {
				logger.Log.WithFields(logrus.Fields{
					"component": "engine",
					"npc_id":    npc.ID,
				}).WithError(err).Warn("NPC action failed.")
			}
		}

	}
}

func (e *Engine) executeNPC(npc *domain.Entity, d systems.NPCDecision) error {
	payload, err := json.Marshal(api.DirectionPayload{Dx: d.Dx, Dy: d.Dy})
	if err != nil {
		return err
	}
	return e.execute(npc, domain.Command{
		Action:  d.Action,
		ActorID: npc.ID,
		Payload: payload,
	})
}

// Descend переводит игрока на следующий этаж. Уже посещенные этажи
// остаются в памяти вместе со всем содержимым.
func (e *Engine) Descend() error {
	nextDepth := e.Depth + 1

	next, ok := e.Floors[nextDepth]
	if !ok {
		var err error
		next, err = dungeon.Generate(nextDepth, e.cfg.GenParams(), e.floorRNG(nextDepth))
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "engine",
				"depth":     nextDepth,
			}).WithError(err).Error("Floor generation failed.")
			return fmt.Errorf("generate floor %d: %w", nextDepth, err)
		}
		e.Floors[nextDepth] = next
	}

	e.Map.RemoveEntity(e.player)
	e.player.Pos = next.EntryPos
	next.AddEntity(e.player)

	e.Map = next
	e.Depth = nextDepth
	e.UpdateFOV()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"depth":     nextDepth,
	}).Info("Player descended.")

	return nil
}

// UpdateFOV пересчитывает туман войны активного этажа вокруг игрока.
func (e *Engine) UpdateFOV() {
	visible := e.Visibility(e.Map, e.player.Pos, e.cfg.VisionRadius)

	for y := 0; y < e.Map.Height; y++ {
		for x := 0; x < e.Map.Width; x++ {
			tile := &e.Map.Tiles[y][x]
			tile.Visible = visible[e.Map.GetIndex(x, y)]
			if tile.Visible {
				tile.Explored = true
			}
		}
	}
}

// floorRNG - отдельный генератор для этажа: карта глубины N зависит
// только от мастер-зерна и N, а не от порядка действий игрока.
func (e *Engine) floorRNG(depth int) *rand.Rand {
	return rand.New(rand.NewSource(e.cfg.Seed + int64(depth)))
}
