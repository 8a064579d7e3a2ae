package systems

import (
	"math/rand"

	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NPCDecision - решение AI на этот ход.
type NPCDecision struct {
	Action domain.ActionType // WAIT, MELEE, MOVE или BUMP
	Dx, Dy int

	// ConfusionExpired: на этом ходу растерянность кончилась,
	// движок может сообщить об этом игроку.
	ConfusionExpired bool
}

// Направления для случайного шатания растерянного врага.
var bumpDirections = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ComputeNPCAction решает, что делать NPC на его ходу.
// Диспетчеризация по закрытому множеству стратегий; мутирует только
// AI-компонент самого npc (таймер растерянности), мир не трогает.
func ComputeNPCAction(npc, player *domain.Entity, m *domain.GameMap, rng *rand.Rand) NPCDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	if npc.AI == nil || !npc.IsAlive() {
		return NPCDecision{Action: domain.ActionWait}
	}

	switch npc.AI.Kind {
	case enums.AIKindHostile:
		return computeHostile(npc, player, m, aiLogger)
	case enums.AIKindConfused:
		return computeConfused(npc, rng)
	default:
		// Idle: стоит и ждет.
		return NPCDecision{Action: domain.ActionWait}
	}
}

// computeHostile: вне поля зрения игрока - ждем; вплотную - бьем;
// иначе идем первым шагом свежепосчитанного пути.
func computeHostile(npc, player *domain.Entity, m *domain.GameMap, aiLogger *logrus.Entry) NPCDecision {
	// Симметрия FOV: враг реагирует, когда игрок его видит.
	if !m.Tiles[npc.Pos.Y][npc.Pos.X].Visible {
		return NPCDecision{Action: domain.ActionWait}
	}

	if npc.Pos.ChebyshevTo(player.Pos) <= 1 {
		dx, dy := npc.Pos.DirectionTo(player.Pos)
		aiLogger.WithField("decision", "melee").Debug("Target adjacent.")
		return NPCDecision{Action: domain.ActionMelee, Dx: dx, Dy: dy}
	}

	path := FindPath(m, npc, player.Pos)
	if len(path) == 0 {
		aiLogger.WithField("decision", "wait").Debug("No path to target.")
		return NPCDecision{Action: domain.ActionWait}
	}

	next := path[0]
	aiLogger.WithFields(logrus.Fields{
		"decision": "move",
		"path_len": len(path),
	}).Debug("Path found.")
	return NPCDecision{
		Action: domain.ActionMove,
		Dx:     next.X - npc.Pos.X,
		Dy:     next.Y - npc.Pos.Y,
	}
}

// computeConfused: каждый ход - случайный тычок в сторону.
// Счетчик уменьшается каждый ход; на ходу, когда он дошел до нуля,
// враг делает ПОСЛЕДНИЙ случайный тычок и со следующего хода
// возвращается к прежней стратегии.
func computeConfused(npc *domain.Entity, rng *rand.Rand) NPCDecision {
	npc.AI.TurnsRemaining--

	expired := npc.AI.TurnsRemaining <= 0
	if expired {
		npc.AI.Kind = npc.AI.PreviousKind
		npc.AI.PreviousKind = enums.AIKindNone
		npc.AI.TurnsRemaining = 0
	}

	dir := bumpDirections[rng.Intn(len(bumpDirections))]
	return NPCDecision{
		Action:           domain.ActionBump,
		Dx:               dir[0],
		Dy:               dir[1],
		ConfusionExpired: expired,
	}
}
