package actions

import (
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
)

// HandleMelee - удар по соседней клетке. Дистанция и направление уже
// провалидированы payload'ом, здесь проверяется только наличие цели.
func HandleMelee(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	target := ctx.World.GetActorAt(ctx.Actor.Pos.X+p.Dx, ctx.Actor.Pos.Y+p.Dy)
	if target == nil {
		return handlers.EmptyResult(), domain.Impossiblef("Некого атаковать.")
	}

	outcome := systems.ApplyAttack(ctx.Actor, target)

	if outcome.TargetDied && ctx.Actor.IsPlayer() && outcome.XPAwarded > 0 {
		ctx.Log.Addf(domain.MsgInfo, "Вы получаете %d опыта.", outcome.XPAwarded)
		if ctx.Actor.Level != nil && ctx.Actor.Level.RequiresLevelUp() {
			ctx.Log.Add("Вы чувствуете прилив сил: пора расти в уровне!", domain.MsgInfo)
		}
	}

	return handlers.Result{Msg: outcome.Message, MsgType: domain.MsgCombat}, nil
}
