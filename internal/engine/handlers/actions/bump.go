package actions

import (
	"delve-server/internal/engine/handlers"
	"delve-server/pkg/api"
)

// HandleBump - "умный шаг": если в целевой клетке стоит живой актор,
// это атака, иначе обычное движение. Именно этим действием ходят и
// игрок со стрелок, и весь AI.
func HandleBump(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if target := ctx.World.GetActorAt(ctx.Actor.Pos.X+p.Dx, ctx.Actor.Pos.Y+p.Dy); target != nil {
		return HandleMelee(ctx, p)
	}
	return HandleMove(ctx, p)
}
