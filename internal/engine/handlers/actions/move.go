package actions

import (
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.World)

	if res.IsWall {
		return handlers.EmptyResult(), domain.Impossiblef("Путь прегражден.")
	}
	if res.BlockedBy != nil {
		return handlers.EmptyResult(), domain.Impossiblef("Путь прегражден.")
	}

	if err := ctx.World.UpdateEntityPos(ctx.Actor, res.NewX, res.NewY); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.EmptyResult(), nil
}
