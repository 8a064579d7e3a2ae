package actions

import (
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
)

// HandleTakeStairs спускает актора на следующий этаж, если он стоит
// ровно на клетке лестницы. Сам переход (генерация этажа, перенос
// игрока) делает движок через FloorChanger.
func HandleTakeStairs(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Pos != ctx.World.DownstairsPos {
		return handlers.EmptyResult(), domain.Impossiblef("Здесь нет лестницы вниз.")
	}

	if err := ctx.Floors.Descend(); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Msg:     "Вы спускаетесь по лестнице в темноту...",
		MsgType: domain.MsgInfo,
	}, nil
}
