package actions

import (
	"fmt"

	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
)

// HandlePickup поднимает предмет с клетки актора.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor

	if actor.Inventory == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s не может ничего подбирать.", actor.Name)
	}

	item := ctx.World.GetItemAt(actor.Pos.X, actor.Pos.Y)
	if item == nil {
		return handlers.EmptyResult(), domain.Impossiblef("Здесь нечего подбирать.")
	}

	if actor.Inventory.IsFull() {
		return handlers.EmptyResult(), domain.Impossiblef("Инвентарь полон.")
	}

	// Сначала снимаем с карты, потом кладем в сумку: предмет не должен
	// одновременно числиться в двух местах.
	ctx.World.RemoveEntity(item)
	if !actor.Inventory.AddItem(item) {
		ctx.World.AddEntity(item)
		return handlers.EmptyResult(), domain.Impossiblef("Инвентарь полон.")
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Вы подбираете %s.", item.Name),
		MsgType: domain.MsgInfo,
	}, nil
}
