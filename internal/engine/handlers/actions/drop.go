package actions

import (
	"fmt"

	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/pkg/api"
)

// HandleDrop выбрасывает предмет из инвентаря на клетку актора.
// Экипированный предмет перед выбросом автоматически снимается.
func HandleDrop(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	actor := ctx.Actor

	if actor.Inventory == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s не может ничего выбрасывать.", actor.Name)
	}

	item := actor.Inventory.FindItem(types.EntityID(p.ItemID))
	if item == nil {
		return handlers.EmptyResult(), domain.Impossiblef("Предмет не найден в инвентаре.")
	}

	if actor.Equipment != nil && actor.Equipment.IsEquipped(item.ID) {
		actor.Equipment.UnequipItem(item.ID)
		ctx.Log.Addf(domain.MsgInfo, "Вы снимаете %s.", item.Name)
	}

	actor.Inventory.RemoveItem(item.ID)
	item.Pos = actor.Pos
	ctx.World.AddEntity(item)

	return handlers.Result{
		Msg:     fmt.Sprintf("Вы выбрасываете %s.", item.Name),
		MsgType: domain.MsgInfo,
	}, nil
}
