package actions

import (
	"fmt"

	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/pkg/api"
)

// HandleEquip - переключатель экипировки: повторная команда на уже
// надетый предмет снимает его. Экипировка в занятый слот сперва
// освобождает слот.
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	actor := ctx.Actor

	if actor.Inventory == nil || actor.Equipment == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s не может носить экипировку.", actor.Name)
	}

	item := actor.Inventory.FindItem(types.EntityID(p.ItemID))
	if item == nil {
		return handlers.EmptyResult(), domain.Impossiblef("Предмет не найден в инвентаре.")
	}
	if item.Equippable == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s нельзя экипировать.", item.Name)
	}

	// Toggle: снятие уже надетого предмета.
	if actor.Equipment.IsEquipped(item.ID) {
		actor.Equipment.UnequipItem(item.ID)
		return handlers.Result{
			Msg:     fmt.Sprintf("Вы снимаете %s.", item.Name),
			MsgType: domain.MsgInfo,
		}, nil
	}

	if prevID := actor.Equipment.EquipToSlot(item.Equippable.Slot, item.ID); !prevID.IsNil() {
		if prev := actor.Inventory.FindItem(prevID); prev != nil {
			ctx.Log.Addf(domain.MsgInfo, "Вы снимаете %s.", prev.Name)
		}
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Вы экипируете %s.", item.Name),
		MsgType: domain.MsgInfo,
	}, nil
}
