package actions

import (
	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает команду USE - применение расходуемого предмета.
// Предмет списывается из инвентаря ТОЛЬКО после успешной активации:
// невыполнимая активация (полное здоровье, нет целей) ничего не тратит.
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	actor := ctx.Actor

	log := logger.Log.WithFields(logrus.Fields{
		"component":  "use_handler",
		"actor_id":   actor.ID,
		"actor_name": actor.Name,
	})

	if actor.Inventory == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s не может ничего использовать.", actor.Name)
	}

	item := actor.Inventory.FindItem(types.EntityID(p.ItemID))
	if item == nil {
		log.WithField("item_id", p.ItemID).Warn("Item not found in inventory")
		return handlers.EmptyResult(), domain.Impossiblef("Предмет не найден в инвентаре.")
	}

	if item.Consumable == nil {
		return handlers.EmptyResult(), domain.Impossiblef("%s нельзя использовать.", item.Name)
	}

	// Цель по умолчанию - клетка самого актора (лечение, молния).
	target := actor.Pos
	if p.Target != nil {
		target = domain.Position{X: p.Target.X, Y: p.Target.Y}
	}

	if err := systems.ActivateConsumable(ctx.World, ctx.Log, actor, item, target); err != nil {
		return handlers.EmptyResult(), err
	}

	actor.Inventory.RemoveItem(item.ID)

	log.WithFields(logrus.Fields{
		"item_name": item.Name,
		"effect":    item.Consumable.Effect,
	}).Info("Item used successfully")

	return handlers.EmptyResult(), nil
}
