package systems

import (
	"fmt"

	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
)

// Активация расходуемых предметов. Контракт: если активация вернула
// Impossible - НИКАКИХ частичных эффектов нет и предмет НЕ
// расходуется; предмет списывает вызывающий хендлер и только после
// успешной активации.

// ActivateConsumable применяет эффект предмета item от лица user.
// target - координата цели (для ненацеленных эффектов равна позиции
// самого user).
func ActivateConsumable(m *domain.GameMap, msgLog *domain.MessageLog, user, item *domain.Entity, target domain.Position) error {
	c := item.Consumable
	if c == nil {
		return domain.Impossiblef("%s нельзя использовать.", item.Name)
	}

	switch c.Effect {
	case enums.EffectHealing:
		return activateHealing(msgLog, user, item)
	case enums.EffectLightning:
		return activateLightning(m, msgLog, user, item)
	case enums.EffectConfusion:
		return activateConfusion(m, msgLog, user, item, target)
	case enums.EffectFireball:
		return activateFireball(m, msgLog, user, item, target)
	}

	return domain.Impossiblef("%s нельзя использовать.", item.Name)
}

func activateHealing(msgLog *domain.MessageLog, user, item *domain.Entity) error {
	if user.Fighter == nil {
		return domain.Impossiblef("Вам это не поможет.")
	}

	recovered := user.Fighter.Heal(item.Consumable.Amount)
	if recovered <= 0 {
		return domain.Impossiblef("Ваше здоровье уже полно.")
	}

	msgLog.Addf(domain.MsgInfo, "Вы используете %s и восстанавливаете %d HP.", item.Name, recovered)
	return nil
}

// activateLightning бьет ближайшего видимого актора в радиусе.
func activateLightning(m *domain.GameMap, msgLog *domain.MessageLog, user, item *domain.Entity) error {
	c := item.Consumable

	var target *domain.Entity
	closest := float64(c.Range) + 1.0

	for _, actor := range m.Actors() {
		if actor.ID == user.ID {
			continue
		}
		if !m.Tiles[actor.Pos.Y][actor.Pos.X].Visible {
			continue
		}
		if dist := user.Pos.DistanceTo(actor.Pos); dist < closest {
			closest = dist
			target = actor
		}
	}

	if target == nil {
		return domain.Impossiblef("Рядом некого поразить молнией.")
	}

	msgLog.Addf(domain.MsgCombat,
		"Молния с грохотом бьет в %s, нанося %d урона!", target.Name, c.Amount)
	applyDirectDamage(msgLog, user, target, c.Amount)
	return nil
}

func activateConfusion(m *domain.GameMap, msgLog *domain.MessageLog, user, item *domain.Entity, target domain.Position) error {
	if !m.InBounds(target.X, target.Y) || !m.Tiles[target.Y][target.X].Visible {
		return domain.Impossiblef("Вы не видите эту клетку.")
	}

	victim := m.GetActorAt(target.X, target.Y)
	if victim == nil {
		return domain.Impossiblef("Там некого сбивать с толку.")
	}
	if victim.ID == user.ID {
		return domain.Impossiblef("Нельзя запутать самого себя!")
	}
	if victim.AI == nil {
		return domain.Impossiblef("%s не поддается внушению.", victim.Name)
	}

	// Фиксируем прежнюю стратегию: она восстановится, когда
	// счетчик дойдет до нуля.
	victim.AI.PreviousKind = victim.AI.Kind
	victim.AI.Kind = enums.AIKindConfused
	victim.AI.TurnsRemaining = item.Consumable.Turns

	msgLog.Addf(domain.MsgInfo,
		"Взгляд %s стекленеет, и он начинает бесцельно шататься!", victim.Name)
	return nil
}

func activateFireball(m *domain.GameMap, msgLog *domain.MessageLog, user, item *domain.Entity, target domain.Position) error {
	c := item.Consumable

	if !m.InBounds(target.X, target.Y) || !m.Tiles[target.Y][target.X].Visible {
		return domain.Impossiblef("Вы не видите эту клетку.")
	}

	// Сначала собираем цели, потом наносим урон: разрешение смерти
	// меняет список акторов, итерировать по нему в этот момент нельзя.
	var hit []*domain.Entity
	for _, actor := range m.Actors() {
		if actor.Pos.DistanceTo(target) <= float64(c.Radius) {
			hit = append(hit, actor)
		}
	}

	if len(hit) == 0 {
		return domain.Impossiblef("В области взрыва нет целей.")
	}

	// Огненный шар не разбирает своих: юзер в радиусе тоже горит.
	for _, actor := range hit {
		msgLog.Addf(domain.MsgCombat,
			"%s охватывает огненный взрыв: %d урона!", actor.Name, c.Amount)
		applyDirectDamage(msgLog, user, actor, c.Amount)
	}
	return nil
}

// applyDirectDamage - прямой урон от эффекта (в обход защиты),
// с разрешением смерти и начислением опыта источнику.
func applyDirectDamage(msgLog *domain.MessageLog, source, target *domain.Entity, damage int) {
	if target.Fighter == nil {
		return
	}
	if died := target.Fighter.TakeDamage(damage); died {
		name := target.Name
		resolveDeath(source, target)
		if target.IsPlayer() {
			msgLog.Add("Вы погибаете.", domain.MsgCombat)
		} else {
			msgLog.Add(fmt.Sprintf("%s погибает.", name), domain.MsgCombat)
		}
	}
}
