package domain

// Методы FighterComponent - тотальные функции: всегда кламп,
// никогда не ошибка.

// TakeDamage наносит урон. Возвращает true, если цель погибла
// именно от этого удара (переход в IsDead происходит ровно один раз).
func (f *FighterComponent) TakeDamage(amount int) bool {
	if f.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	f.HP -= amount
	if f.HP <= 0 {
		f.HP = 0
		f.IsDead = true
		return true
	}
	return false
}

// Heal лечит сущность. Возвращает фактически восстановленное
// количество HP (0, если лечить нечего).
func (f *FighterComponent) Heal(amount int) int {
	if f.IsDead {
		return 0 // Не лечим трупы! Нет некромантии!
	}
	if amount < 0 {
		amount = 0
	}

	before := f.HP
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
	return f.HP - before
}

// --- Производные характеристики ---
// power/defense = база + сумма бонусов экипированных предметов.
// Считаются на Entity, т.к. нужны Equipment и Inventory.

// PowerTotal возвращает итоговую силу атаки.
func (e *Entity) PowerTotal() int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BasePower + e.equipBonus(func(eq *EquippableComponent) int {
		return eq.PowerBonus
	})
}

// DefenseTotal возвращает итоговую защиту.
func (e *Entity) DefenseTotal() int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseDefense + e.equipBonus(func(eq *EquippableComponent) int {
		return eq.DefenseBonus
	})
}

func (e *Entity) equipBonus(pick func(*EquippableComponent) int) int {
	if e.Equipment == nil || e.Inventory == nil {
		return 0
	}

	bonus := 0
	for _, id := range e.Equipment.slotIDs() {
		if id.IsNil() {
			continue
		}
		item := e.Inventory.FindItem(id)
		if item != nil && item.Equippable != nil {
			bonus += pick(item.Equippable)
		}
	}
	return bonus
}
