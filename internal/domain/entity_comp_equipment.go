package domain

import (
	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
)

// Переходы слотов экипировки. Инварианты:
//   - в слоте не более одного предмета;
//   - повторная экипировка того же предмета снимает его (toggle
//     самообратен);
//   - экипировка в занятый слот сперва освобождает слот.

// ItemIn возвращает ID предмета в слоте (NilEntityID, если пуст).
func (eq *EquipmentComponent) ItemIn(slot enums.EquipSlot) types.EntityID {
	switch slot {
	case enums.EquipSlotWeapon:
		return eq.Weapon
	case enums.EquipSlotArmor:
		return eq.Armor
	}
	return types.NilEntityID
}

// IsEquipped проверяет, экипирован ли предмет с данным ID.
func (eq *EquipmentComponent) IsEquipped(itemID types.EntityID) bool {
	if itemID.IsNil() {
		return false
	}
	return eq.Weapon == itemID || eq.Armor == itemID
}

// EquipToSlot помещает предмет в слот. Возвращает ID вытесненного
// предмета (NilEntityID, если слот был пуст).
func (eq *EquipmentComponent) EquipToSlot(slot enums.EquipSlot, itemID types.EntityID) types.EntityID {
	prev := eq.ItemIn(slot)
	eq.setSlot(slot, itemID)
	return prev
}

// UnequipFromSlot освобождает слот. Возвращает ID снятого предмета.
func (eq *EquipmentComponent) UnequipFromSlot(slot enums.EquipSlot) types.EntityID {
	prev := eq.ItemIn(slot)
	eq.setSlot(slot, types.NilEntityID)
	return prev
}

// UnequipItem снимает предмет, в каком бы слоте он ни был.
// Вызывается перед выбросом предмета на пол.
func (eq *EquipmentComponent) UnequipItem(itemID types.EntityID) bool {
	for _, slot := range enums.AllEquipSlots {
		if eq.ItemIn(slot) == itemID {
			eq.setSlot(slot, types.NilEntityID)
			return true
		}
	}
	return false
}

func (eq *EquipmentComponent) setSlot(slot enums.EquipSlot, itemID types.EntityID) {
	switch slot {
	case enums.EquipSlotWeapon:
		eq.Weapon = itemID
	case enums.EquipSlotArmor:
		eq.Armor = itemID
	}
}

// slotIDs перечисляет занятые слоты в фиксированном порядке.
func (eq *EquipmentComponent) slotIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(enums.AllEquipSlots))
	for _, slot := range enums.AllEquipSlots {
		ids = append(ids, eq.ItemIn(slot))
	}
	return ids
}
