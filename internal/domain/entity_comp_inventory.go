package domain

import "delve-server/internal/core/types"

// AddItem добавляет предмет в инвентарь с проверкой вместимости.
// Порядок предметов сохраняется (порядок подбора).
func (inv *InventoryComponent) AddItem(item *Entity) bool {
	if inv == nil || item == nil {
		return false
	}
	if len(inv.Items) >= inv.Capacity {
		return false
	}

	inv.Items = append(inv.Items, item)
	return true
}

// RemoveItem удаляет предмет из инвентаря, сохраняя порядок остальных.
func (inv *InventoryComponent) RemoveItem(itemID types.EntityID) *Entity {
	if inv == nil {
		return nil
	}

	for i, item := range inv.Items {
		if item.ID == itemID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem ищет предмет по ID.
func (inv *InventoryComponent) FindItem(itemID types.EntityID) *Entity {
	if inv == nil {
		return nil
	}

	for _, item := range inv.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// IsFull проверяет, есть ли еще место.
func (inv *InventoryComponent) IsFull() bool {
	return len(inv.Items) >= inv.Capacity
}
