package domain

import (
	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
)

// Entity - адресуемый игровой объект. Один тип на всё: актор или
// предмет определяется набором компонентов (nil - свойство
// отсутствует). Набор компонентов фиксируется при создании.
type Entity struct {
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`
	Name string           `json:"name"`

	Pos Position `json:"pos"`

	// BlocksMovement - мешает ли сущность пройти в её клетку.
	// Снимается при смерти: труп проходим.
	BlocksMovement bool `json:"blocksMovement"`

	// RenderOrder - слой отрисовки (труп < предмет < актор).
	RenderOrder enums.RenderOrder `json:"renderOrder"`

	Render *RenderComponent `json:"render,omitempty"`

	// Компоненты актора
	Fighter   *FighterComponent   `json:"fighter,omitempty"`
	AI        *AIComponent        `json:"ai,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
	Equipment *EquipmentComponent `json:"equipment,omitempty"`
	Level     *LevelComponent     `json:"level,omitempty"`

	// Компоненты предмета
	Consumable *ConsumableComponent `json:"consumable,omitempty"`
	Equippable *EquippableComponent `json:"equippable,omitempty"`
}

// IsActor возвращает true для сущностей, способных ходить и драться.
func (e *Entity) IsActor() bool {
	return e.Fighter != nil
}

// IsAlive: есть боевой компонент и он не в терминальном состоянии.
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && !e.Fighter.IsDead
}

// IsItem возвращает true для подбираемых предметов.
func (e *Entity) IsItem() bool {
	return e.Kind == enums.EntityKindItem
}

// IsPlayer - управляемый актор. На уровне он ровно один.
func (e *Entity) IsPlayer() bool {
	return e.Kind == enums.EntityKindPlayer
}
