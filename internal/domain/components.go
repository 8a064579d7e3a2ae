package domain

import (
	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---
// Компоненты - чистые данные. Они НЕ хранят ссылок на движок или
// карту: все перекрестные обращения идут через Context, который
// передается в хендлер при выполнении действия.

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Glyph types.Glyph `json:"glyph"`
}

// FighterComponent - боевые характеристики.
// HP всегда в диапазоне [0, MaxHP]; смерть наступает ТОЛЬКО через
// падение HP до нуля (см. systems.ApplyAttack).
type FighterComponent struct {
	HP          int  `json:"hp"`
	MaxHP       int  `json:"maxHp"`
	BasePower   int  `json:"basePower"`
	BaseDefense int  `json:"baseDefense"`
	IsDead      bool `json:"isDead"`
}

// AIComponent - стратегия поведения.
// Closed set: Idle / Hostile / Confused. Confused - обертка с таймером:
// PreviousKind фиксируется в момент наложения растерянности и
// восстанавливается, когда счетчик доходит до нуля.
type AIComponent struct {
	Kind           enums.AIKind `json:"kind"`
	TurnsRemaining int          `json:"turnsRemaining,omitempty"`
	PreviousKind   enums.AIKind `json:"previousKind,omitempty"`
}

// InventoryComponent - ограниченный упорядоченный список предметов.
// Предмет принадлежит РОВНО одному владельцу: либо инвентарю, либо
// карте (лежит на полу). Никогда обоим сразу.
type InventoryComponent struct {
	Items    []*Entity `json:"items"`
	Capacity int       `json:"capacity"`
}

// EquipmentComponent - слоты экипировки.
// Храним ID предмета, а не указатель: предмет остается в инвентаре,
// слот лишь ссылается на него.
type EquipmentComponent struct {
	Weapon types.EntityID `json:"weapon,omitempty"`
	Armor  types.EntityID `json:"armor,omitempty"`
}

// LevelComponent - опыт и уровень.
type LevelComponent struct {
	CurrentLevel  int `json:"currentLevel"`
	CurrentXP     int `json:"currentXp"`
	LevelUpBase   int `json:"levelUpBase"`
	LevelUpFactor int `json:"levelUpFactor"`

	// XPGiven - сколько опыта получит убийца этой сущности.
	XPGiven int `json:"xpGiven"`
}

// ConsumableComponent - эффект одноразового предмета.
// Поля интерпретируются в зависимости от Effect:
// Healing: Amount. Lightning: Amount + Range. Confusion: Turns.
// Fireball: Amount + Radius.
type ConsumableComponent struct {
	Effect enums.EffectKind `json:"effect"`
	Amount int              `json:"amount,omitempty"`
	Range  int              `json:"range,omitempty"`
	Radius int              `json:"radius,omitempty"`
	Turns  int              `json:"turns,omitempty"`
}

// EquippableComponent - предмет можно экипировать.
type EquippableComponent struct {
	Slot         enums.EquipSlot `json:"slot"`
	PowerBonus   int             `json:"powerBonus,omitempty"`
	DefenseBonus int             `json:"defenseBonus,omitempty"`
}
