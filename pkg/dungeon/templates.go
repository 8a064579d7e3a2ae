package dungeon

import (
	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
)

// Шаблоны сущностей и таблицы спавна. Веса зависят от глубины:
// для каждого вида действует вес последней ступени, чья глубина
// не превышает текущую (0 - вид на этой глубине не встречается).

// NewPlayer создает сущность игрока со стартовыми характеристиками.
// Герой начинает забег с кинжалом и кожаным доспехом, оба уже надеты.
func NewPlayer() *domain.Entity {
	player := &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindPlayer,
		Name:           "Герой",
		BlocksMovement: true,
		RenderOrder:    enums.RenderOrderActor,
		Render:         &domain.RenderComponent{Glyph: types.MakeGlyph(0xFFFFFF, '@')},
		Fighter: &domain.FighterComponent{
			HP: 30, MaxHP: 30, BasePower: 2, BaseDefense: 1,
		},
		Inventory: &domain.InventoryComponent{Capacity: 26},
		Equipment: &domain.EquipmentComponent{},
		Level: &domain.LevelComponent{
			CurrentLevel:  1,
			LevelUpBase:   200,
			LevelUpFactor: 150,
		},
	}

	for _, item := range []*domain.Entity{NewDagger(), NewLeatherArmor()} {
		player.Inventory.AddItem(item)
		player.Equipment.EquipToSlot(item.Equippable.Slot, item.ID)
	}
	return player
}

// --- МОНСТРЫ ---

func NewOrc() *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindActor,
		Name:           "орк",
		BlocksMovement: true,
		RenderOrder:    enums.RenderOrderActor,
		Render:         &domain.RenderComponent{Glyph: types.MakeGlyph(0x3F7F3F, 'o')},
		Fighter: &domain.FighterComponent{
			HP: 10, MaxHP: 10, BasePower: 3, BaseDefense: 0,
		},
		AI:    &domain.AIComponent{Kind: enums.AIKindHostile},
		Level: &domain.LevelComponent{XPGiven: 35},
	}
}

func NewTroll() *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindActor,
		Name:           "тролль",
		BlocksMovement: true,
		RenderOrder:    enums.RenderOrderActor,
		Render:         &domain.RenderComponent{Glyph: types.MakeGlyph(0x007F00, 'T')},
		Fighter: &domain.FighterComponent{
			HP: 16, MaxHP: 16, BasePower: 4, BaseDefense: 1,
		},
		AI:    &domain.AIComponent{Kind: enums.AIKindHostile},
		Level: &domain.LevelComponent{XPGiven: 100},
	}
}

// --- РАСХОДУЕМЫЕ ПРЕДМЕТЫ ---

func NewHealingPotion() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "зелье лечения",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0x7F00FF, '!')},
		Consumable: &domain.ConsumableComponent{
			Effect: enums.EffectHealing, Amount: 4,
		},
	}
}

func NewLightningScroll() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "свиток молнии",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0xFFFF00, '~')},
		Consumable: &domain.ConsumableComponent{
			Effect: enums.EffectLightning, Amount: 20, Range: 5,
		},
	}
}

func NewConfusionScroll() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "свиток растерянности",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0xCF3FFF, '~')},
		Consumable: &domain.ConsumableComponent{
			Effect: enums.EffectConfusion, Turns: 10,
		},
	}
}

func NewFireballScroll() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "свиток огненного шара",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0xFF0000, '~')},
		Consumable: &domain.ConsumableComponent{
			Effect: enums.EffectFireball, Amount: 12, Radius: 3,
		},
	}
}

// --- ЭКИПИРОВКА ---

func NewDagger() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "кинжал",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0x00BFFF, '/')},
		Equippable: &domain.EquippableComponent{
			Slot: enums.EquipSlotWeapon, PowerBonus: 2,
		},
	}
}

func NewSword() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "меч",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0x00BFFF, '/')},
		Equippable: &domain.EquippableComponent{
			Slot: enums.EquipSlotWeapon, PowerBonus: 4,
		},
	}
}

func NewLeatherArmor() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "кожаный доспех",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0x8B4513, '[')},
		Equippable: &domain.EquippableComponent{
			Slot: enums.EquipSlotArmor, DefenseBonus: 1,
		},
	}
}

func NewChainMail() *domain.Entity {
	return &domain.Entity{
		ID:          types.NewEntityID(),
		Kind:        enums.EntityKindItem,
		Name:        "кольчуга",
		RenderOrder: enums.RenderOrderItem,
		Render:      &domain.RenderComponent{Glyph: types.MakeGlyph(0x8B8B83, '[')},
		Equippable: &domain.EquippableComponent{
			Slot: enums.EquipSlotArmor, DefenseBonus: 3,
		},
	}
}

// --- ТАБЛИЦЫ СПАВНА ---

// DepthWeight - ступень веса: начиная с Depth вид весит Weight.
type DepthWeight struct {
	Depth  int
	Weight int
}

// SpawnEntry - вид в таблице спавна.
type SpawnEntry struct {
	Name    string
	Factory func() *domain.Entity
	Weights []DepthWeight // отсортированы по Depth по возрастанию
}

// FloorMaximum - ступень лимита: начиная с Depth не более Max штук
// на комнату.
type FloorMaximum struct {
	Depth int
	Max   int
}

var MonsterTable = []SpawnEntry{
	{Name: "орк", Factory: NewOrc, Weights: []DepthWeight{{1, 80}}},
	{Name: "тролль", Factory: NewTroll, Weights: []DepthWeight{{3, 15}, {5, 30}, {7, 60}}},
}

var ItemTable = []SpawnEntry{
	{Name: "зелье лечения", Factory: NewHealingPotion, Weights: []DepthWeight{{1, 35}}},
	{Name: "свиток растерянности", Factory: NewConfusionScroll, Weights: []DepthWeight{{2, 10}}},
	{Name: "свиток молнии", Factory: NewLightningScroll, Weights: []DepthWeight{{4, 25}}},
	{Name: "меч", Factory: NewSword, Weights: []DepthWeight{{4, 5}}},
	{Name: "свиток огненного шара", Factory: NewFireballScroll, Weights: []DepthWeight{{6, 25}}},
	{Name: "кольчуга", Factory: NewChainMail, Weights: []DepthWeight{{6, 15}}},
}

var MaxMonstersPerRoom = []FloorMaximum{{1, 2}, {4, 3}, {6, 5}}
var MaxItemsPerRoom = []FloorMaximum{{1, 1}, {4, 2}}

// weightAt возвращает действующий вес вида на глубине depth.
func (e SpawnEntry) weightAt(depth int) int {
	w := 0
	for _, step := range e.Weights {
		if step.Depth > depth {
			break
		}
		w = step.Weight
	}
	return w
}

// maxForDepth возвращает действующий лимит на глубине depth.
func maxForDepth(table []FloorMaximum, depth int) int {
	m := 0
	for _, step := range table {
		if step.Depth > depth {
			break
		}
		m = step.Max
	}
	return m
}

// ValidateTables проверяет согласованность таблиц спавна.
func ValidateTables() error {
	for _, table := range [][]SpawnEntry{MonsterTable, ItemTable} {
		for _, entry := range table {
			if entry.Factory == nil {
				return &domain.ConfigurationError{
					Field: entry.Name, Detail: "у вида нет фабрики",
				}
			}
			prevDepth := 0
			for _, step := range entry.Weights {
				if step.Weight < 0 {
					return &domain.ConfigurationError{
						Field: entry.Name, Detail: "отрицательный вес спавна",
					}
				}
				if step.Depth <= prevDepth {
					return &domain.ConfigurationError{
						Field: entry.Name, Detail: "ступени веса не упорядочены по глубине",
					}
				}
				prevDepth = step.Depth
			}
		}
	}
	return nil
}
