package systems

import (
	"errors"

	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
)

func asImpossible(err error, target **domain.Impossible) bool {
	return errors.As(err, target)
}

// Общие фабрики для тестов систем.

func openMap(w, h int) *domain.GameMap {
	m := domain.NewGameMap(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Tiles[y][x] = domain.FloorTile()
		}
	}
	return m
}

func markAllVisible(m *domain.GameMap) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Tiles[y][x].Visible = true
		}
	}
}

func testPlayer(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindPlayer,
		Name:           "герой",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        &domain.FighterComponent{HP: 30, MaxHP: 30, BasePower: 5, BaseDefense: 1},
		Inventory:      &domain.InventoryComponent{Capacity: 26},
		Equipment:      &domain.EquipmentComponent{},
		Level: &domain.LevelComponent{
			CurrentLevel: 1, LevelUpBase: 200, LevelUpFactor: 150,
		},
	}
}

func testOrc(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindActor,
		Name:           "орк",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        &domain.FighterComponent{HP: 10, MaxHP: 10, BasePower: 3, BaseDefense: 0},
		AI:             &domain.AIComponent{Kind: enums.AIKindHostile},
		Level:          &domain.LevelComponent{XPGiven: 35},
	}
}
