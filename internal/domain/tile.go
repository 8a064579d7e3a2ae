package domain

import "delve-server/internal/core/types"

// Tile - клетка карты. Walkable/Transparent - неизменяемые свойства
// породы, Visible/Explored - состояние тумана войны, его пишет только
// движок после пересчета FOV.
type Tile struct {
	Walkable    bool `json:"walkable"`
	Transparent bool `json:"transparent"`

	// Внешний вид для клиента: в тени и на свету.
	Dark  types.Glyph `json:"dark"`
	Light types.Glyph `json:"light"`

	Visible  bool `json:"isVisible"`
	Explored bool `json:"isExplored"`
}

// Предустановленные типы клеток.
// Цвета согласованы с клиентской палитрой.
func WallTile() Tile {
	return Tile{
		Walkable:    false,
		Transparent: false,
		Dark:        types.MakeGlyph(0x404040, '#'),
		Light:       types.MakeGlyph(0x808080, '#'),
	}
}

func FloorTile() Tile {
	return Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        types.MakeGlyph(0x202020, '.'),
		Light:       types.MakeGlyph(0x606060, '.'),
	}
}

func StairsTile() Tile {
	return Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        types.MakeGlyph(0x404080, '>'),
		Light:       types.MakeGlyph(0x8080FF, '>'),
	}
}
