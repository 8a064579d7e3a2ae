package domain

import (
	"delve-server/internal/core/types"
	"errors"
)

// GameMap - один этаж подземелья: сетка клеток и сущности на ней.
type GameMap struct {
	Tiles  [][]Tile `json:"tiles"` // [y][x]
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Depth  int      `json:"depth"`

	// Entities - упорядоченный список. Порядок вставки задает порядок
	// ходов врагов (детерминированный tie-break), поэтому это слайс,
	// а НЕ мапа. Удаление обязано сохранять порядок остальных.
	Entities []*Entity `json:"entities"`

	// EntryPos - точка входа (центр первой комнаты).
	// DownstairsPos - клетка лестницы вниз (последняя комната).
	EntryPos      Position `json:"entryPos"`
	DownstairsPos Position `json:"downstairsPos"`

	// Индексы. Не сериализуются: перестраиваются из Entities
	// после загрузки снапшота (RebuildIndexes).
	// Ключ SpatialHash: Y * Width + X.
	SpatialHash    map[int][]*Entity          `json:"-"`
	EntityRegistry map[types.EntityID]*Entity `json:"-"`
}

// NewGameMap создает пустой этаж, залитый стенами.
func NewGameMap(width, height, depth int) *GameMap {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = WallTile()
		}
		tiles[y] = row
	}

	return &GameMap{
		Tiles:          tiles,
		Width:          width,
		Height:         height,
		Depth:          depth,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[types.EntityID]*Entity),
	}
}

func (m *GameMap) GetIndex(x, y int) int {
	return y*m.Width + x
}

// InBounds возвращает true, если координаты внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWalkable: клетка в границах и проходима.
func (m *GameMap) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Walkable
}

// AddEntity добавляет сущность на карту (в конец списка ходов)
// и регистрирует её в индексах.
func (m *GameMap) AddEntity(e *Entity) {
	m.Entities = append(m.Entities, e)
	m.EntityRegistry[e.ID] = e
	m.addToHash(e)
}

// RemoveEntity снимает сущность с карты (подбор предмета, переход
// между этажами). Порядок оставшихся сущностей сохраняется.
func (m *GameMap) RemoveEntity(e *Entity) {
	for i, other := range m.Entities {
		if other.ID == e.ID {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			break
		}
	}
	delete(m.EntityRegistry, e.ID)
	m.removeFromHash(e)
}

// GetEntity ищет сущность по ID.
func (m *GameMap) GetEntity(id types.EntityID) *Entity {
	return m.EntityRegistry[id]
}

// UpdateEntityPos перемещает сущность с обновлением индекса.
func (m *GameMap) UpdateEntityPos(e *Entity, newX, newY int) error {
	if !m.InBounds(newX, newY) {
		return errors.New("out of bounds")
	}

	m.removeFromHash(e)
	e.Pos.X = newX
	e.Pos.Y = newY
	m.addToHash(e)
	return nil
}

// GetEntitiesAt возвращает сущности в клетке (быстро, через индекс).
func (m *GameMap) GetEntitiesAt(x, y int) []*Entity {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.SpatialHash[m.GetIndex(x, y)]
}

// GetBlockingEntityAt возвращает блокирующую сущность в клетке
// или nil. Блокирующих не бывает больше одной.
func (m *GameMap) GetBlockingEntityAt(x, y int) *Entity {
	for _, e := range m.GetEntitiesAt(x, y) {
		if e.BlocksMovement {
			return e
		}
	}
	return nil
}

// GetActorAt возвращает живого актора в клетке или nil.
func (m *GameMap) GetActorAt(x, y int) *Entity {
	for _, e := range m.GetEntitiesAt(x, y) {
		if e.IsAlive() {
			return e
		}
	}
	return nil
}

// GetItemAt возвращает первый подбираемый предмет в клетке или nil.
func (m *GameMap) GetItemAt(x, y int) *Entity {
	for _, e := range m.GetEntitiesAt(x, y) {
		if e.IsItem() {
			return e
		}
	}
	return nil
}

// Player возвращает игрока на этаже. Инвариант: он ровно один.
func (m *GameMap) Player() *Entity {
	for _, e := range m.Entities {
		if e.IsPlayer() {
			return e
		}
	}
	return nil
}

// Actors перечисляет живых акторов в порядке вставки.
func (m *GameMap) Actors() []*Entity {
	actors := make([]*Entity, 0, len(m.Entities))
	for _, e := range m.Entities {
		if e.IsAlive() {
			actors = append(actors, e)
		}
	}
	return actors
}

// RebuildIndexes восстанавливает SpatialHash и реестр из списка
// сущностей. Вызывается после десериализации снапшота.
func (m *GameMap) RebuildIndexes() {
	m.SpatialHash = make(map[int][]*Entity)
	m.EntityRegistry = make(map[types.EntityID]*Entity)
	for _, e := range m.Entities {
		m.EntityRegistry[e.ID] = e
		m.addToHash(e)
	}
}

func (m *GameMap) addToHash(e *Entity) {
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	m.SpatialHash[idx] = append(m.SpatialHash[idx], e)
}

func (m *GameMap) removeFromHash(e *Entity) {
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	entities := m.SpatialHash[idx]

	for i, other := range entities {
		if other.ID == e.ID {
			// Swap with last: порядок внутри клетки не важен.
			lastIdx := len(entities) - 1
			entities[i] = entities[lastIdx]
			m.SpatialHash[idx] = entities[:lastIdx]
			return
		}
	}
}
