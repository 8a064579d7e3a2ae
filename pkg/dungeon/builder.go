package dungeon

import (
	"math/rand"

	"delve-server/internal/domain"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Inner перечисляет внутренние (выкапываемые) клетки комнаты.
func (r Rect) Inner() (x1, y1, x2, y2 int) {
	return r.X + 1, r.Y + 1, r.X + r.W - 1, r.Y + r.H - 1
}

func carveRoom(m *domain.GameMap, room Rect) {
	x1, y1, x2, y2 := room.Inner()
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			m.Tiles[y][x] = domain.FloorTile()
		}
	}
}

func carveHCorridor(m *domain.GameMap, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		m.Tiles[y][x] = domain.FloorTile()
	}
}

func carveVCorridor(m *domain.GameMap, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		m.Tiles[y][x] = domain.FloorTile()
	}
}

// LevelBuilder предоставляет fluent API для создания этажей
type LevelBuilder struct {
	depth  int
	params GenParams
	rooms  []Rect
	m      *domain.GameMap
	rng    *rand.Rand
}

// NewLevel создает новый builder для этажа глубины depth.
// Карта изначально целиком из стен.
func NewLevel(depth int, params GenParams, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		depth:  depth,
		params: params,
		m:      domain.NewGameMap(params.Width, params.Height, depth),
		rng:    rng,
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// WithRooms генерирует комнаты и коридоры.
// Пересекающиеся кандидаты отбрасываются (Intersects захватывает и
// касание стенок, так что между комнатами остается прослойка камня).
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	maxRooms := b.params.MaxRooms
	b.rooms = make([]Rect, 0, maxRooms)

	for i := 0; i < maxRooms; i++ {
		w := b.randRange(b.params.RoomMinSize, b.params.RoomMaxSize)
		h := b.randRange(b.params.RoomMinSize, b.params.RoomMaxSize)
		x := b.randRange(1, b.params.Width-w-1)
		y := b.randRange(1, b.params.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(b.m, newRoom)

		// Соединяем с предыдущей комнатой L-образным коридором
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				carveHCorridor(b.m, prevX, currX, prevY)
				carveVCorridor(b.m, prevY, currY, currX)
			} else {
				carveVCorridor(b.m, prevY, currY, prevX)
				carveHCorridor(b.m, prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	// Вход - центр первой комнаты.
	if len(b.rooms) > 0 {
		cx, cy := b.rooms[0].Center()
		b.m.EntryPos = domain.Position{X: cx, Y: cy}
	}

	return b
}

// PlaceStairs размещает лестницу вниз в центре последней комнаты.
func (b *LevelBuilder) PlaceStairs() *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}

	lx, ly := b.rooms[len(b.rooms)-1].Center()
	b.m.Tiles[ly][lx] = domain.StairsTile()
	b.m.DownstairsPos = domain.Position{X: lx, Y: ly}
	return b
}

// Populate заселяет комнаты монстрами и предметами по таблицам
// спавна. Первая комната (вход игрока) остается пустой.
func (b *LevelBuilder) Populate() *LevelBuilder {
	maxMonsters := maxForDepth(MaxMonstersPerRoom, b.depth)
	maxItems := maxForDepth(MaxItemsPerRoom, b.depth)

	for i := 1; i < len(b.rooms); i++ {
		room := b.rooms[i]
		b.spawnFromTable(room, MonsterTable, b.rng.Intn(maxMonsters+1))
		b.spawnFromTable(room, ItemTable, b.rng.Intn(maxItems+1))
	}

	return b
}

func (b *LevelBuilder) spawnFromTable(room Rect, table []SpawnEntry, count int) {
	for i := 0; i < count; i++ {
		entry := pickWeighted(table, b.depth, b.rng)
		if entry == nil {
			return
		}

		pos, ok := b.freeSpotIn(room)
		if !ok {
			continue
		}

		e := entry.Factory()
		e.Pos = pos
		b.m.AddEntity(e)
	}
}

// freeSpotIn ищет свободную внутреннюю клетку комнаты (до 20 попыток).
func (b *LevelBuilder) freeSpotIn(room Rect) (domain.Position, bool) {
	x1, y1, x2, y2 := room.Inner()
	for attempt := 0; attempt < 20; attempt++ {
		x := b.randRange(x1, x2-1)
		y := b.randRange(y1, y2-1)

		if !b.m.IsWalkable(x, y) {
			continue
		}
		if len(b.m.GetEntitiesAt(x, y)) > 0 {
			continue
		}
		pos := domain.Position{X: x, Y: y}
		if pos == b.m.EntryPos || pos == b.m.DownstairsPos {
			continue
		}
		return pos, true
	}
	return domain.Position{}, false
}

// pickWeighted тянет вид из таблицы пропорционально действующим на
// этой глубине весам. nil, если на глубине не доступен ни один вид.
func pickWeighted(table []SpawnEntry, depth int, rng *rand.Rand) *SpawnEntry {
	total := 0
	for _, entry := range table {
		total += entry.weightAt(depth)
	}
	if total <= 0 {
		return nil
	}

	roll := rng.Intn(total)
	for i := range table {
		w := table[i].weightAt(depth)
		if roll < w {
			return &table[i]
		}
		roll -= w
	}
	return nil
}

// RoomCount возвращает количество сгенерированных комнат.
// Rooms возвращает принятые комнаты построенного этажа.
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

func (b *LevelBuilder) RoomCount() int {
	return len(b.rooms)
}

// Build возвращает готовый этаж.
func (b *LevelBuilder) Build() *domain.GameMap {
	return b.m
}
