package api

import "encoding/json"

// Внешний протокол: JSON поверх WebSocket. Ядро формирует только
// данные; форматирование, цвета и раскладка - забота клиента.

// ClientCommand - входящее сообщение клиента.
type ClientCommand struct {
	Token   string          `json:"token,omitempty"` // ID сущности, которая шлет команду
	Action  string          `json:"action"`          // MOVE, BUMP, PICKUP...
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload: для MOVE / MELEE / BUMP
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// PositionPayload: координата цели (для USE прицельных предметов)
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload: для DROP / USE / EQUIP
type ItemPayload struct {
	ItemID string           `json:"itemId"`
	Target *PositionPayload `json:"target,omitempty"`
}

// Допустимые значения LevelUpPayload.Stat
const (
	LevelUpStatHP      = "hp"
	LevelUpStatPower   = "power"
	LevelUpStatDefense = "defense"
)

// LevelUpPayload: выбор характеристики при повышении уровня
type LevelUpPayload struct {
	Stat string `json:"stat"` // hp, power, defense
}

// --- Ответ сервера ---

// GridMeta - размеры карты
type GridMeta struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TileView - клетка, о которой наблюдатель уже знает
type TileView struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Symbol     string `json:"symbol"`
	Color      string `json:"color"`
	IsVisible  bool   `json:"isVisible"`
	IsExplored bool   `json:"isExplored"`
}

// StatsView - видимые характеристики актора
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Power   int  `json:"power"`
	Defense int  `json:"defense"`
	Level   int  `json:"level"`
	XP      int  `json:"xp"`
	XPNext  int  `json:"xpNext"`
	IsDead  bool `json:"isDead"`
}

// ItemView - предмет в инвентаре
type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Color    string `json:"color"`
	Equipped bool   `json:"equipped"`
}

// EntityView - сущность, видимая наблюдателю
type EntityView struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Pos         struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`
	Symbol      string     `json:"symbol"`
	Color       string     `json:"color"`
	RenderOrder uint8      `json:"renderOrder"`
	Stats       *StatsView `json:"stats,omitempty"`
}

// LogEntry - запись лога сообщений для клиента
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// ServerResponse - снапшот состояния для наблюдателя
type ServerResponse struct {
	Type            string       `json:"type"` // UPDATE, DEAD
	Depth           int          `json:"depth"`
	Turn            int          `json:"turn"`
	Grid            *GridMeta    `json:"grid,omitempty"`
	Map             []TileView   `json:"map,omitempty"`
	Entities        []EntityView `json:"entities,omitempty"`
	Inventory       []ItemView   `json:"inventory,omitempty"`
	Logs            []LogEntry   `json:"logs,omitempty"`
	RequiresLevelUp bool         `json:"requiresLevelUp,omitempty"`
	PlayerDead      bool         `json:"playerDead,omitempty"`
}
