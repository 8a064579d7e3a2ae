package dungeon

import (
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Параметры генерации по умолчанию
const (
	DefaultMapWidth    = 80
	DefaultMapHeight   = 43
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// GenParams - параметры генератора этажа.
type GenParams struct {
	Width       int
	Height      int
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
}

// DefaultParams возвращает параметры генерации по умолчанию.
func DefaultParams() GenParams {
	return GenParams{
		Width:       DefaultMapWidth,
		Height:      DefaultMapHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate проверяет выполнимость параметров до начала генерации.
func (p GenParams) Validate() error {
	if p.Width < 5 || p.Height < 5 {
		return &domain.ConfigurationError{Field: "map size", Detail: "карта слишком мала"}
	}
	if p.MaxRooms < 1 {
		return &domain.ConfigurationError{Field: "maxRooms", Detail: "нужна хотя бы одна комната"}
	}
	if p.RoomMinSize < 3 {
		return &domain.ConfigurationError{Field: "roomMinSize", Detail: "комната меньше 3 клеток вырождается"}
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return &domain.ConfigurationError{Field: "roomMaxSize", Detail: "максимум меньше минимума"}
	}
	if p.RoomMaxSize+2 > p.Width || p.RoomMaxSize+2 > p.Height {
		return &domain.ConfigurationError{Field: "roomMaxSize", Detail: "комната не помещается на карту"}
	}
	return nil
}

// Generate создает этаж глубины depth.
// При одинаковых params, depth и состоянии rng результат идентичен.
func Generate(depth int, params GenParams, rng *rand.Rand) (*domain.GameMap, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateTables(); err != nil {
		return nil, err
	}

	b := NewLevel(depth, params, rng).
		WithRooms().
		PlaceStairs().
		Populate()

	m := b.Build()

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"depth":     depth,
		"rooms":     b.RoomCount(),
		"entities":  len(m.Entities),
	}).Info("Floor generated.")

	return m, nil
}
