package engine

import (
	"fmt"
	"time"

	"delve-server/internal/domain"
	"delve-server/pkg/dungeon"

	"github.com/spf13/viper"
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно. От него зависят все этажи:
	// Floor N Seed = MasterSeed + N.
	Seed int64 `mapstructure:"seed"`

	MapWidth    int `mapstructure:"map_width"`
	MapHeight   int `mapstructure:"map_height"`
	MaxRooms    int `mapstructure:"max_rooms"`
	RoomMinSize int `mapstructure:"room_min_size"`
	RoomMaxSize int `mapstructure:"room_max_size"`

	VisionRadius int `mapstructure:"vision_radius"`

	ListenAddr string `mapstructure:"listen_addr"`
	SavePath   string `mapstructure:"save_path"`
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		MapWidth:     dungeon.DefaultMapWidth,
		MapHeight:    dungeon.DefaultMapHeight,
		MaxRooms:     dungeon.DefaultMaxRooms,
		RoomMinSize:  dungeon.DefaultRoomMinSize,
		RoomMaxSize:  dungeon.DefaultRoomMaxSize,
		VisionRadius: domain.VisionRadius,
		ListenAddr:   ":8080",
		SavePath:     "delve.save",
	}
}

// LoadConfig читает конфиг из файла (если path не пуст) и переменных
// окружения с префиксом DELVE_. Незаданные поля берутся из дефолтов.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	defaults := NewConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("map_width", defaults.MapWidth)
	v.SetDefault("map_height", defaults.MapHeight)
	v.SetDefault("max_rooms", defaults.MaxRooms)
	v.SetDefault("room_min_size", defaults.RoomMinSize)
	v.SetDefault("room_max_size", defaults.RoomMaxSize)
	v.SetDefault("vision_radius", defaults.VisionRadius)
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("save_path", defaults.SavePath)

	v.SetEnvPrefix("DELVE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет параметры до старта движка.
func (c Config) Validate() error {
	if c.VisionRadius < 1 {
		return &domain.ConfigurationError{Field: "vision_radius", Detail: "радиус зрения должен быть положительным"}
	}
	return c.GenParams().Validate()
}

// GenParams собирает параметры генератора этажей.
func (c Config) GenParams() dungeon.GenParams {
	return dungeon.GenParams{
		Width:       c.MapWidth,
		Height:      c.MapHeight,
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}
