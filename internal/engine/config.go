package engine

import (
	"time"

	"randroom/internal/config"
	"randroom/internal/domain"
	"randroom/internal/systems"
	"randroom/pkg/dungeon"
)

// Алгоритмы обзора.
const (
	FOVGruid      = "gruid"
	FOVShadowcast = "shadowcast"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни и броски AI.
	// 0 - взять случайное при создании партии.
	Seed uint64

	Params      dungeon.Params
	TorchRadius int
	LightWalls  bool
	FOV         string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Params:      dungeon.DefaultParams(),
		TorchRadius: domain.TorchRadius,
		LightWalls:  domain.LightWalls,
		FOV:         FOVGruid,
	}
}

// resolveSeed возвращает заданное зерно или случайное.
func (c Config) resolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// newOracle создает реализацию обзора под карту w×h.
func (c Config) newOracle(w, h int) systems.FOVOracle {
	if c.FOV == FOVShadowcast {
		return systems.NewShadowcastFOV(w, h)
	}
	return systems.NewGridFOV(w, h)
}

// FromGameConfig переносит игровые параметры из файла конфигурации.
func FromGameConfig(gc config.GameConfig) Config {
	return Config{
		Seed: gc.Seed,
		Params: dungeon.Params{
			Width:       gc.MapWidth,
			Height:      gc.MapHeight,
			RoomMinSize: gc.RoomMinSize,
			RoomMaxSize: gc.RoomMaxSize,
			MaxRooms:    gc.MaxRooms,
		},
		TorchRadius: gc.TorchRadius,
		LightWalls:  gc.LightWalls,
		FOV:         gc.FOV,
	}
}
