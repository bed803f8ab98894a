package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"randroom/internal/domain"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix - префикс переменных окружения, перекрывающих файл.
const EnvPrefix = "RANDROOM_"

// Config - параметры запуска. Порядок источников:
// Default() -> YAML-файл (если задан) -> окружение RANDROOM_* -> Validate.
type Config struct {
	Game    GameConfig    `yaml:"game" envPrefix:"GAME_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Debug   DebugConfig   `yaml:"debug" envPrefix:"DEBUG_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// GameConfig - параметры симуляции.
type GameConfig struct {
	// Seed - зерно генератора. 0 - взять случайное при старте.
	Seed        uint64 `yaml:"seed" env:"SEED"`
	MapWidth    int    `yaml:"map_width" env:"MAP_WIDTH"`
	MapHeight   int    `yaml:"map_height" env:"MAP_HEIGHT"`
	RoomMinSize int    `yaml:"room_min_size" env:"ROOM_MIN_SIZE"`
	RoomMaxSize int    `yaml:"room_max_size" env:"ROOM_MAX_SIZE"`
	MaxRooms    int    `yaml:"max_rooms" env:"MAX_ROOMS"`
	TorchRadius int    `yaml:"torch_radius" env:"TORCH_RADIUS"`
	LightWalls  bool   `yaml:"light_walls" env:"LIGHT_WALLS"`
	// FOV - алгоритм обзора: "gruid" или "shadowcast".
	FOV string `yaml:"fov" env:"FOV"`
}

// StorageConfig - где лежат сохранение и реплеи.
type StorageConfig struct {
	Backend   string `yaml:"backend" env:"BACKEND"` // file | sqlite
	Path      string `yaml:"path" env:"PATH"`
	ReplayDir string `yaml:"replay_dir" env:"REPLAY_DIR"`
	// Record - писать реплей каждой новой партии.
	Record bool `yaml:"record" env:"RECORD"`
}

// DebugConfig - сервер наблюдателя. Пустой Addr - выключен.
type DebugConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// LogConfig - куда писать логи. Пустой File - stderr.
type LogConfig struct {
	File string `yaml:"file" env:"FILE"`
}

// Default возвращает конфигурацию классической игры.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MapWidth:    domain.MapWidth,
			MapHeight:   domain.MapHeight,
			RoomMinSize: domain.RoomMinSize,
			RoomMaxSize: domain.RoomMaxSize,
			MaxRooms:    domain.MaxRooms,
			TorchRadius: domain.TorchRadius,
			LightWalls:  domain.LightWalls,
			FOV:         "gruid",
		},
		Storage: StorageConfig{
			Backend:   "file",
			Path:      filepath.Join("data", "savegame.json"),
			ReplayDir: filepath.Join("data", "replays"),
			Record:    true,
		},
		Log: LogConfig{
			File: filepath.Join("data", "randroom.log"),
		},
	}
}

// Load собирает конфиг из всех источников. path может быть пустым.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
		defer f.Close()

		if err := decodeYAML(f, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader декодирует YAML поверх значений по умолчанию и проверяет результат.
// Окружение не читается (для тестов).
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decodeYAML(r, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// ParseEnv перекрывает поля переменными RANDROOM_*.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate проверяет согласованность значений.
// Возвращает все найденные проблемы одной ошибкой.
func Validate(cfg *Config) error {
	var errs []error
	g := cfg.Game

	if g.RoomMinSize < 3 {
		errs = append(errs, fmt.Errorf("game.room_min_size %d is too small; minimum is 3", g.RoomMinSize))
	}
	if g.RoomMaxSize < g.RoomMinSize {
		errs = append(errs, fmt.Errorf("game.room_max_size %d is less than room_min_size %d", g.RoomMaxSize, g.RoomMinSize))
	}
	if g.MapWidth <= g.RoomMaxSize || g.MapHeight <= g.RoomMaxSize {
		errs = append(errs, fmt.Errorf("game map %dx%d cannot fit a room of size %d", g.MapWidth, g.MapHeight, g.RoomMaxSize))
	}
	if g.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("game.max_rooms must be positive, got %d", g.MaxRooms))
	}
	if g.TorchRadius < 0 {
		errs = append(errs, fmt.Errorf("game.torch_radius must not be negative, got %d", g.TorchRadius))
	}
	if g.FOV != "gruid" && g.FOV != "shadowcast" {
		errs = append(errs, fmt.Errorf("game.fov %q is invalid; valid values: gruid, shadowcast", g.FOV))
	}

	switch cfg.Storage.Backend {
	case "file", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q is invalid; valid values: file, sqlite", cfg.Storage.Backend))
	}
	if cfg.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path is required"))
	}
	if cfg.Storage.Record && cfg.Storage.ReplayDir == "" {
		errs = append(errs, errors.New("storage.replay_dir is required when storage.record is enabled"))
	}

	return errors.Join(errs...)
}
