package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/version"
)

var (
	// ErrNoSave - сохранения нет (первый запуск или после смерти).
	ErrNoSave = errors.New("no saved game")
	// ErrIncompatibleSave - сохранение другого формата.
	ErrIncompatibleSave = errors.New("incompatible save format")
	// ErrCorruptSave - документ читается, но нарушает инварианты игры.
	ErrCorruptSave = errors.New("corrupt save")
)

// SaveRecord - один документ сохранения: состояние забега и все сущности.
// Индекс 0 в Entities - всегда игрок.
type SaveRecord struct {
	Version  int             `json:"version"`
	Build    string          `json:"build,omitempty"`
	Game     *domain.Game    `json:"game"`
	Entities domain.Entities `json:"entities"`
}

// NewSaveRecord упаковывает состояние сессии текущего формата.
func NewSaveRecord(g *domain.Game, entities domain.Entities) *SaveRecord {
	return &SaveRecord{
		Version:  version.SaveFormat,
		Build:    version.Info().Commit,
		Game:     g,
		Entities: entities,
	}
}

// Store - хранилище одного слота сохранения.
type Store interface {
	Save(ctx context.Context, rec *SaveRecord) error
	// Load возвращает ErrNoSave, если сохранения нет.
	Load(ctx context.Context) (*SaveRecord, error)
	Close() error
}

// Open создает хранилище по имени бэкенда ("file" или "sqlite").
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func encodeRecord(rec *SaveRecord) ([]byte, error) {
	if err := rec.validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

func decodeRecord(data []byte) (*SaveRecord, error) {
	var rec SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if rec.Version != version.SaveFormat {
		return nil, fmt.Errorf("%w: got v%d, want v%d", ErrIncompatibleSave, rec.Version, version.SaveFormat)
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SaveRecord) validate() error {
	switch {
	case r.Game == nil || r.Game.Map == nil || r.Game.Messages == nil:
		return fmt.Errorf("%w: missing game state", ErrCorruptSave)
	case len(r.Entities) == 0:
		return fmt.Errorf("%w: no entities", ErrCorruptSave)
	}
	if err := validateMap(r.Game.Map); err != nil {
		return err
	}
	for i, e := range r.Entities {
		if e == nil {
			return fmt.Errorf("%w: entity %d is null", ErrCorruptSave, i)
		}
	}
	for i, it := range r.Game.Inventory {
		if it == nil {
			return fmt.Errorf("%w: inventory slot %d is null", ErrCorruptSave, i)
		}
	}
	if p := r.Entities[domain.PlayerIndex]; p.Fighter == nil || p.Fighter.OnDeath != enums.DeathPlayer {
		return fmt.Errorf("%w: entity 0 is not the player", ErrCorruptSave)
	}
	return nil
}

// validateMap - сетка должна быть ровно Width x Height, иначе обзор выйдет за границы.
func validateMap(m *domain.Map) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrCorruptSave, m.Width, m.Height)
	}
	if len(m.Tiles) != m.Width {
		return fmt.Errorf("%w: map has %d columns, want %d", ErrCorruptSave, len(m.Tiles), m.Width)
	}
	for x, col := range m.Tiles {
		if len(col) != m.Height {
			return fmt.Errorf("%w: map column %d has %d tiles, want %d", ErrCorruptSave, x, len(col), m.Height)
		}
	}
	return nil
}
