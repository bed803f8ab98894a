package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"randroom/internal/core/types/enums"
	"randroom/internal/version"
)

const (
	MagicHeader string = `RRPL` // 4 байта
	ReplayExt   string = ".rrpl"
)

// EventKind - вид записанного ввода.
type EventKind uint8

const (
	EventCommand EventKind = iota + 1 // команда игрока
	EventTarget                       // клик при выборе цели
	EventMenu                         // выбор пункта меню
)

// ReplayEvent - один элемент ввода. Поля заполняются по Kind.
type ReplayEvent struct {
	Kind    EventKind
	Action  enums.ActionType // EventCommand
	Payload json.RawMessage  // EventCommand
	X, Y    int              // EventTarget
	Choice  int              // EventMenu
	OK      bool             // EventTarget, EventMenu
}

// Replay - сид генератора и весь ввод забега.
// Повторная симуляция с тем же вводом дает тот же результат.
type Replay struct {
	Seed      uint64
	Timestamp int64
	Events    []ReplayEvent
}

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       uint64  // 8 байт
	Timestamp  int64   // 8 байт
	EventCount uint32  // 4 байта
}

// EventHeader - заголовок каждой записи ввода.
type EventHeader struct {
	Kind       uint8  // 1
	Action     uint8  // 1
	OK         uint8  // 1
	Reserved   uint8  // 1
	A          int32  // 4: X или Choice
	B          int32  // 4: Y
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет реплей в новый файл и возвращает его путь.
func (s *ReplayService) Save(r *Replay) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d%s", r.Seed, r.Timestamp, ReplayExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteReplay(w, r); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, f.Close()
}

// WriteReplay кодирует реплей в бинарный формат.
func WriteReplay(w io.Writer, r *Replay) error {
	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:    version.SaveFormat,
		Seed:       r.Seed,
		Timestamp:  r.Timestamp,
		EventCount: uint32(len(r.Events)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. События
	for i, ev := range r.Events {
		payloadLen := len(ev.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("event %d: payload too long: %d", i, payloadLen)
		}

		eh := EventHeader{
			Kind:       uint8(ev.Kind),
			Action:     uint8(ev.Action),
			PayloadLen: uint16(payloadLen),
		}
		if ev.OK {
			eh.OK = 1
		}
		switch ev.Kind {
		case EventTarget:
			eh.A, eh.B = int32(ev.X), int32(ev.Y)
		case EventMenu:
			eh.A = int32(ev.Choice)
		}

		if err := binary.Write(w, binary.LittleEndian, &eh); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(ev.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
