package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"randroom/internal/core/types/enums"
	"randroom/internal/version"
)

func (s *ReplayService) Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadReplay(bufio.NewReader(f))
}

// ReadReplay декодирует реплей, записанный WriteReplay.
func ReadReplay(r io.Reader) (*Replay, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != version.SaveFormat {
		return nil, fmt.Errorf("%w: replay v%d (expected v%d)", ErrIncompatibleSave, header.Version, version.SaveFormat)
	}

	replay := &Replay{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Events:    make([]ReplayEvent, header.EventCount),
	}

	// 2. Читаем события
	for i := range replay.Events {
		var eh EventHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		ev := ReplayEvent{
			Kind:   EventKind(eh.Kind),
			Action: enums.ActionType(eh.Action),
			OK:     eh.OK != 0,
		}
		switch ev.Kind {
		case EventCommand:
		case EventTarget:
			ev.X, ev.Y = int(eh.A), int(eh.B)
		case EventMenu:
			ev.Choice = int(eh.A)
		default:
			return nil, fmt.Errorf("event %d: unknown kind %d", i, eh.Kind)
		}

		if eh.PayloadLen > 0 {
			payload := make([]byte, eh.PayloadLen)
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, fmt.Errorf("event %d payload: %w", i, err)
			}
			ev.Payload = json.RawMessage(payload)
		}

		replay.Events[i] = ev
	}

	return replay, nil
}
