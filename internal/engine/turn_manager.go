package engine

import (
	"context"

	"randroom/internal/domain"
	"randroom/internal/systems"
)

// monstersTurn - ход всех сущностей с AI после хода игрока, по порядку индексов.
// Длина фиксируется до прохода: сущности, появившиеся во время прохода, ходят в следующий раз.
func (s *Session) monstersTurn() {
	n := len(s.entities)
	for idx := domain.PlayerIndex + 1; idx < n; idx++ {
		if s.entities[idx].AI == nil {
			continue
		}
		systems.TakeTurn(s.game, s.entities, idx, s.vis, s.rng)
	}
}

// menuChooser - выбор прибавки уровня через меню интерфейса.
// После отмены ctx интерфейс больше не отвечает, берется первый вариант.
type menuChooser struct {
	ctx context.Context
	ui  UI
}

func (c menuChooser) ChooseStat(header string, options []string) (int, bool) {
	idx, ok := c.ui.Menu(header, options)
	if !ok && c.ctx.Err() != nil {
		return 0, true
	}
	return idx, ok
}
