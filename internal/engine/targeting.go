package engine

import (
	"randroom/internal/systems"
)

// frameTargeter - режим прицеливания: кадр, событие, проверка клетки.
// Клик вне поля зрения или дальше maxRange игнорируется.
type frameTargeter struct {
	s *Session
}

func (t frameTargeter) TargetTile(maxRange float64) (int, int, bool) {
	player := t.s.entities.Player()
	for {
		ev := t.s.ui.PollTarget(t.s.frame())
		switch ev.Kind {
		case TargetCancel:
			return 0, 0, false
		case TargetClick:
			if t.s.vis.IsVisible(ev.X, ev.Y) && systems.InRange(player, ev.X, ev.Y, maxRange) {
				return ev.X, ev.Y, true
			}
			t.s.log.WithField("target", ev).Debug("Target rejected")
		}
	}
}
