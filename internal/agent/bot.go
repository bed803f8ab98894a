package agent

import (
	"math/rand/v2"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/engine"
	"randroom/pkg/api"
	"randroom/pkg/logger"
	"randroom/pkg/utils"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/sirupsen/logrus"
)

const unreachable = 9999

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он реализует engine.UI: получает те же кадры, что и человек,
// и на их основе выбирает следующую команду.
//
// Жизненный цикл:
//  1. Render -> бот запоминает кадр.
//  2. ReadCommand -> анализирует кадр и возвращает команду.
//  3. Через MaxTurns команд (или после смерти) бот отдает EXIT.
type Bot struct {
	MaxTurns int
	Turns    int

	frame api.Frame
	rng   *rand.Rand
	pr    *paths.PathRange
	rg    gruid.Range
	log   *logrus.Entry

	// Последний клик в текущем прицеливании
	clicked   bool
	lastClick gruid.Point
}

var _ engine.UI = (*Bot)(nil)

func NewBot(seed uint64, maxTurns int) *Bot {
	return &Bot{
		MaxTurns: maxTurns,
		rng:      utils.NewRNG(seed),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "bot",
			"seed":      seed,
		}),
	}
}

func (b *Bot) Render(frame api.Frame) {
	b.frame = frame
}

// ReadCommand - это мозг бота. Он принимает решение на основе последнего кадра.
func (b *Bot) ReadCommand() domain.Command {
	if b.Turns >= b.MaxTurns {
		return domain.NewCommand(enums.ActionExit, nil)
	}
	b.Turns++
	b.clicked = false

	cmd := b.decide(newLocalView(b.frame))
	b.log.WithFields(logrus.Fields{
		"turn":   b.Turns,
		"action": cmd.Action,
	}).Debug("Bot decided")
	return cmd
}

func (b *Bot) decide(v *localView) domain.Command {
	// --- ШАГ 1: ВАЛИДАЦИЯ СОСТОЯНИЯ ---
	me, hud := v.player, b.frame.HUD
	if me == nil || hud.HP <= 0 || (me.Stats != nil && me.Stats.IsDead) {
		return domain.NewCommand(enums.ActionExit, nil)
	}

	// --- ШАГ 2: ВЫЖИВАНИЕ ---
	if hud.HP < hud.MaxHP/3 {
		if idx := inventoryIndex(b.frame.Inventory, "healing potion"); idx >= 0 {
			return domain.NewCommand(enums.ActionUse, api.InventoryPayload{Index: idx})
		}
	}

	// --- ШАГ 3: БОЙ ---
	if enemy := v.nearest(api.EntityEnemy); enemy != nil {
		return b.stepTowards(v, []gruid.Point{enemy.p()})
	}

	// --- ШАГ 4: ДОБЫЧА ---
	if v.at(me.p(), api.EntityItem) && len(b.frame.Inventory) < domain.MaxInventorySize {
		return domain.NewCommand(enums.ActionPickup, nil)
	}
	if len(b.frame.Inventory) < domain.MaxInventorySize {
		if items := v.all(api.EntityItem); len(items) > 0 {
			return b.stepTowards(v, items)
		}
	}

	// --- ШАГ 5: РАЗВЕДКА, ПОТОМ ЛЕСТНИЦА ---
	if frontier := v.frontier(me.p()); len(frontier) > 0 {
		if cmd, ok := b.pathStep(v, frontier); ok {
			return cmd
		}
	}
	if v.at(me.p(), api.EntityStairs) {
		return domain.NewCommand(enums.ActionDescend, nil)
	}
	if stairs := v.all(api.EntityStairs); len(stairs) > 0 {
		return b.stepTowards(v, stairs)
	}

	return b.wander()
}

// stepTowards идет по карте к ближайшей цели, иначе бродит.
func (b *Bot) stepTowards(v *localView, targets []gruid.Point) domain.Command {
	if cmd, ok := b.pathStep(v, targets); ok {
		return cmd
	}
	return b.wander()
}

// pathStep строит карту расстояний от целей и шагает в соседнюю клетку с меньшей стоимостью.
func (b *Bot) pathStep(v *localView, targets []gruid.Point) (domain.Command, bool) {
	rg := gruid.NewRange(0, 0, v.width, v.height)
	if b.pr == nil || b.rg != rg {
		b.pr, b.rg = paths.NewPathRange(rg), rg
	}

	pp := v.player.p()
	pather := &mapPath{view: v}
	b.pr.BreadthFirstMap(pather, targets, unreachable)

	cost := b.pr.BreadthFirstMapAt(pp)
	if cost > unreachable {
		return domain.Command{}, false
	}
	best, bestCost := pp, cost
	for _, q := range pather.Neighbors(pp) {
		if c := b.pr.BreadthFirstMapAt(q); c < bestCost {
			best, bestCost = q, c
		}
	}
	if best == pp {
		return domain.Command{}, false
	}
	return move(best.X-pp.X, best.Y-pp.Y), true
}

func (b *Bot) wander() domain.Command {
	for range 8 {
		dx, dy := b.rng.IntN(3)-1, b.rng.IntN(3)-1
		if dx != 0 || dy != 0 {
			return move(dx, dy)
		}
	}
	return domain.NewCommand(enums.ActionWait, nil)
}

// PollTarget целится в ближайшего видимого врага.
// Повторный запрос той же цели значит, что клик отклонен (например, вне дальности): отмена.
func (b *Bot) PollTarget(frame api.Frame) engine.TargetEvent {
	v := newLocalView(frame)
	enemy := v.nearest(api.EntityEnemy)
	if enemy == nil || (b.clicked && b.lastClick == enemy.p()) {
		b.clicked = false
		return engine.TargetEvent{Kind: engine.TargetCancel}
	}
	b.clicked, b.lastClick = true, enemy.p()
	return engine.TargetEvent{Kind: engine.TargetClick, X: enemy.Pos.X, Y: enemy.Pos.Y}
}

// Menu - бот всегда берет первый пункт (для прокачки это здоровье).
func (b *Bot) Menu(_ string, options []string) (int, bool) {
	return 0, len(options) > 0
}

func (b *Bot) MessageBox(string) {}
func (b *Bot) ToggleFullscreen() {}

func move(dx, dy int) domain.Command {
	return domain.NewCommand(enums.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
}

func inventoryIndex(inv []api.ItemView, name string) int {
	for _, it := range inv {
		if it.Name == name {
			return it.Index
		}
	}
	return -1
}
