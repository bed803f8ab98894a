package systems

import (
	"fmt"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UseResult - исход применения предмета.
type UseResult uint8

const (
	UsedUp      UseResult = iota // предмет израсходован
	UsedAndKept                  // эффект был, предмет остается
	Cancelled                    // эффекта не было, ход не тратится
)

func (r UseResult) String() string {
	switch r {
	case UsedUp:
		return "USED_UP"
	case UsedAndKept:
		return "USED_AND_KEPT"
	default:
		return "CANCELLED"
	}
}

// Targeter - выбор клетки игроком.
type Targeter interface {
	// TargetTile ждет подтвержденную видимую клетку не дальше maxRange
	// (maxRange <= 0 - без ограничения). ok=false - выбор отменен.
	TargetTile(maxRange float64) (x, y int, ok bool)
}

// EffectContext - всё, что нужно эффекту предмета.
type EffectContext struct {
	Game     *domain.Game
	Entities domain.Entities
	Sight    Sight
	Targeter Targeter
}

// EffectFunc - единый контракт эффекта: индекс в инвентаре и контекст.
type EffectFunc func(invIdx int, ctx *EffectContext) UseResult

var effects = map[enums.ItemKind]EffectFunc{
	enums.ItemHeal:      castHeal,
	enums.ItemLightning: castLightning,
	enums.ItemConfuse:   castConfuse,
	enums.ItemFireball:  castFireball,
	enums.ItemSword:     toggleEquipment,
	enums.ItemShield:    toggleEquipment,
}

// UseItem применяет предмет из инвентаря. Израсходованный удаляется.
func UseItem(invIdx int, ctx *EffectContext) UseResult {
	g := ctx.Game
	item, err := inventoryItem(g, invIdx)
	if err != nil {
		report(g, "", err)
		return Cancelled
	}

	useLogger := logger.Log.WithFields(logrus.Fields{
		"component": "item_system",
		"item":      item.Name,
	})

	effect, ok := lookupEffect(item)
	if !ok {
		g.Log(fmt.Sprintf("The %s cannot be used.", item.Name), types.ColorWhite)
		useLogger.Debug("Item has no use effect.")
		return Cancelled
	}

	result := effect(invIdx, ctx)
	switch result {
	case UsedUp:
		g.Inventory = append(g.Inventory[:invIdx], g.Inventory[invIdx+1:]...)
	case Cancelled:
		g.Log("Cancelled", types.ColorWhite)
	}

	useLogger.WithField("result", result).Debug("Item used.")
	return result
}

func lookupEffect(item *domain.Entity) (EffectFunc, bool) {
	if item.Item == nil {
		return nil, false
	}
	effect, ok := effects[item.Item.Kind]
	return effect, ok
}

func castHeal(_ int, ctx *EffectContext) UseResult {
	g := ctx.Game
	player := ctx.Entities.Player()
	if player.Fighter == nil {
		return Cancelled
	}
	if player.Fighter.HP >= MaxHP(g, player) {
		g.Log("You are already at full health.", types.ColorRed)
		return Cancelled
	}
	g.Log("Your wounds start to feel better!", types.ColorLightViolet)
	Heal(g, player, domain.HealAmount)
	return UsedUp
}

func castLightning(_ int, ctx *EffectContext) UseResult {
	g := ctx.Game
	target := closestMonster(ctx, domain.LightningRange)
	if target < 0 {
		g.Log("No enemy is close enough to strike.", types.ColorRed)
		return Cancelled
	}

	monster := ctx.Entities[target]
	g.Log(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		monster.Name, domain.LightningDamage), types.ColorLightBlue)
	creditPlayer(ctx, target, domain.LightningDamage)
	return UsedUp
}

func castConfuse(_ int, ctx *EffectContext) UseResult {
	g := ctx.Game
	g.Log("Left-click an enemy to confuse it, or right-click to cancel.", types.ColorLightCyan)

	target := targetMonster(ctx, domain.ConfuseRange)
	if target < 0 {
		return Cancelled
	}

	monster := ctx.Entities[target]
	monster.AI = domain.Confuse(monster.AI, domain.ConfuseNumTurns)
	g.Log(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", monster.Name), types.ColorLightGreen)
	return UsedUp
}

func castFireball(_ int, ctx *EffectContext) UseResult {
	g := ctx.Game
	g.Log("Left-click a target tile for the fireball, or right-click to cancel.", types.ColorLightCyan)

	x, y, ok := ctx.Targeter.TargetTile(0)
	if !ok {
		return Cancelled
	}
	g.Log(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", domain.FireballRadius), types.ColorOrange)

	center := domain.Position{X: x, Y: y}
	for i, e := range ctx.Entities {
		if e.Fighter == nil || !e.Alive || e.Pos.DistanceTo(center) > domain.FireballRadius {
			continue
		}
		g.Log(fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, domain.FireballDamage), types.ColorOrange)
		creditPlayer(ctx, i, domain.FireballDamage)
	}
	return UsedUp
}

func toggleEquipment(invIdx int, ctx *EffectContext) UseResult {
	return ToggleEquipment(ctx.Game, invIdx)
}

// creditPlayer наносит урон сущности idx, опыт за смерть идет игроку.
// Игрок не получает опыт за самого себя.
func creditPlayer(ctx *EffectContext, idx, damage int) {
	xp, died := TakeDamage(ctx.Game, ctx.Entities[idx], damage)
	if !died || idx == domain.PlayerIndex {
		return
	}
	if player := ctx.Entities.Player(); player.Fighter != nil {
		player.Fighter.XP += xp
	}
}

// closestMonster - ближайший видимый живой монстр в радиусе или -1.
func closestMonster(ctx *EffectContext, maxRange float64) int {
	player := ctx.Entities.Player()
	closest := -1
	closestDist := maxRange + 1

	for i, e := range ctx.Entities {
		if i == domain.PlayerIndex || e.Fighter == nil || !e.Alive {
			continue
		}
		if !ctx.Sight.IsVisible(e.Pos.X, e.Pos.Y) {
			continue
		}
		if d := player.DistanceTo(e); d < closestDist {
			closest, closestDist = i, d
		}
	}
	return closest
}

// targetMonster повторяет выбор клетки, пока на ней не окажется монстр.
func targetMonster(ctx *EffectContext, maxRange float64) int {
	for {
		x, y, ok := ctx.Targeter.TargetTile(maxRange)
		if !ok {
			return -1
		}
		idx := ctx.Entities.IndexAt(x, y, func(e *domain.Entity) bool {
			return e.Fighter != nil && e.Alive
		})
		if idx > domain.PlayerIndex {
			return idx
		}
	}
}

// InRange - клетка в пределах maxRange от игрока (<= 0 - без ограничения).
func InRange(player *domain.Entity, x, y int, maxRange float64) bool {
	if maxRange <= 0 {
		return true
	}
	return player.Pos.DistanceTo(domain.Position{X: x, Y: y}) <= maxRange
}
