package systems

import (
	"fmt"
	"strings"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult - итог одной атаки (для логов и тестов).
type AttackResult struct {
	Damage int
	Killed bool
	XP     int
}

// heldEquipment - надетые вещи бойца. Инвентарь есть только у игрока.
func heldEquipment(g *domain.Game, e *domain.Entity) []*domain.EquipmentComponent {
	if e.Fighter == nil || e.Fighter.OnDeath != enums.DeathPlayer {
		return nil
	}
	var out []*domain.EquipmentComponent
	for _, it := range g.Inventory {
		if it.Equipment != nil && it.Equipment.Equipped {
			out = append(out, it.Equipment)
		}
	}
	return out
}

// Power - сила с учетом экипировки.
func Power(g *domain.Game, e *domain.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	total := e.Fighter.BasePower
	for _, eq := range heldEquipment(g, e) {
		total += eq.PowerBonus
	}
	return total
}

// Defense - защита с учетом экипировки.
func Defense(g *domain.Game, e *domain.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	total := e.Fighter.BaseDefense
	for _, eq := range heldEquipment(g, e) {
		total += eq.DefenseBonus
	}
	return total
}

// MaxHP - максимум здоровья с учетом экипировки.
func MaxHP(g *domain.Game, e *domain.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	total := e.Fighter.BaseMaxHP
	for _, eq := range heldEquipment(g, e) {
		total += eq.HPBonus
	}
	return total
}

// Attack - атака attackerIdx по defenderIdx. Урон = сила - защита.
// Опыт за убийство получает атакующий.
func Attack(g *domain.Game, entities domain.Entities, attackerIdx, defenderIdx int) AttackResult {
	attacker, target := entities.Pair(attackerIdx, defenderIdx)

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_name": attacker.Name,
		"target_name":   target.Name,
	})

	if attacker.Fighter == nil || target.Fighter == nil {
		combatLogger.Warn("Attack skipped: one of the sides is not a fighter.")
		return AttackResult{}
	}

	damage := Power(g, attacker) - Defense(g, target)
	if damage <= 0 {
		g.Log(fmt.Sprintf("%s attacks %s but it has no effect!", capitalize(attacker.Name), target.Name), types.ColorWhite)
		combatLogger.WithField("damage", damage).Debug("Attack resolved without effect.")
		return AttackResult{}
	}

	g.Log(fmt.Sprintf("%s attacks %s for %d hit points.", capitalize(attacker.Name), target.Name, damage), types.ColorWhite)
	xp, died := TakeDamage(g, target, damage)
	if died && attacker.Fighter != nil {
		attacker.Fighter.XP += xp
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"target_died": died,
		"xp":          xp,
	}).Debug("Attack resolved.")

	return AttackResult{Damage: damage, Killed: died, XP: xp}
}

// TakeDamage - единственный путь потери здоровья.
// Смерть срабатывает ровно один раз; возвращает опыт за жертву.
func TakeDamage(g *domain.Game, e *domain.Entity, amount int) (int, bool) {
	if e.Fighter == nil || amount <= 0 {
		return 0, false
	}

	e.Fighter.HP -= amount
	if e.Fighter.HP > 0 || !e.Alive {
		return 0, false
	}

	e.Alive = false
	xp := e.Fighter.XP
	switch e.Fighter.OnDeath {
	case enums.DeathPlayer:
		playerDeath(g, e)
	default:
		monsterDeath(g, e, xp)
	}
	return xp, true
}

// Heal лечит бойца, не превышая максимум.
func Heal(g *domain.Game, e *domain.Entity, amount int) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP = min(e.Fighter.HP+amount, MaxHP(g, e))
}

func playerDeath(g *domain.Game, e *domain.Entity) {
	g.Log("You died!", types.ColorRed)
	e.Glyph = types.MakeGlyph(types.ColorDarkRed, '%')

	logger.Log.WithField("component", "combat_system").Info("Player died.")
}

func monsterDeath(g *domain.Game, e *domain.Entity, xp int) {
	g.Log(fmt.Sprintf("%s is dead! You gain %d experience points.", capitalize(e.Name), xp), types.ColorOrange)

	// Труп остается на карте, но больше не боец
	e.Glyph = types.MakeGlyph(types.ColorDarkRed, '%')
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
