package systems

import (
	"fmt"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// StatChooser спрашивает игрока, какую характеристику поднять.
// ok=false - окно закрыли без выбора.
type StatChooser interface {
	ChooseStat(header string, options []string) (choice int, ok bool)
}

const (
	ChoiceMaxHP = iota
	ChoicePower
	ChoiceDefense
)

// Прибавки за уровень.
const (
	LevelUpHP      = 20
	LevelUpPower   = 1
	LevelUpDefense = 1
)

// LevelUpXP - порог опыта для перехода с уровня level на следующий.
func LevelUpXP(level int) int {
	return domain.LevelUpBase + level*domain.LevelUpFactor
}

// CheckLevelUp повышает уровень, пока опыта хватает на порог.
// За каждый полученный уровень игрок выбирает одну прибавку.
// Возвращает число полученных уровней.
func CheckLevelUp(g *domain.Game, player *domain.Entity, chooser StatChooser) int {
	gained := 0
	for player.Fighter != nil && player.Fighter.XP >= LevelUpXP(player.Level) {
		f := player.Fighter
		threshold := LevelUpXP(player.Level)
		player.Level++
		f.XP -= threshold
		gained++

		g.Log(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!", player.Level), types.ColorYellow)

		options := []string{
			fmt.Sprintf("Constitution (+%d HP, from %d)", LevelUpHP, f.BaseMaxHP),
			fmt.Sprintf("Strength (+%d attack, from %d)", LevelUpPower, f.BasePower),
			fmt.Sprintf("Agility (+%d defense, from %d)", LevelUpDefense, f.BaseDefense),
		}

		// Окно не закрывается без корректного выбора
		choice := -1
		for choice < ChoiceMaxHP || choice > ChoiceDefense {
			c, ok := chooser.ChooseStat("Level up! Choose a stat to raise:\n", options)
			if ok {
				choice = c
			}
		}

		switch choice {
		case ChoiceMaxHP:
			f.BaseMaxHP += LevelUpHP
			f.HP = MaxHP(g, player)
		case ChoicePower:
			f.BasePower += LevelUpPower
		case ChoiceDefense:
			f.BaseDefense += LevelUpDefense
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "progression",
			"level":     player.Level,
			"choice":    choice,
			"xp_left":   f.XP,
		}).Info("Player leveled up.")
	}
	return gained
}
