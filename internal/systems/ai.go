package systems

import (
	"fmt"
	"math/rand/v2"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/pkg/logger"
	"randroom/pkg/utils"

	"github.com/sirupsen/logrus"
)

// TakeTurn - один ход монстра idx. Мертвые и безмозглые пропускаются.
func TakeTurn(g *domain.Game, entities domain.Entities, idx int, sight Sight, rng *rand.Rand) {
	monster := entities[idx]
	if idx == domain.PlayerIndex || monster.AI == nil || !monster.Alive {
		return
	}

	switch monster.AI.Kind {
	case enums.AIConfused:
		confusedTurn(g, entities, idx, rng)
	default:
		basicTurn(g, entities, idx, sight)
	}
}

// basicTurn: видим игрока - идем к нему, рядом - бьем.
// Видимость симметрична: монстр видит игрока, если игрок видит монстра.
func basicTurn(g *domain.Game, entities domain.Entities, idx int, sight Sight) {
	monster := entities[idx]
	if !sight.IsVisible(monster.Pos.X, monster.Pos.Y) {
		return
	}

	player := entities.Player()
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"monster":   monster.Name,
		"index":     idx,
	})

	if monster.DistanceTo(player) >= 2 {
		moveTowards(g.Map, entities, idx, player.Pos)
		aiLogger.WithField("pos", monster.Pos).Debug("Monster approaches.")
		return
	}
	if player.Alive && player.Fighter != nil {
		Attack(g, entities, idx, domain.PlayerIndex)
	}
}

// confusedTurn: случайный шаг в 8-окрестности (или на месте).
// Когда счетчик доходит до нуля, возвращается прежнее поведение.
func confusedTurn(g *domain.Game, entities domain.Entities, idx int, rng *rand.Rand) {
	monster := entities[idx]
	ai := monster.AI

	if ai.RemainingTurns > 0 {
		dx := utils.RandRange(rng, -1, 1)
		dy := utils.RandRange(rng, -1, 1)
		MoveBy(g.Map, entities, idx, dx, dy)
		ai.RemainingTurns--
	}

	if ai.RemainingTurns <= 0 {
		monster.AI = ai.Previous
		if monster.AI == nil {
			monster.AI = domain.BasicAI()
		}
		g.Log(fmt.Sprintf("The %s is no longer confused!", monster.Name), types.ColorRed)
	}
}
