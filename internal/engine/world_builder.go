package engine

import (
	"math/rand/v2"

	"randroom/internal/core/types"
	"randroom/internal/domain"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// WelcomeMessage - первая запись журнала новой партии.
const WelcomeMessage = "Yo, welcome!"

// buildInitialWorld создает первый уровень, игрока и его стартовый инвентарь.
func buildInitialWorld(params dungeon.Params, rng *rand.Rand) (*domain.Game, domain.Entities) {
	// 1. Игрок всегда под индексом 0
	player := dungeon.NewPlayer()

	// 2. Уровень 1
	m, entities := dungeon.Generate(domain.Entities{player}, 1, rng, params)

	// 3. Состояние забега
	g := domain.NewGame(m)
	g.Inventory = dungeon.StartingKit()
	g.Log(WelcomeMessage, types.ColorRed)

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"entities":  len(entities),
		"start":     player.Pos,
	}).Info("Initial world built")

	return g, entities
}
