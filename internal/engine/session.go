package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"randroom/internal/core/types"
	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
	"randroom/internal/engine/handlers"
	"randroom/internal/engine/handlers/actions"
	"randroom/internal/infrastructure/storage"
	"randroom/internal/systems"
	"randroom/pkg/api"
	"randroom/pkg/dungeon"
	"randroom/pkg/logger"
	"randroom/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Session - одна партия: состояние мира и цикл ходов.
// Владеет Game и Entities и передает их в системы при каждом вызове.
type Session struct {
	cfg   Config
	ui    UI
	store storage.Store // nil - не сохранять (прогон реплея)
	sink  FrameSink     // nil - без наблюдателя

	game     *domain.Game
	entities domain.Entities
	vis      *systems.Visibility

	Seed uint64
	rng  *rand.Rand
	tick int

	handlers map[enums.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

func newSession(cfg Config, ui UI, store storage.Store, seed uint64) *Session {
	return &Session{
		cfg:      cfg,
		ui:       ui,
		store:    store,
		Seed:     seed,
		rng:      utils.NewRNG(seed),
		handlers: actions.Registry(),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"seed":      seed,
		}),
	}
}

// NewGame создает новую партию с первым уровнем.
func NewGame(cfg Config, ui UI, store storage.Store) *Session {
	s := newSession(cfg, ui, store, cfg.resolveSeed())
	s.game, s.entities = buildInitialWorld(cfg.Params, s.rng)
	s.resetVisibility()
	return s
}

// LoadGame продолжает сохраненную партию.
// ErrNoSave и ошибки чтения возвращаются вызывающему.
func LoadGame(ctx context.Context, cfg Config, ui UI, store storage.Store) (*Session, error) {
	rec, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}

	s := newSession(cfg, ui, store, cfg.resolveSeed())
	s.game, s.entities = rec.Game, rec.Entities
	s.resetVisibility()

	s.log.WithFields(logrus.Fields{
		"level":    s.game.DungeonLevel,
		"entities": len(s.entities),
	}).Info("Game loaded")
	return s, nil
}

// SetSink подключает наблюдателя за кадрами.
func (s *Session) SetSink(sink FrameSink) {
	s.sink = sink
}

// Game и Entities - текущее состояние (для тестов и отладки).
func (s *Session) Game() *domain.Game         { return s.game }
func (s *Session) Entities() domain.Entities { return s.entities }

// Play крутит цикл до EXIT или отмены ctx. В обоих случаях партия сохраняется.
func (s *Session) Play(ctx context.Context) error {
	s.log.Info("Session started")
	for {
		player := s.entities.Player()

		// 1. Обзор пересчитывается, только если игрок сдвинулся
		s.vis.Update(s.game.Map, player.Pos)

		// 2. Кадр
		frame := s.frame()
		s.ui.Render(frame)
		if s.sink != nil {
			s.sink.Publish(frame)
		}

		// 3. Повышение уровня
		systems.CheckLevelUp(s.game, player, menuChooser{ctx: ctx, ui: s.ui})

		// 4. Ввод
		if err := ctx.Err(); err != nil {
			s.log.WithError(err).Info("Session interrupted")
			return s.save(context.WithoutCancel(ctx))
		}
		cmd := s.ui.ReadCommand()

		// 5. Исполнение
		switch s.dispatch(cmd) {
		case handlers.Exit:
			s.log.WithField("tick", s.tick).Info("Session finished")
			return s.save(ctx)
		case handlers.TookTurn:
			s.tick++
			if s.entities.Player().Alive {
				s.monstersTurn()
			}
		}
	}
}

// dispatch выполняет команду через таблицу хендлеров.
// Ошибки правил попадают в журнал и не тратят ход.
func (s *Session) dispatch(cmd domain.Command) handlers.TurnResult {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return handlers.DidntTakeTurn
	}

	ctx := handlers.Context{
		Game:     s.game,
		Entities: &s.entities,
		Sight:    s.vis,
		Targeter: frameTargeter{s: s},
		UI:       s.ui,
		Levels:   s,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action": cmd.Action,
		}).WithError(err).Debug("Command rejected")
		s.game.Log(sentence(err.Error()), types.ColorRed)
		return handlers.DidntTakeTurn
	}
	if result.Msg != "" {
		s.game.Log(result.Msg, result.Color)
	}
	return result.Turn
}

// NextLevel генерирует уровень g.DungeonLevel и переносит туда игрока.
func (s *Session) NextLevel() {
	s.game.Map, s.entities = dungeon.Generate(s.entities, s.game.DungeonLevel, s.rng, s.cfg.Params)
	s.resetVisibility()
}

func (s *Session) resetVisibility() {
	m := s.game.Map
	s.vis = systems.NewVisibility(s.cfg.newOracle(m.Width, m.Height), s.cfg.TorchRadius, s.cfg.LightWalls)
	s.vis.Reset(m)
}

func (s *Session) frame() api.Frame {
	return BuildFrame(s.game, s.entities, s.vis, s.tick)
}

func (s *Session) save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, storage.NewSaveRecord(s.game, s.entities)); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// sentence делает из текста ошибки запись журнала.
func sentence(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
