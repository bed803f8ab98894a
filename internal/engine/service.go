package engine

import (
	"context"
	"errors"

	"randroom/internal/infrastructure/storage"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Пункты главного меню.
const (
	MenuNewGame = iota
	MenuContinue
	MenuQuit
)

// MainMenuOptions - варианты главного меню по порядку.
var MainMenuOptions = []string{"Play a new game", "Continue last game", "Quit"}

// NoSaveMessage показывается, когда продолжать нечего.
const NoSaveMessage = "\nNo saved game to load.\n"

// GameService связывает сессии с хранилищем, реплеями и наблюдателем.
type GameService struct {
	cfg     Config
	store   storage.Store
	replays *storage.ReplayService // nil - не записывать
	sink    FrameSink

	log *logrus.Entry
}

func NewService(cfg Config, store storage.Store, replays *storage.ReplayService, sink FrameSink) *GameService {
	return &GameService{
		cfg:     cfg,
		store:   store,
		replays: replays,
		sink:    sink,
		log:     logger.Log.WithField("component", "game_service"),
	}
}

// MainMenu крутит главное меню до выбора "Quit", отмены меню или отмены ctx.
func (s *GameService) MainMenu(ctx context.Context, ui UI) error {
	for ctx.Err() == nil {
		choice, ok := ui.Menu("", MainMenuOptions)
		if !ok {
			return nil
		}

		switch choice {
		case MenuNewGame:
			if err := s.PlayNew(ctx, ui); err != nil {
				return err
			}

		case MenuContinue:
			session, err := LoadGame(ctx, s.cfg, ui, s.store)
			if err != nil {
				if !errors.Is(err, storage.ErrNoSave) {
					s.log.WithError(err).Warn("Failed to load game")
				}
				ui.MessageBox(NoSaveMessage)
				continue
			}
			session.SetSink(s.sink)
			if err := session.Play(ctx); err != nil {
				return err
			}

		case MenuQuit:
			return nil
		}
	}
	return nil
}

// PlayNew играет новую партию и, если включено, сохраняет ее реплей.
func (s *GameService) PlayNew(ctx context.Context, ui UI) error {
	seed := s.cfg.resolveSeed()
	cfg := s.cfg
	cfg.Seed = seed

	var rec *RecordingUI
	if s.replays != nil {
		rec = NewRecordingUI(ui, seed)
		ui = rec
	}

	session := NewGame(cfg, ui, s.store)
	session.SetSink(s.sink)
	playErr := session.Play(ctx)

	if rec != nil {
		path, err := s.replays.Save(rec.Replay)
		if err != nil {
			s.log.WithError(err).Warn("Failed to save replay")
		} else {
			s.log.WithFields(logrus.Fields{
				"path":   path,
				"events": len(rec.Replay.Events),
			}).Info("Replay saved")
		}
	}
	return playErr
}

// RunReplay заново симулирует записанную партию без сохранения.
func (s *GameService) RunReplay(ctx context.Context, r *storage.Replay) (*Session, error) {
	cfg := s.cfg
	cfg.Seed = r.Seed

	session := NewGame(cfg, NewReplayUI(r), nil)
	session.SetSink(s.sink)
	if err := session.Play(ctx); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"seed":  r.Seed,
		"level": session.Game().DungeonLevel,
		"alive": session.Entities().Player().Alive,
	}).Info("Replay finished")
	return session, nil
}
