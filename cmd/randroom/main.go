package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"randroom/internal/agent"
	"randroom/internal/config"
	"randroom/internal/engine"
	"randroom/internal/infrastructure/storage"
	"randroom/internal/network"
	"randroom/internal/server"
	"randroom/internal/terminal"
	"randroom/internal/version"
	"randroom/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "randroom:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Флаги
	var (
		configPath  string
		seed        uint64
		replayPath  string
		botTurns    int
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.Uint64Var(&seed, "seed", 0, "Master seed for a new game (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to "+storage.ReplayExt+" replay file to simulate")
	flag.IntVar(&botTurns, "bot", 0, "Let the autoplay bot play N turns headless")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return nil
	}

	// 2. Конфигурация: файл, потом окружение
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		return runReplay(ctx, cfg, replayPath)
	}
	// РЕЖИМ БОТА
	if botTurns > 0 {
		return runBot(ctx, cfg, botTurns)
	}
	return runGame(ctx, cfg)
}

// runReplay заново симулирует партию без экрана и печатает итог.
func runReplay(ctx context.Context, cfg *config.Config, path string) error {
	logger.Log.WithField("path", path).Info("Mode: Replay Simulation")

	replays := &storage.ReplayService{SaveDir: filepath.Dir(path)}
	rep, err := replays.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	svc := engine.NewService(engine.FromGameConfig(cfg.Game), nil, nil, nil)
	session, err := svc.RunReplay(ctx, rep)
	if err != nil {
		return err
	}

	player := session.Entities().Player()
	fmt.Printf("seed %d: dungeon level %d, character level %d, alive %v, %d events\n",
		rep.Seed, session.Game().DungeonLevel, player.Level, player.Alive, len(rep.Events))
	return nil
}

// runBot играет партию ботом без экрана и без сохранений.
// Реплей пишется как обычно, если запись включена.
func runBot(ctx context.Context, cfg *config.Config, turns int) error {
	logger.Log.WithField("turns", turns).Info("Mode: Bot")

	var (
		replays *storage.ReplayService
		err     error
	)
	if cfg.Storage.Record {
		if replays, err = storage.NewReplayService(cfg.Storage.ReplayDir); err != nil {
			return err
		}
	}

	bot := agent.NewBot(cfg.Game.Seed, turns)
	svc := engine.NewService(engine.FromGameConfig(cfg.Game), nil, replays, nil)
	if err := svc.PlayNew(ctx, bot); err != nil {
		return err
	}
	fmt.Printf("bot played %d turns\n", bot.Turns)
	return nil
}

// runGame - обычная игра в терминале с необязательным сервером наблюдателя.
func runGame(ctx context.Context, cfg *config.Config) error {
	// 1. Логи в файл: stdout занят экраном
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := logger.ToFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logger.Log.WithField("component", "main")
	log.WithFields(logrus.Fields{
		"version": version.String(),
		"seed":    cfg.Game.Seed,
		"backend": cfg.Storage.Backend,
	}).Info("Starting randroom")

	// 2. Хранилище
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("Failed to close store")
		}
	}()

	var replays *storage.ReplayService
	if cfg.Storage.Record {
		if replays, err = storage.NewReplayService(cfg.Storage.ReplayDir); err != nil {
			return err
		}
	}

	// 3. Наблюдатель
	var (
		sink engine.FrameSink
		srv  *server.Server
	)
	if cfg.Debug.Addr != "" {
		hub := network.NewBroadcaster()
		sink = hub
		srv = server.New(hub, cfg.Debug.Addr)
	}

	// 4. Игра и сервер живут вместе: выход из меню гасит сервер,
	// ошибка сервера прерывает ввод
	g, gctx := errgroup.WithContext(ctx)
	gameCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	term, err := terminal.Open(gameCtx)
	if err != nil {
		return err
	}
	defer term.Close()

	if srv != nil {
		g.Go(func() error {
			return srv.Run(gameCtx)
		})
	}

	svc := engine.NewService(engine.FromGameConfig(cfg.Game), store, replays, sink)
	g.Go(func() error {
		defer cancel()
		return svc.MainMenu(gameCtx, term)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Done.")
	return nil
}
