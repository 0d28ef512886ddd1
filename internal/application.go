package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/countdown"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solo/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/web"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	sequencer, err := countdown.New(logger, clockwork.NewRealClock(), countdown.Settings{
		From:     conf.Countdown.From,
		Interval: conf.Countdown.Interval,
	})
	if err != nil {
		return fmt.Errorf("invalid countdown config: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, sequencer, sessionRepo)
	defer gameManager.CloseAll()

	wsServer := websocket.New(ctx, logger, gameManager, websocket.Config{
		ReadBufferSize:  conf.WebSocket.ReadBufferSize,
		WriteBufferSize: conf.WebSocket.WriteBufferSize,
		SendBuffer:      conf.WebSocket.SendBuffer,
		WriteTimeout:    conf.WebSocket.WriteTimeout,
		PongTimeout:     conf.WebSocket.PongTimeout,
		MaxMessageSize:  conf.WebSocket.MaxMessageSize,
	})

	handler := rest.NewHandler(logger, gameManager, wsServer, web.Static())

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, handler); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newSessionRepository - redis when enabled, memory otherwise.
func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("redis disabled, keeping session views in memory")
		return repository.NewMemorySessionRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL), closeFn, nil
}
