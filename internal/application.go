package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictaclose-backend/internal/config"
	"github.com/rocketscienceinc/tictaclose-backend/internal/notify"
	"github.com/rocketscienceinc/tictaclose-backend/internal/opponent"
	"github.com/rocketscienceinc/tictaclose-backend/internal/usecase"
	"github.com/rocketscienceinc/tictaclose-backend/transport/rest"
	"github.com/rocketscienceinc/tictaclose-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	strategy, err := opponent.New(conf.Game.Strategy)
	if err != nil {
		return fmt.Errorf("failed to select opponent: %w", err)
	}

	notifier, err := newNotifier(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = notifier.Close(); err != nil {
			log.Error("could not close notifier", "error", err)
		}
	}()

	manager := usecase.NewGameManager(logger, strategy, notifier, usecase.Options{
		OpponentDelay: conf.Game.OpponentDelay,
		Expiry:        conf.Game.Expiry,
	})

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return manager.Run(ctx)
	})

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, manager)); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, manager).Start(ctx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newNotifier(ctx context.Context, logger *slog.Logger, conf *config.Config) (notify.Notifier, error) {
	if !conf.Redis.Enabled {
		return notify.NewLogNotifier(logger), nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	notifier, err := notify.NewRedisNotifier(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis notifier: %w", err)
	}

	return notifier, nil
}
