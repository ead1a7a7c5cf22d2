// Package notify publishes game state changes to the outside world.
package notify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
	"github.com/rocketscienceinc/tictaclose-backend/internal/tictactoe"
)

// Event is a single state change of a game.
type Event struct {
	GameID   string                   `json:"game_id"`
	Status   string                   `json:"status"`
	Cells    [entity.CellCount]string `json:"cells"`
	Paused   bool                     `json:"paused"`
	GameOver bool                     `json:"game_over"`
	At       time.Time                `json:"at"`
}

func NewEvent(view tictactoe.View, at time.Time) Event {
	return Event{
		GameID:   view.ID,
		Status:   view.Status,
		Cells:    view.Cells,
		Paused:   view.Paused,
		GameOver: view.GameOver,
		At:       at,
	}
}

type Notifier interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogNotifier writes events to the log. It is used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

func (that *LogNotifier) Publish(_ context.Context, event Event) error {
	that.logger.Info("game changed",
		"gameID", event.GameID,
		"status", event.Status,
		"paused", event.Paused,
		"position", strings.Join(event.Cells[:], ","),
	)

	return nil
}

func (that *LogNotifier) Close() error {
	return nil
}
