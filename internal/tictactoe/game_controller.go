package tictactoe

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
	"github.com/rocketscienceinc/tictaclose-backend/internal/opponent"
)

// View is the read-only picture of a game handed to renderers.
type View struct {
	ID       string                   `json:"id"`
	Cells    [entity.CellCount]string `json:"cells"`
	Paused   bool                     `json:"paused"`
	GameOver bool                     `json:"game_over"`
	// Status is running, lose or draw. It is win only after the opponent stalled and the
	// human completed a line; positional play never gets there.
	Status string `json:"status"`
	Line   []int  `json:"line,omitempty"`
}

// Listener is called with the new View after every change, while the controller is locked.
// It must not block and must not call back into the controller.
type Listener func(View)

// GameController owns a single game and drives it through human clicks and opponent replies.
type GameController struct {
	logger   *slog.Logger
	strategy opponent.Strategy
	delay    time.Duration
	listener Listener

	mu      sync.Mutex
	game    *entity.Game
	timer   *time.Timer
	pending uint64
	closed  bool
}

func NewGameController(
	logger *slog.Logger,
	id string,
	strategy opponent.Strategy,
	delay time.Duration,
	listener Listener,
) *GameController {
	return &GameController{
		logger:   logger.With("component", "controller", "gameID", id),
		strategy: strategy,
		delay:    delay,
		listener: listener,
		game:     entity.NewGame(id),
	}
}

// Click forwards a click on column x, row y.
func (that *GameController) Click(x, y int) bool {
	log := that.logger.With("method", "Click")

	cell, err := entity.CellIndex(x, y)
	if err != nil {
		log.Debug("click ignored", "error", err)
		return false
	}

	return that.SubmitHumanMove(cell)
}

// SubmitHumanMove places an O on cell and schedules the opponent's reply.
// It returns false when the move was ignored.
func (that *GameController) SubmitHumanMove(cell int) bool {
	log := that.logger.With("method", "SubmitHumanMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		log.Debug("move ignored", "cell", cell, "error", "controller closed")
		return false
	}

	if err := ValidateMove(that.game.Grid, that.game.Status, cell); err != nil {
		log.Debug("move ignored", "cell", cell, "error", err)
		return false
	}

	if err := that.game.PlacePlayer(cell); err != nil {
		log.Error("failed to place player mark", "cell", cell, "error", err)
		return false
	}

	if that.settle() {
		that.notify()
		return true
	}

	that.game.Status = entity.StatusPaused
	that.schedule()
	that.notify()

	return true
}

// Tick applies the pending opponent reply right away.
// It does nothing unless a reply is pending.
func (that *GameController) Tick() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tick()
}

// View returns the current state for renderers.
func (that *GameController) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

// Snapshot returns a deep copy of the game.
func (that *GameController) Snapshot() *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Clone()
}

// Close cancels a pending reply. Every later click or tick is ignored.
func (that *GameController) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	that.cancel()
}

func (that *GameController) schedule() {
	that.cancel()

	that.pending++
	seq := that.pending

	that.timer = time.AfterFunc(that.delay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		// a stale callback that lost the race with Stop
		if seq != that.pending {
			return
		}

		that.tick()
	})
}

func (that *GameController) cancel() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}

	that.pending++
}

func (that *GameController) tick() bool {
	log := that.logger.With("method", "tick")

	if that.closed || !that.game.IsPaused() {
		return false
	}

	that.cancel()

	cell, err := that.strategy.NextMove(that.game.Grid, that.game.History.Clone())
	if err != nil {
		log.Warn("opponent has no reply, resuming", "position", that.game.Grid.Key(), "error", err)
		that.game.Status = entity.StatusRunning
		that.notify()

		return true
	}

	if err = that.game.PlaceOpponent(cell); err != nil {
		log.Warn("opponent reply rejected, resuming", "position", that.game.Grid.Key(), "cell", cell, "error", err)
		that.game.Status = entity.StatusRunning
		that.notify()

		return true
	}

	that.game.Status = entity.StatusRunning
	that.settle()
	that.notify()

	return true
}

// settle evaluates the grid and moves the game to a terminal status if it is over.
func (that *GameController) settle() bool {
	log := that.logger.With("method", "settle")

	result := Evaluate(that.game.Grid)

	switch result.Outcome {
	case Win:
		if result.Winner == entity.X {
			that.game.Status = entity.StatusLose
		} else {
			log.Warn("human completed a line", "position", that.game.Grid.Key())
			that.game.Status = entity.StatusWin
		}
	case Draw:
		that.game.Status = entity.StatusDraw
	default:
		return false
	}

	log.Info("game over", "status", that.game.Status, "position", that.game.Grid.Key())

	return true
}

func (that *GameController) notify() {
	if that.listener != nil {
		that.listener(that.view())
	}
}

func (that *GameController) view() View {
	view := View{
		ID:       that.game.ID,
		Cells:    that.game.Grid.Symbols(),
		Paused:   that.game.IsPaused(),
		GameOver: that.game.IsFinished(),
		Status:   that.game.Status.Banner(),
	}

	if result := Evaluate(that.game.Grid); result.Outcome == Win {
		view.Line = result.Line[:]
	}

	return view
}
