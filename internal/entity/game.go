package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusLose    Status = "lose"
	StatusDraw    Status = "draw"

	// StatusWin is only reachable when the opponent stalls on a position it has no reply for.
	StatusWin Status = "win"
)

// IsTerminal reports whether the status freezes the grid.
func (that Status) IsTerminal() bool {
	return that == StatusLose || that == StatusDraw || that == StatusWin
}

// Banner - returns the status as shown to the human: a pending opponent reply still reads "running".
func (that Status) Banner() string {
	if that == StatusPaused {
		return string(StatusRunning)
	}

	return string(that)
}

// Game is the board state of a single match.
type Game struct {
	ID      string      `json:"id"`
	Grid    Grid        `json:"grid"`
	History MoveHistory `json:"history"`
	Status  Status      `json:"status"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Grid:    NewGrid(),
		History: NewMoveHistory(),
		Status:  StatusRunning,
	}
}

func (that *Game) IsRunning() bool {
	return that.Status == StatusRunning
}

func (that *Game) IsPaused() bool {
	return that.Status == StatusPaused
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// PlacePlayer puts an O on cell and records it. Status handling is left to the caller.
func (that *Game) PlacePlayer(cell int) error {
	if err := place(&that.Grid, cell, O); err != nil {
		return fmt.Errorf("failed to place player mark: %w", err)
	}

	that.History.PlayerMoves = append(that.History.PlayerMoves, cell)

	return nil
}

// PlaceOpponent puts an X on cell and records it. Status handling is left to the caller.
func (that *Game) PlaceOpponent(cell int) error {
	if err := place(&that.Grid, cell, X); err != nil {
		return fmt.Errorf("failed to place opponent mark: %w", err)
	}

	that.History.OpponentMoves = append(that.History.OpponentMoves, cell)

	return nil
}

// Clone returns a deep copy safe to hand out to readers.
func (that *Game) Clone() *Game {
	return &Game{
		ID:      that.ID,
		Grid:    that.Grid,
		History: that.History.Clone(),
		Status:  that.Status,
	}
}

// ConfirmAcceptingInput - returns nil if a human move may be made right now.
func (that *Game) ConfirmAcceptingInput() error {
	switch that.Status {
	case StatusRunning:
		return nil
	case StatusPaused:
		return apperror.ErrOpponentTurn
	case StatusLose, StatusDraw, StatusWin:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownStatus, that.Status)
	}
}
