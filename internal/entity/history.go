package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
)

// MoveHistory records the cells taken by each side in the order they were played.
type MoveHistory struct {
	PlayerMoves   []int `json:"player_moves"`
	OpponentMoves []int `json:"opponent_moves"`
}

// NewMoveHistory returns a history seeded with the opponent's opening move.
func NewMoveHistory() MoveHistory {
	return MoveHistory{
		PlayerMoves:   []int{},
		OpponentMoves: []int{OpeningCell},
	}
}

// Total is the number of marks on the board.
func (that MoveHistory) Total() int {
	return len(that.PlayerMoves) + len(that.OpponentMoves)
}

func (that MoveHistory) Clone() MoveHistory {
	return MoveHistory{
		PlayerMoves:   slices.Clone(that.PlayerMoves),
		OpponentMoves: slices.Clone(that.OpponentMoves),
	}
}

// Replay rebuilds the grid by placing opponent and player moves alternately, opponent first.
func (that MoveHistory) Replay() (Grid, error) {
	var grid Grid

	opponent, player := len(that.OpponentMoves), len(that.PlayerMoves)
	if opponent != player && opponent != player+1 {
		return grid, fmt.Errorf("%w: %d opponent moves, %d player moves", apperror.ErrHistoryOrder, opponent, player)
	}

	for i := range opponent {
		if err := place(&grid, that.OpponentMoves[i], X); err != nil {
			return Grid{}, fmt.Errorf("opponent move %d: %w", i, err)
		}

		if i < player {
			if err := place(&grid, that.PlayerMoves[i], O); err != nil {
				return Grid{}, fmt.Errorf("player move %d: %w", i, err)
			}
		}
	}

	return grid, nil
}

func place(grid *Grid, cell int, mark Cell) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	if grid[cell] != Empty {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, cell)
	}

	grid[cell] = mark

	return nil
}
