package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

// CanPlace reports whether the human may put an O on cell right now.
func CanPlace(grid entity.Grid, status entity.Status, cell int) bool {
	return ValidateMove(grid, status, cell) == nil
}

// ValidateMove - checks if the move is valid and returns the reason if it is not.
func ValidateMove(grid entity.Grid, status entity.Status, cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	game := entity.Game{Grid: grid, Status: status}
	if err := game.ConfirmAcceptingInput(); err != nil {
		return err
	}

	if grid[cell] != entity.Empty {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}
