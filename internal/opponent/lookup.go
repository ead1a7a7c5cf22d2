package opponent

import (
	"fmt"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

// Lookup answers with the reply scripted for the exact grid.
type Lookup struct {
	table *Table
}

func NewLookup(table *Table) *Lookup {
	return &Lookup{table: table}
}

// NextGrid returns the grid after the scripted reply.
func (that *Lookup) NextGrid(grid entity.Grid) (entity.Grid, error) {
	next, _, ok := that.table.Reply(grid)
	if !ok {
		return grid, fmt.Errorf("%w: %s", ErrUnknownPosition, grid.Key())
	}

	return next, nil
}

// NextMove implements Strategy. The history is not consulted.
func (that *Lookup) NextMove(grid entity.Grid, _ entity.MoveHistory) (int, error) {
	_, cell, ok := that.table.Reply(grid)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPosition, grid.Key())
	}

	return cell, nil
}
