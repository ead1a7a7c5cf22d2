package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
)

const (
	GridSize  = 3
	CellCount = GridSize * GridSize

	// OpeningCell is where the opponent always places its first X.
	OpeningCell = 0

	keySeparator = ","
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "_"
	}
}

// ParseCell is the inverse of Cell.String.
func ParseCell(symbol string) (Cell, error) {
	switch symbol {
	case "_":
		return Empty, nil
	case "x":
		return X, nil
	case "o":
		return O, nil
	}

	return Empty, fmt.Errorf("%w: unknown cell symbol %q", apperror.ErrInvalidGrid, symbol)
}

// CellKind classifies a cell by its geometry on the board.
type CellKind uint8

const (
	Corner CellKind = iota
	Edge
	Center
)

// KindOf - returns the geometric class of a cell index.
func KindOf(cell int) CellKind {
	switch cell {
	case 4:
		return Center
	case 1, 3, 5, 7:
		return Edge
	default:
		return Corner
	}
}

// CellIndex converts column x and row y to a row-major cell index.
func CellIndex(x, y int) (int, error) {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		return 0, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	return y*GridSize + x, nil
}

// IsValidCell reports whether cell addresses a square of the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < CellCount
}

// Grid is the 3x3 board stored row-major.
type Grid [CellCount]Cell

// NewGrid returns the board right after the opponent's forced opening.
func NewGrid() Grid {
	var grid Grid
	grid[OpeningCell] = X

	return grid
}

// Key renders the grid as "x,o,_,..." in cell order.
func (that Grid) Key() string {
	symbols := that.Symbols()
	return strings.Join(symbols[:], keySeparator)
}

// Symbols returns the per-cell symbols handed to renderers.
func (that Grid) Symbols() [CellCount]string {
	var symbols [CellCount]string
	for i, cell := range that {
		symbols[i] = cell.String()
	}

	return symbols
}

// ParseGrid is the inverse of Grid.Key.
func ParseGrid(key string) (Grid, error) {
	var grid Grid

	parts := strings.Split(key, keySeparator)
	if len(parts) != CellCount {
		return grid, fmt.Errorf("%w: %q has %d cells", apperror.ErrInvalidGrid, key, len(parts))
	}

	for i, part := range parts {
		cell, err := ParseCell(part)
		if err != nil {
			return Grid{}, err
		}
		grid[i] = cell
	}

	return grid, nil
}

func (that Grid) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

func (that Grid) IsFull() bool {
	return that.Count(Empty) == 0
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (that Grid) EmptyCells() []int {
	cells := make([]int, 0, CellCount)
	for i, c := range that {
		if c == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}
