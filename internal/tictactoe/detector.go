package tictactoe

import "github.com/rocketscienceinc/tictaclose-backend/internal/entity"

// Outcome is the verdict on a grid.
type Outcome uint8

const (
	None Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// Result of Evaluate. Winner and Line are only set for Win.
type Result struct {
	Outcome Outcome
	Winner  entity.Cell
	Line    [3]int
}

// WinCombos are the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - checks the grid for a completed line, then for a full board.
func Evaluate(grid entity.Grid) Result {
	for _, combo := range WinCombos {
		a, b, c := grid[combo[0]], grid[combo[1]], grid[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return Result{Outcome: Win, Winner: a, Line: combo}
		}
	}

	if grid.IsFull() {
		return Result{Outcome: Draw}
	}

	return Result{Outcome: None}
}
