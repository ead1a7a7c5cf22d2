package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

func mustGrid(t *testing.T, key string) entity.Grid {
	t.Helper()

	grid, err := entity.ParseGrid(key)
	require.NoError(t, err)

	return grid
}

func TestEvaluate(t *testing.T) {
	t.Run("Every line wins", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a grid with only one completed line
			var grid entity.Grid
			for _, cell := range combo {
				grid[cell] = entity.X
			}

			// When: evaluating the grid
			result := Evaluate(grid)

			// Then: the line and its owner are reported
			assert.Equal(t, Win, result.Outcome)
			assert.Equal(t, entity.X, result.Winner)
			assert.Equal(t, combo, result.Line)
		}
	})

	t.Run("Opponent column", func(t *testing.T) {
		result := Evaluate(mustGrid(t, "x,o,o,x,_,_,x,_,_"))

		assert.Equal(t, Win, result.Outcome)
		assert.Equal(t, entity.X, result.Winner)
		assert.Equal(t, [3]int{0, 3, 6}, result.Line)
	})

	t.Run("Human row", func(t *testing.T) {
		result := Evaluate(mustGrid(t, "x,x,_,o,o,o,_,_,x"))

		assert.Equal(t, Win, result.Outcome)
		assert.Equal(t, entity.O, result.Winner)
		assert.Equal(t, [3]int{3, 4, 5}, result.Line)
	})

	t.Run("Full board without a line", func(t *testing.T) {
		result := Evaluate(mustGrid(t, "x,x,o,o,o,x,x,o,x"))

		assert.Equal(t, Draw, result.Outcome)
		assert.Equal(t, entity.Empty, result.Winner)
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		result := Evaluate(mustGrid(t, "x,o,x,o,x,o,o,x,x"))

		assert.Equal(t, Win, result.Outcome)
		assert.Equal(t, [3]int{0, 4, 8}, result.Line)
	})

	t.Run("Game in progress", func(t *testing.T) {
		assert.Equal(t, None, Evaluate(entity.NewGrid()).Outcome)
		assert.Equal(t, None, Evaluate(mustGrid(t, "x,o,_,_,_,_,x,_,_")).Outcome)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "draw", Draw.String())
}
