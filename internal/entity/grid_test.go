package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaclose-backend/internal/apperror"
)

func TestParseGrid(t *testing.T) {
	t.Run("Key and ParseGrid agree", func(t *testing.T) {
		key := "x,o,o,_,_,_,x,_,_"

		grid, err := ParseGrid(key)

		require.NoError(t, err)
		assert.Equal(t, Grid{X, O, O, Empty, Empty, Empty, X, Empty, Empty}, grid)
		assert.Equal(t, key, grid.Key())
	})

	t.Run("Wrong cell count", func(t *testing.T) {
		_, err := ParseGrid("x,o,_")

		assert.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseGrid("x,o,_,_,_,_,_,_,X")

		assert.ErrorIs(t, err, apperror.ErrInvalidGrid)
	})
}

func TestCellIndex(t *testing.T) {
	t.Run("Row-major addressing", func(t *testing.T) {
		cases := map[[2]int]int{
			{0, 0}: 0,
			{1, 0}: 1,
			{2, 0}: 2,
			{0, 1}: 3,
			{1, 1}: 4,
			{0, 2}: 6,
			{2, 2}: 8,
		}

		for xy, want := range cases {
			got, err := CellIndex(xy[0], xy[1])
			require.NoError(t, err)
			assert.Equal(t, want, got, "x=%d y=%d", xy[0], xy[1])
		}
	})

	t.Run("Out of range", func(t *testing.T) {
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := CellIndex(xy[0], xy[1])
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Center, KindOf(4))

	for _, cell := range []int{1, 3, 5, 7} {
		assert.Equal(t, Edge, KindOf(cell), "cell %d", cell)
	}

	for _, cell := range []int{0, 2, 6, 8} {
		assert.Equal(t, Corner, KindOf(cell), "cell %d", cell)
	}
}

func TestGrid_Counts(t *testing.T) {
	grid, err := ParseGrid("x,x,o,o,o,x,x,o,x")
	require.NoError(t, err)

	assert.Equal(t, 5, grid.Count(X))
	assert.Equal(t, 4, grid.Count(O))
	assert.True(t, grid.IsFull())
	assert.Empty(t, grid.EmptyCells())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, NewGrid().EmptyCells())
}

func TestMoveHistory_Replay(t *testing.T) {
	t.Run("Alternates opponent first", func(t *testing.T) {
		// Given: the history of a game where the human played 1 then 2
		history := MoveHistory{PlayerMoves: []int{1, 2}, OpponentMoves: []int{0, 6, 3}}

		// When: replaying it
		grid, err := history.Replay()

		// Then: the grid is rebuilt exactly
		require.NoError(t, err)
		assert.Equal(t, "x,o,o,x,_,_,x,_,_", grid.Key())
		assert.Equal(t, 5, history.Total())
	})

	t.Run("Paused history with equal lengths", func(t *testing.T) {
		history := MoveHistory{PlayerMoves: []int{4}, OpponentMoves: []int{0}}

		grid, err := history.Replay()

		require.NoError(t, err)
		assert.Equal(t, "x,_,_,_,o,_,_,_,_", grid.Key())
	})

	t.Run("Too many player moves", func(t *testing.T) {
		history := MoveHistory{PlayerMoves: []int{1, 2}, OpponentMoves: []int{0}}

		_, err := history.Replay()

		assert.ErrorIs(t, err, apperror.ErrHistoryOrder)
	})

	t.Run("Same cell twice", func(t *testing.T) {
		history := MoveHistory{PlayerMoves: []int{0}, OpponentMoves: []int{0}}

		_, err := history.Replay()

		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Clone is independent", func(t *testing.T) {
		history := NewMoveHistory()
		clone := history.Clone()
		clone.OpponentMoves[0] = 4

		assert.Equal(t, []int{0}, history.OpponentMoves)
	})
}
