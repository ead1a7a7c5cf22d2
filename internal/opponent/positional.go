package opponent

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

// Positional picks replies from a hand-written decision table keyed on the move
// count and the last moves of both sides. The grid argument is ignored.
//
// The table is data: some branches fork instead of taking an available win, and
// that is deliberate. Combinations it does not cover return ErrNoRule.
type Positional struct{}

func NewPositional() *Positional {
	return &Positional{}
}

// NextMove implements Strategy.
func (that *Positional) NextMove(_ entity.Grid, history entity.MoveHistory) (int, error) {
	player, opponent := history.PlayerMoves, history.OpponentMoves
	if len(player) != len(opponent) {
		return 0, fmt.Errorf("%w: not the opponent's turn (%d/%d)", ErrNoRule, len(opponent), len(player))
	}

	switch history.Total() {
	case 2:
		return secondMove(player[0]), nil
	case 4:
		return thirdMove(player, opponent)
	case 6:
		return fourthMove(player, opponent)
	case 8:
		return lastMove(player, opponent)
	default:
		return 0, fmt.Errorf("%w: %d marks on the board", ErrNoRule, history.Total())
	}
}

func secondMove(first int) int {
	switch {
	case entity.KindOf(first) == entity.Center:
		return 8
	case first == 1 || first == 2:
		return 6
	default:
		return 2
	}
}

func thirdMove(player, opponent []int) (int, error) {
	last := player[1]

	switch opponent[1] {
	case 6:
		if last == 3 {
			return 8, nil
		}
		return 3, nil
	case 2:
		if last != 1 {
			return 1, nil
		}

		switch player[0] {
		case 6:
			return 8, nil
		case 8:
			return 6, nil
		default:
			return 4, nil
		}
	case 8:
		// block the line the player opened through the centre
		return 8 - last, nil
	}

	return 0, noRule(player, opponent)
}

func fourthMove(player, opponent []int) (int, error) {
	last := player[2]

	switch opponent[2] {
	case 8:
		switch opponent[1] {
		case 6:
			if last == 7 {
				return 4, nil
			}
			return 7, nil
		case 2:
			if last == 3 || last == 4 {
				return 5, nil
			}
			return 4, nil
		}
	case 4:
		// also answers x,o,x,o,x,_,o,_,_ and x,o,x,o,x,_,_,_,o, which the lookup table has no entry for
		if last == 8 || (last == 7 && player[0] == 3) || (last == 3 && player[0] == 7) {
			return 6, nil
		}
		return 8, nil
	case 6:
		switch opponent[1] {
		case 2:
			if last == 4 {
				return 3, nil
			}
			return 4, nil
		case 8:
			if last == 7 {
				return 3, nil
			}
			return 7, nil
		}
	case 7:
		if last == 6 {
			return 2, nil
		}
		return 6, nil
	case 5:
		if last == 2 {
			return 6, nil
		}
		return 2, nil
	case 3:
		if last == 6 {
			return 2, nil
		}
		return 6, nil
	case 2:
		if last == 5 {
			return 1, nil
		}
		return 5, nil
	case 1:
		if last == 2 {
			return 6, nil
		}
		return 2, nil
	}

	return 0, noRule(player, opponent)
}

// lastMove takes the only cell neither side has played. This extends the lookup table, which
// has no entry for x,o,x,o,o,_,o,x,x or x,o,x,_,o,o,o,x,x.
func lastMove(player, opponent []int) (int, error) {
	for cell := range entity.CellCount {
		if !slices.Contains(player, cell) && !slices.Contains(opponent, cell) {
			return cell, nil
		}
	}

	return 0, noRule(player, opponent)
}

func noRule(player, opponent []int) error {
	return fmt.Errorf("%w: player %v, opponent %v", ErrNoRule, player, opponent)
}
