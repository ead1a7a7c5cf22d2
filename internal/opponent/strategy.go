// Package opponent picks the X player's replies.
//
// Two interchangeable strategies are provided. Positional dispatches on the move
// history and is the one games run with by default; Lookup replays the scripted
// position table and is kept as a reference for it.
package opponent

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictaclose-backend/internal/entity"
)

const (
	NamePositional = "positional"
	NameLookup     = "lookup"
)

var (
	ErrUnknownPosition = errors.New("no scripted reply for position")
	ErrNoRule          = errors.New("no positional rule for move")
	ErrUnknownStrategy = errors.New("unknown opponent strategy")
)

// Strategy returns the cell the opponent takes next.
// Implementations are read-only and may be shared between games.
type Strategy interface {
	NextMove(grid entity.Grid, history entity.MoveHistory) (int, error)
}

// New - returns the strategy registered under name.
func New(name string) (Strategy, error) {
	switch name {
	case NamePositional, "":
		return NewPositional(), nil
	case NameLookup:
		return NewLookup(DefaultTable), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
