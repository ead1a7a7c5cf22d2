package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrGameNotFound  = errors.New("game not found")
	ErrGameClosed    = errors.New("game is closed")
	ErrOpponentTurn  = errors.New("it's the opponent's turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidGrid   = errors.New("invalid grid")
	ErrHistoryOrder  = errors.New("move history is out of order")
	ErrUnknownStatus = errors.New("unknown game status")
)
