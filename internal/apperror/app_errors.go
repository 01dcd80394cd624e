package apperror

import "errors"

var (
	ErrOutOfBounds       = errors.New("position is out of bounds")
	ErrInvalidDimension  = errors.New("board dimensions must be positive")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidSymbol     = errors.New("cell symbol must not be empty")
	ErrNoPlayers         = errors.New("no players assigned")
	ErrUnknownPlayer     = errors.New("player is not seated in this game")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownVariant    = errors.New("unknown game variant")
	ErrGameFinished      = errors.New("game is already finished")
	ErrHistoryIndex      = errors.New("history index out of range")
	ErrReplayDiverged    = errors.New("replayed board differs from recorded board")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)
