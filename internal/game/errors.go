package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidPosition = errors.New("position is outside the board")
	ErrTileOccupied    = errors.New("tile is already occupied")
)

// PositionError reports a move outside the board range.
type PositionError struct {
	Row int
	Col int
}

func (that *PositionError) Error() string {
	return fmt.Sprintf("%v: (%d, %d)", ErrInvalidPosition, that.Row, that.Col)
}

func (that *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// OccupiedError reports a move onto a tile that already holds a piece.
type OccupiedError struct {
	Piece Piece
	Row   int
	Col   int
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%v: %s at (%d, %d)", ErrTileOccupied, that.Piece, that.Row, that.Col)
}

func (that *OccupiedError) Unwrap() error {
	return ErrTileOccupied
}
