package game

// BoardSize is fixed at compile time; out-of-range moves are rejected
// with an explicit error instead of growing the board.
const BoardSize = 3

// Piece is one of the two players' marks. There is no "empty" piece:
// an empty cell is modeled by Tile, not by a third Piece value.
type Piece uint8

const (
	PieceX Piece = iota
	PieceO
)

// Other returns the piece that moves next after this one.
func (that Piece) Other() Piece {
	if that == PieceX {
		return PieceO
	}
	return PieceX
}

func (that Piece) String() string {
	if that == PieceX {
		return "x"
	}
	return "o"
}

// Tile is a single board cell: empty, or holding exactly one piece.
type Tile struct {
	piece  Piece
	filled bool
}

// Piece reports the occupying piece, if any.
func (that Tile) Piece() (Piece, bool) {
	return that.piece, that.filled
}

func (that Tile) IsEmpty() bool {
	return !that.filled
}

// Board is the fixed 3x3 grid, addressed as board[row][col].
type Board [BoardSize][BoardSize]Tile

// Outcome is the terminal result of a finished game.
type Outcome uint8

const (
	OutcomeXWins Outcome = iota
	OutcomeOWins
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "x"
	case OutcomeOWins:
		return "o"
	default:
		return "tie"
	}
}
