package game

// Game holds the full state of one match: the board, whose turn it is,
// and the outcome once the game is over. State changes only through
// MakeTurn; the accessors hand out copies.
type Game struct {
	board   Board
	current Piece
	outcome Outcome
	// outcome is meaningful only while finished is true, and once
	// finished is set MakeTurn rejects every move, so it is written
	// at most once per game.
	finished bool
}

func NewGame() *Game {
	return &Game{
		current: PieceX,
	}
}

// MakeTurn places the current piece at (row, col). On any error the
// game state is left untouched.
func (that *Game) MakeTurn(row, col int) error {
	if that.finished {
		return ErrGameFinished
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return &PositionError{Row: row, Col: col}
	}

	if piece, ok := that.board[row][col].Piece(); ok {
		return &OccupiedError{Piece: piece, Row: row, Col: col}
	}

	that.board[row][col] = Tile{piece: that.current, filled: true}
	that.current = that.current.Other()

	that.updateOutcome(row, col)

	return nil
}

// updateOutcome checks for a finished game after a placement at
// (row, col). Only lines through the just-played cell can newly
// complete, so the row, the column, and any diagonal containing the
// pivot are the only candidates. That shortcut breaks if placements
// ever happen out of band (e.g. replaying moves), so every placement
// must go through MakeTurn.
func (that *Game) updateOutcome(row, col int) {
	lines := make([][BoardSize]Tile, 0, 4)

	lines = append(lines, that.board[row])
	lines = append(lines, [BoardSize]Tile{that.board[0][col], that.board[1][col], that.board[2][col]})

	if row == col {
		lines = append(lines, [BoardSize]Tile{that.board[0][0], that.board[1][1], that.board[2][2]})
	}

	if row+col == BoardSize-1 {
		lines = append(lines, [BoardSize]Tile{that.board[0][2], that.board[1][1], that.board[2][0]})
	}

	for _, line := range lines {
		if piece, ok := lineWinner(line); ok {
			if piece == PieceX {
				that.outcome = OutcomeXWins
			} else {
				that.outcome = OutcomeOWins
			}
			that.finished = true
			return
		}
	}

	if that.full() {
		that.outcome = OutcomeTie
		that.finished = true
	}
}

// lineWinner reports the piece occupying all three tiles of a line,
// if there is one.
func lineWinner(line [BoardSize]Tile) (Piece, bool) {
	first, ok := line[0].Piece()
	if !ok {
		return 0, false
	}

	for _, tile := range line[1:] {
		piece, ok := tile.Piece()
		if !ok || piece != first {
			return 0, false
		}
	}

	return first, true
}

func (that *Game) full() bool {
	for _, row := range that.board {
		for _, tile := range row {
			if tile.IsEmpty() {
				return false
			}
		}
	}
	return true
}

func (that *Game) IsFinished() bool {
	return that.finished
}

// Winner returns the outcome of a finished game. The second result is
// false while the game is still in progress.
func (that *Game) Winner() (Outcome, bool) {
	if !that.finished {
		return 0, false
	}
	return that.outcome, true
}

func (that *Game) CurrentPiece() Piece {
	return that.current
}

// Tiles returns a copy of the board, so callers can render it but not
// reach back into the game state.
func (that *Game) Tiles() Board {
	return that.board
}
