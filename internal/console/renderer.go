package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/game"
)

// Glyphs are the characters used to draw pieces and empty tiles.
type Glyphs struct {
	X     string
	O     string
	Empty string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{
		X:     "x",
		O:     "o",
		Empty: "▢",
	}
}

func (that Glyphs) Piece(piece game.Piece) string {
	if piece == game.PieceX {
		return that.X
	}
	return that.O
}

// RenderBoard draws the board with column letters on top and 1-based
// row numbers on the left:
//
//	  A B C
//	1 x ▢ ▢
//	2 ▢ ▢ o
//	3 ▢ ▢ ▢
//
// A blank line follows the board to space it out from the prompts.
func RenderBoard(board game.Board, glyphs Glyphs) string {
	var builder strings.Builder

	builder.WriteString("  ")
	for col := 0; col < game.BoardSize; col++ {
		builder.WriteByte(' ')
		builder.WriteByte(byte('A' + col))
	}
	builder.WriteByte('\n')

	for rowIdx, row := range board {
		builder.WriteByte(' ')
		builder.WriteByte(byte('1' + rowIdx))

		for _, tile := range row {
			builder.WriteByte(' ')
			if piece, ok := tile.Piece(); ok {
				builder.WriteString(glyphs.Piece(piece))
			} else {
				builder.WriteString(glyphs.Empty)
			}
		}
		builder.WriteByte('\n')
	}

	builder.WriteByte('\n')

	return builder.String()
}
