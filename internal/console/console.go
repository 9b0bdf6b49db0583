package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/game"
)

// Console drives one game over a line-based text stream: it renders
// the board, prompts for moves, and reports the outcome. Input and
// output are injected so a test can script a whole session.
type Console struct {
	logger *slog.Logger
	game   *game.Game
	input  *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	glyphs Glyphs
}

func New(logger *slog.Logger, gameInstance *game.Game, input io.Reader, out, errOut io.Writer, glyphs Glyphs) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   gameInstance,
		input:  bufio.NewScanner(input),
		out:    out,
		errOut: errOut,
		glyphs: glyphs,
	}
}

// Run plays the game until it finishes or the input ends. End of
// input is a clean exit, not an error.
func (that *Console) Run() error {
	for !that.game.IsFinished() {
		fmt.Fprint(that.out, RenderBoard(that.game.Tiles(), that.glyphs))
		fmt.Fprintf(that.out, "Current piece: %s\n", that.glyphs.Piece(that.game.CurrentPiece()))

		row, col, ok := that.promptMove()
		if !ok {
			// The cursor may still sit at the end of a prompt.
			fmt.Fprintln(that.out)
			that.logger.Debug("input ended, leaving the game")
			return nil
		}

		if err := that.game.MakeTurn(row, col); err != nil {
			var occupiedErr *game.OccupiedError
			if !errors.As(err, &occupiedErr) {
				// The loop checks IsFinished and the parser bounds the
				// range, so only an occupied tile can legitimately fail.
				return fmt.Errorf("apply move: %w", err)
			}

			fmt.Fprintf(that.errOut, "The tile at position %d%c already has piece %s in it!\n",
				occupiedErr.Row+1, 'A'+occupiedErr.Col, that.glyphs.Piece(occupiedErr.Piece))
			continue
		}

		that.logger.Debug("move applied", "row", row, "col", col)
	}

	fmt.Fprint(that.out, RenderBoard(that.game.Tiles(), that.glyphs))

	winner, ok := that.game.Winner()
	if !ok {
		return errors.New("finished game has no outcome")
	}

	switch winner {
	case game.OutcomeXWins:
		fmt.Fprintf(that.out, "%s wins!\n", that.glyphs.X)
	case game.OutcomeOWins:
		fmt.Fprintf(that.out, "%s wins!\n", that.glyphs.O)
	case game.OutcomeTie:
		fmt.Fprintln(that.out, "Tie!")
	}

	that.logger.Debug("game finished", "outcome", winner.String())

	return nil
}

// promptMove asks for moves until it reads a well-formed one. The
// third result is false when the input ends.
func (that *Console) promptMove() (int, int, bool) {
	for {
		fmt.Fprint(that.out, "Enter move (e.g. 1A): ")

		line, ok := that.readLine()
		if !ok {
			return 0, 0, false
		}

		row, col, err := ParseMove(line)
		if err != nil {
			fmt.Fprintf(that.errOut, "Invalid move: '%s'. Please try again.\n", line)
			continue
		}

		return row, col, true
	}
}

func (that *Console) readLine() (string, bool) {
	if !that.input.Scan() {
		return "", false
	}
	return strings.TrimRight(that.input.Text(), " \t\r"), true
}
