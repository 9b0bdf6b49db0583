package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/game"
)

func newTestConsole(input string) (*Console, *bytes.Buffer, *bytes.Buffer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	consoleUI := New(logger, game.NewGame(), strings.NewReader(input), out, errOut, DefaultGlyphs())

	return consoleUI, out, errOut
}

func TestConsole_Run(t *testing.T) {
	t.Run("X wins a scripted game", func(t *testing.T) {
		// Given: a session where X takes the top row
		consoleUI, out, errOut := newTestConsole("1A\n2B\n1B\n3C\n1C\n")

		// When: the game is played to the end
		err := consoleUI.Run()
		require.NoError(t, err)

		// Then: the session announces the winner and nothing failed
		assert.Contains(t, out.String(), "x wins!")
		assert.Contains(t, out.String(), "Current piece: x")
		assert.Contains(t, out.String(), "Current piece: o")
		assert.Empty(t, errOut.String())
	})

	t.Run("Tie game", func(t *testing.T) {
		// Given: nine moves with no three-in-a-row
		consoleUI, out, errOut := newTestConsole("1A\n1C\n1B\n2A\n2C\n2B\n3A\n3B\n3C\n")

		// When: the game is played to the end
		err := consoleUI.Run()
		require.NoError(t, err)

		// Then: the session ends in a tie
		assert.Contains(t, out.String(), "Tie!")
		assert.Empty(t, errOut.String())
	})

	t.Run("Malformed token is re-prompted", func(t *testing.T) {
		// Given: garbage before a winning game
		consoleUI, out, errOut := newTestConsole("hello\n5Z\n\n1A\n2B\n1B\n3C\n1C\n")

		// When: the game runs
		err := consoleUI.Run()
		require.NoError(t, err)

		// Then: each bad token is echoed and the game still completes
		assert.Contains(t, errOut.String(), "Invalid move: 'hello'. Please try again.")
		assert.Contains(t, errOut.String(), "Invalid move: '5Z'. Please try again.")
		assert.Contains(t, errOut.String(), "Invalid move: ''. Please try again.")
		assert.Contains(t, out.String(), "x wins!")
	})

	t.Run("Occupied tile names the piece and position", func(t *testing.T) {
		// Given: O answers on the tile X already took
		consoleUI, out, errOut := newTestConsole("1A\n1A\n2B\n1B\n3C\n1C\n")

		// When: the game runs
		err := consoleUI.Run()
		require.NoError(t, err)

		// Then: the conflict is reported with 1-indexed lettered coordinates
		assert.Contains(t, errOut.String(), "The tile at position 1A already has piece x in it!")
		assert.Contains(t, out.String(), "x wins!")
	})

	t.Run("End of input exits cleanly", func(t *testing.T) {
		// Given: the input stream ends mid-game
		consoleUI, out, _ := newTestConsole("1A\n")

		// When: the game runs out of input
		err := consoleUI.Run()

		// Then: Run returns no error and stops prompting
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Enter move (e.g. 1A): ")
		assert.NotContains(t, out.String(), "wins!")
	})

	t.Run("Lowercase moves and trailing whitespace are accepted", func(t *testing.T) {
		// Given: lowercase tokens with trailing spaces and CR line endings
		consoleUI, out, errOut := newTestConsole("1a \r\n2b\r\n1b\r\n3c\r\n1c\r\n")

		// When: the game runs
		err := consoleUI.Run()
		require.NoError(t, err)

		// Then: the moves all land
		assert.Contains(t, out.String(), "x wins!")
		assert.Empty(t, errOut.String())
	})
}
