package application

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/game"
)

// RunApp - runs one game on the process's standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	glyphs := console.Glyphs{
		X:     conf.Glyphs.X,
		O:     conf.Glyphs.O,
		Empty: conf.Glyphs.Empty,
	}

	gameInstance := game.NewGame()
	consoleUI := console.New(logger, gameInstance, os.Stdin, os.Stdout, os.Stderr, glyphs)

	log.Debug("starting game loop")

	if err := consoleUI.Run(); err != nil {
		return fmt.Errorf("console run failed: %w", err)
	}

	return nil
}
