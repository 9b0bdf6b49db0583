package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Glyphs   Glyphs `yaml:"glyphs"`
}

// Glyphs override the characters used to draw the board.
type Glyphs struct {
	X     string `yaml:"x" env:"GLYPH_X" env-default:"x"`
	O     string `yaml:"o" env:"GLYPH_O" env-default:"o"`
	Empty string `yaml:"empty" env:"GLYPH_EMPTY" env-default:"▢"`
}

// MustLoad - load all configurations in config.yml file. A missing
// file is fine; the game then runs on env vars and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from env: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
