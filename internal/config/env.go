package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Environment variables understood by the game
const (
	EnvConfigPath = "ADVENTURE_CONFIG"
	EnvSaveDir    = "ADVENTURE_SAVE_DIR"
	EnvLogLevel   = "ADVENTURE_LOG_LEVEL"
)

// LoadEnv loads a .env file into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("No env file found", "path", path)
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load env file %s", path)
	}

	slog.Debug("Loaded env file", "path", path)
	return nil
}

// ResolvePath picks the config file: an explicit flag, then
// ADVENTURE_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides document values from the environment
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(EnvSaveDir); dir != "" {
		c.Save.Dir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Game.Logging.Level = level
	}
}
