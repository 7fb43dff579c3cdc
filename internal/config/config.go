// Package config loads the game's JSON configuration document. A missing
// or invalid document is replaced wholesale by the embedded default. The
// rules sections (combat, inventory, leveling, save) are optional and fall
// back to their default values, so a game/audio/graphics/controls document
// is accepted as is.
package config

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

//go:embed default.json
var defaultDocument []byte

// DefaultPath is used when neither a flag nor ADVENTURE_CONFIG names a file
const DefaultPath = "config.json"

// Save backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var resolutionPattern = regexp.MustCompile(`^\d+x\d+$`)

// Config is the full configuration document
type Config struct {
	Game      GameConfig        `json:"game"`
	Audio     AudioConfig       `json:"audio"`
	Graphics  GraphicsConfig    `json:"graphics"`
	Controls  map[string]string `json:"controls"`
	Combat    CombatConfig      `json:"combat"`
	Inventory InventoryConfig   `json:"inventory"`
	Leveling  LevelingConfig    `json:"leveling"`
	Save      SaveConfig        `json:"save"`

	path string
}

// GameConfig identifies the game and controls diagnostics
type GameConfig struct {
	Name    string        `json:"name"`
	Version string        `json:"version"`
	FPS     int           `json:"fps"`
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig toggles the combat log and sets the diagnostic log level
type LoggingConfig struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
	Format  string `json:"format"`
}

// AudioConfig holds volume levels in [0, 1]
type AudioConfig struct {
	Volume      float64 `json:"volume"`
	MusicVolume float64 `json:"music_volume"`
}

// GraphicsConfig holds display settings
type GraphicsConfig struct {
	Resolution string `json:"resolution"`
	Fullscreen bool   `json:"fullscreen"`
}

// CombatConfig tunes combat resolution
type CombatConfig struct {
	// TurnDelay is in seconds
	TurnDelay        float64           `json:"turn_delay"`
	BossSpecialBonus int               `json:"boss_special_bonus"`
	CriticalHit      CriticalHitConfig `json:"critical_hit"`
}

// CriticalHitConfig controls the optional critical hit roll
type CriticalHitConfig struct {
	Enabled    bool    `json:"enabled"`
	Chance     float64 `json:"chance"`
	Multiplier float64 `json:"multiplier"`
}

// InventoryConfig sizes the player's inventory
type InventoryConfig struct {
	MaxSlots int `json:"max_slots"`
}

// LevelingConfig holds the progression curve
type LevelingConfig struct {
	BaseExpPerLevel int     `json:"base_exp_per_level"`
	ExpMultiplier   float64 `json:"exp_multiplier"`
	HealthBonus     int     `json:"health_bonus"`
	DamageBonus     int     `json:"damage_bonus"`
}

// SaveConfig selects where save slots are stored
type SaveConfig struct {
	Backend    string `json:"backend"`
	Dir        string `json:"dir"`
	Slots      int    `json:"slots"`
	RedisAddr  string `json:"redis_addr"`
	SQLitePath string `json:"sqlite_path"`
}

// Default returns a fresh copy of the embedded default document
func Default() *Config {
	cfg, err := parse(defaultDocument, nil)
	if err != nil {
		panic("config: embedded default document is invalid: " + err.Error())
	}
	return cfg
}

// Load reads the document at path. It never fails: a missing file, a
// parse error or a validation failure all yield the default document,
// remembered against path so Write puts it there.
func Load(path string) *Config {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read config, using defaults", "path", path, "error", err)
		}
		return withPath(Default(), path)
	}

	cfg, err := parse(data, Default())
	if err != nil {
		slog.Warn("Invalid config, using defaults", "path", path, "error", err)
		return withPath(Default(), path)
	}

	return withPath(cfg, path)
}

// Path returns the file the document was loaded from
func (c *Config) Path() string {
	return c.path
}

// Write puts the document back at its path, indented
func (c *Config) Write() error {
	return c.SaveTo(c.path)
}

// SaveTo writes the document to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if path == "" {
		return errors.InvalidArgument("config path is required")
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create config directory %s", dir)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write config %s", path)
	}

	c.path = path
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("game.name", c.Game.Name, vb)
	errors.ValidateMin("game.fps", c.Game.FPS, 1, vb)
	errors.ValidateEnum("game.logging.level", strings.ToUpper(c.Game.Logging.Level),
		[]string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}, vb)
	if c.Game.Logging.Format != "" {
		errors.ValidateEnum("game.logging.format", c.Game.Logging.Format,
			[]string{LogFormatText, LogFormatJSON}, vb)
	}

	errors.ValidateProbability("audio.volume", c.Audio.Volume, vb)
	errors.ValidateProbability("audio.music_volume", c.Audio.MusicVolume, vb)

	if !resolutionPattern.MatchString(c.Graphics.Resolution) {
		vb.InvalidField("graphics.resolution", "expected WIDTHxHEIGHT")
	}

	for action, key := range c.Controls {
		if strings.TrimSpace(key) == "" {
			vb.RequiredField("controls." + action)
		}
	}

	if c.Combat.TurnDelay < 0 {
		vb.Field("combat.turn_delay", "must not be negative")
	}
	errors.ValidateMin("combat.boss_special_bonus", c.Combat.BossSpecialBonus, 0, vb)
	errors.ValidateProbability("combat.critical_hit.chance", c.Combat.CriticalHit.Chance, vb)
	if c.Combat.CriticalHit.Multiplier < 1 {
		vb.Field("combat.critical_hit.multiplier", "must be at least 1")
	}

	errors.ValidateMin("inventory.max_slots", c.Inventory.MaxSlots, 1, vb)

	errors.ValidateMin("leveling.base_exp_per_level", c.Leveling.BaseExpPerLevel, 1, vb)
	if c.Leveling.ExpMultiplier <= 0 {
		vb.Field("leveling.exp_multiplier", "must be positive")
	}
	errors.ValidateMin("leveling.health_bonus", c.Leveling.HealthBonus, 0, vb)
	errors.ValidateMin("leveling.damage_bonus", c.Leveling.DamageBonus, 0, vb)

	errors.ValidateEnum("save.backend", c.Save.Backend, []string{BackendFile, BackendRedis, BackendSQLite}, vb)
	errors.ValidateMin("save.slots", c.Save.Slots, 1, vb)
	switch c.Save.Backend {
	case BackendFile:
		errors.ValidateRequired("save.dir", c.Save.Dir, vb)
	case BackendRedis:
		errors.ValidateRequired("save.redis_addr", c.Save.RedisAddr, vb)
	case BackendSQLite:
		errors.ValidateRequired("save.sqlite_path", c.Save.SQLitePath, vb)
	}

	return vb.Build()
}

// Rules converts the combat and leveling sections into engine rules
func (c *Config) Rules() *engine.Rules {
	return &engine.Rules{
		BaseExpPerLevel:    c.Leveling.BaseExpPerLevel,
		ExpMultiplier:      c.Leveling.ExpMultiplier,
		LevelUpHealth:      c.Leveling.HealthBonus,
		LevelUpDamage:      c.Leveling.DamageBonus,
		BossSpecialBonus:   c.Combat.BossSpecialBonus,
		CriticalMultiplier: c.Combat.CriticalHit.Multiplier,
	}
}

// CriticalChance returns the chance the game loop should pass to attacks,
// zero when critical hits are disabled.
func (c *Config) CriticalChance() float64 {
	if !c.Combat.CriticalHit.Enabled {
		return 0
	}
	return c.Combat.CriticalHit.Chance
}

// LogLevel maps game.logging.level onto slog
func (c *Config) LogLevel() slog.Level {
	return ParseLevel(c.Game.Logging.Level)
}

// ParseLevel maps a level name onto slog, defaulting to Info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parse decodes data on top of the rules sections of base, so any rules
// section the document leaves out keeps the base values.
func parse(data []byte, base *Config) (*Config, error) {
	var cfg Config
	if base != nil {
		cfg.Combat = base.Combat
		cfg.Inventory = base.Inventory
		cfg.Leveling = base.Leveling
		cfg.Save = base.Save
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func withPath(cfg *Config, path string) *Config {
	cfg.path = path
	return cfg
}
