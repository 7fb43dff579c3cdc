package config_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
	"github.com/KirkDiggler/rpg-adventure/internal/engine"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := config.Default()

	s.NoError(cfg.Validate())
	s.Equal("RPG Adventure", cfg.Game.Name)
	s.Equal(60, cfg.Game.FPS)
	s.True(cfg.Game.Logging.Enabled)
	s.Equal(0.5, cfg.Audio.Volume)
	s.Equal("1920x1080", cfg.Graphics.Resolution)
	s.Equal("W", cfg.Controls["move_up"])
	s.False(cfg.Combat.CriticalHit.Enabled)
	s.Equal(10, cfg.Inventory.MaxSlots)
	s.Equal(config.BackendFile, cfg.Save.Backend)
	s.Equal(3, cfg.Save.Slots)
}

func (s *ConfigTestSuite) TestDefaultRulesMatchEngine() {
	s.Equal(engine.DefaultRules(), config.Default().Rules())
}

func (s *ConfigTestSuite) TestLoadMissingFileUsesDefault() {
	path := filepath.Join(s.dir, "missing.json")
	cfg := config.Load(path)

	s.Equal(config.Default().Game, cfg.Game)
	s.Equal(path, cfg.Path())
}

func (s *ConfigTestSuite) TestLoadInvalidDocumentsUseDefault() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: "{not json"},
		{name: "partial document", content: `{"game": {"name": "Custom", "fps": 30, "logging": {"level": "INFO"}}}`},
		{name: "bad volume", content: mutate(func(doc map[string]any) {
			doc["audio"].(map[string]any)["volume"] = 2.5
		})},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Load(s.write("config.json", tc.content))
			s.Equal("RPG Adventure", cfg.Game.Name)
			s.Equal(0.5, cfg.Audio.Volume)
		})
	}
}

func (s *ConfigTestSuite) TestLoadValidDocument() {
	content := mutate(func(doc map[string]any) {
		doc["game"].(map[string]any)["name"] = "Custom Adventure"
		doc["inventory"].(map[string]any)["max_slots"] = 4
	})

	cfg := config.Load(s.write("config.json", content))
	s.Equal("Custom Adventure", cfg.Game.Name)
	s.Equal(4, cfg.Inventory.MaxSlots)
}

func (s *ConfigTestSuite) TestWriteRoundTrip() {
	path := filepath.Join(s.dir, "nested", "config.json")
	cfg := config.Load(path)
	cfg.Audio.MusicVolume = 0.9

	s.Require().NoError(cfg.Write())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), "\n    \"game\": {")

	reloaded := config.Load(path)
	s.Equal(0.9, reloaded.Audio.MusicVolume)
}

func (s *ConfigTestSuite) TestWriteKeepsSaveSection() {
	path := filepath.Join(s.dir, "config.json")
	cfg := config.Load(path)
	cfg.Save.Backend = config.BackendSQLite
	cfg.Save.Slots = 5

	s.Require().NoError(cfg.Write())

	reloaded := config.Load(path)
	s.Equal(config.BackendSQLite, reloaded.Save.Backend)
	s.Equal(5, reloaded.Save.Slots)
	s.Equal(path, reloaded.Path())
}

func (s *ConfigTestSuite) TestLoadFourSectionDocument() {
	content := `{
    "game": {"name": "Classic", "version": "1.0.0", "fps": 30, "logging": {"enabled": false, "level": "DEBUG"}},
    "audio": {"volume": 0.7, "music_volume": 0.2},
    "graphics": {"resolution": "800x600", "fullscreen": true},
    "controls": {"move_up": "UP"}
}`

	cfg := config.Load(s.write("config.json", content))

	s.Equal("Classic", cfg.Game.Name)
	s.Equal(30, cfg.Game.FPS)
	s.False(cfg.Game.Logging.Enabled)
	s.Equal(0.7, cfg.Audio.Volume)
	s.Equal("800x600", cfg.Graphics.Resolution)
	s.Equal(map[string]string{"move_up": "UP"}, cfg.Controls)

	defaults := config.Default()
	s.Equal(defaults.Combat, cfg.Combat)
	s.Equal(defaults.Inventory, cfg.Inventory)
	s.Equal(defaults.Leveling, cfg.Leveling)
	s.Equal(defaults.Save, cfg.Save)
}

func (s *ConfigTestSuite) TestLoadPartialRulesSection() {
	content := mutate(func(doc map[string]any) {
		doc["leveling"] = map[string]any{"damage_bonus": 5}
		delete(doc, "combat")
	})

	cfg := config.Load(s.write("config.json", content))

	s.Equal(5, cfg.Leveling.DamageBonus)
	s.Equal(100, cfg.Leveling.BaseExpPerLevel)
	s.Equal(config.Default().Combat, cfg.Combat)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "fps", mutate: func(c *config.Config) { c.Game.FPS = 0 }, field: "game.fps"},
		{name: "log level", mutate: func(c *config.Config) { c.Game.Logging.Level = "LOUD" }, field: "game.logging.level"},
		{name: "resolution", mutate: func(c *config.Config) { c.Graphics.Resolution = "big" }, field: "graphics.resolution"},
		{name: "empty control", mutate: func(c *config.Config) { c.Controls["jump"] = " " }, field: "controls.jump"},
		{name: "crit chance", mutate: func(c *config.Config) { c.Combat.CriticalHit.Chance = -0.1 }, field: "combat.critical_hit.chance"},
		{name: "slots", mutate: func(c *config.Config) { c.Save.Slots = 0 }, field: "save.slots"},
		{name: "backend", mutate: func(c *config.Config) { c.Save.Backend = "s3" }, field: "save.backend"},
		{name: "redis addr", mutate: func(c *config.Config) {
			c.Save.Backend = config.BackendRedis
			c.Save.RedisAddr = ""
		}, field: "save.redis_addr"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			s.Require().Error(err)
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestCriticalChance() {
	cfg := config.Default()
	s.Equal(0.0, cfg.CriticalChance())

	cfg.Combat.CriticalHit.Enabled = true
	s.Equal(0.15, cfg.CriticalChance())
}

func (s *ConfigTestSuite) TestLogLevel() {
	s.Equal(slog.LevelDebug, config.ParseLevel("debug"))
	s.Equal(slog.LevelWarn, config.ParseLevel("WARNING"))
	s.Equal(slog.LevelError, config.ParseLevel("ERROR"))
	s.Equal(slog.LevelInfo, config.ParseLevel("unknown"))
	s.Equal(slog.LevelInfo, config.Default().LogLevel())
}

func (s *ConfigTestSuite) TestEnv() {
	envFile := s.write(".env", "ADVENTURE_SAVE_DIR="+filepath.Join(s.dir, "env-saves")+"\n")
	s.T().Setenv(config.EnvSaveDir, "")
	s.Require().NoError(os.Unsetenv(config.EnvSaveDir))

	s.Require().NoError(config.LoadEnv(envFile))
	cfg := config.Default()
	cfg.ApplyEnv()
	s.Equal(filepath.Join(s.dir, "env-saves"), cfg.Save.Dir)

	s.NoError(config.LoadEnv(filepath.Join(s.dir, "missing.env")))
}

func (s *ConfigTestSuite) TestResolvePath() {
	s.T().Setenv(config.EnvConfigPath, "")
	s.Equal(config.DefaultPath, config.ResolvePath(""))

	s.T().Setenv(config.EnvConfigPath, "/etc/adventure.json")
	s.Equal("/etc/adventure.json", config.ResolvePath(""))
	s.Equal("flag.json", config.ResolvePath("flag.json"))
}

// mutate returns the default document after applying fn to its generic form
func mutate(fn func(map[string]any)) string {
	data, err := json.Marshal(config.Default())
	if err != nil {
		panic(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		panic(err)
	}
	fn(doc)
	out, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(out)
}
