package testutils

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/testutils/builders"
)

// TestPlayerName is the default player name for test fixtures
const TestPlayerName = "Arthur"

// CreateTestPlayer creates a level 1 player with the given starter weapon
func CreateTestPlayer(weapon entities.WeaponSpec) *entities.Combatant {
	return builders.NewCombatantBuilder().
		WithID("player-test-001").
		WithName(TestPlayerName).
		WithWeapon(weapon).
		Build()
}

// CreateTestSaveState creates a save document shaped like a game snapshot
func CreateTestSaveState() map[string]any {
	return map[string]any{
		"player_name":       TestPlayerName,
		"player_level":      2,
		"player_health":     95,
		"player_max_health": 120,
		"player_damage":     12,
		"player_experience": 17,
		"weapon":            "Sword",
		"state":             "in_progress",
		"bosses_defeated":   1,
	}
}
