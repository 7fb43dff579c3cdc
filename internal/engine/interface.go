// Package engine defines the combat and progression rules the game runs on
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-adventure/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/entities"
)

// Engine resolves attacks and applies progression rules
type Engine interface {
	// Combat
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// Progression
	GainExperience(c *entities.Combatant, amount int) int
	LevelUp(c *entities.Combatant)
	RequiredExperience(level int) int
}
