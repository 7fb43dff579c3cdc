package engine

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Event types published on the event bus
const (
	EventAttack        = "combat.attack"
	EventSpecialAttack = "combat.special_attack"
	EventLevelUp       = "progression.level_up"
	EventStateChanged  = "game.state_changed"
)

// Event context keys
const (
	ContextKeyDamage   = "damage"
	ContextKeyCritical = "critical"
	ContextKeyLevel    = "level"
	ContextKeyState    = "state"
	ContextKeyPrevious = "previous_state"
)

// Rules holds the tunable numbers behind combat and progression
type Rules struct {
	// Experience for level L is ceil(BaseExpPerLevel * L^ExpMultiplier)
	BaseExpPerLevel int
	ExpMultiplier   float64

	LevelUpHealth int
	LevelUpDamage int

	// Flat damage a boss adds after every attack
	BossSpecialBonus int

	CriticalMultiplier float64
}

// DefaultRules returns the standard rule set
func DefaultRules() *Rules {
	return &Rules{
		BaseExpPerLevel:    100,
		ExpMultiplier:      1.5,
		LevelUpHealth:      10,
		LevelUpDamage:      2,
		BossSpecialBonus:   2,
		CriticalMultiplier: 2.0,
	}
}

// Validate checks the rules are usable
func (r *Rules) Validate() error {
	if r == nil {
		return errors.InvalidArgument("rules cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("BaseExpPerLevel", r.BaseExpPerLevel, 1, vb)
	if r.ExpMultiplier <= 0 {
		vb.Field("ExpMultiplier", "must be positive")
	}
	errors.ValidateMin("LevelUpHealth", r.LevelUpHealth, 0, vb)
	errors.ValidateMin("LevelUpDamage", r.LevelUpDamage, 0, vb)
	errors.ValidateMin("BossSpecialBonus", r.BossSpecialBonus, 0, vb)
	if r.CriticalMultiplier < 1 {
		vb.Field("CriticalMultiplier", "must be at least 1")
	}

	return vb.Build()
}

// AttackInput contains the two sides of a single attack
type AttackInput struct {
	Attacker *entities.Combatant
	Defender *entities.Combatant

	// CriticalChance in [0, 1]; zero skips the critical roll entirely
	CriticalChance float64
}

// AttackOutput reports what the attack did
type AttackOutput struct {
	// Damage is the total applied to the defender
	Damage           int
	BaseDamage       int
	SpecialDamage    int
	Critical         bool
	DefenderDefeated bool
}

// CalculateDamageInput contains a base damage and the chance to crit
type CalculateDamageInput struct {
	BaseDamage     int
	CriticalChance float64
}

// CalculateDamageOutput contains the final damage
type CalculateDamageOutput struct {
	Damage   int
	Critical bool
}

// RollDiceInput contains the die to roll
type RollDiceInput struct {
	Sides int
	Count int
}

// RollDiceOutput contains the individual rolls and their sum
type RollDiceOutput struct {
	Rolls []int
	Total int
}
