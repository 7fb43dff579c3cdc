// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
	rules      *engine.Rules
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	// Rules defaults to engine.DefaultRules when nil
	Rules *engine.Rules
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.Rules != nil {
		if err := c.Rules.Validate(); err != nil {
			return errors.Wrap(err, "invalid rules")
		}
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules := cfg.Rules
	if rules == nil {
		rules = engine.DefaultRules()
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		rules:      rules,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// Verify that Adapter can pay out quest experience
var _ entities.ExperienceAwarder = (*Adapter)(nil)

// Attack resolves one attack. The defender takes the attacker's damage
// plus weapon bonus; a boss then lands its special bonus as a second hit.
// Attacks never miss and never heal.
func (a *Adapter) Attack(ctx context.Context, input *engine.AttackInput) (*engine.AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attacker == nil {
		return nil, errors.InvalidArgument("attacker is required")
	}
	if input.Defender == nil {
		return nil, errors.InvalidArgument("defender is required")
	}

	attacker, defender := input.Attacker, input.Defender
	output := &engine.AttackOutput{}

	damage := attacker.Damage + attacker.WeaponBonus()
	if input.CriticalChance > 0 {
		calc, err := a.CalculateDamage(ctx, &engine.CalculateDamageInput{
			BaseDamage:     damage,
			CriticalChance: input.CriticalChance,
		})
		if err != nil {
			return nil, err
		}
		damage = calc.Damage
		output.Critical = calc.Critical
	}

	output.BaseDamage = defender.TakeDamage(damage)
	if err := a.publishHit(ctx, engine.EventAttack, attacker, defender, output.BaseDamage, output.Critical); err != nil {
		return nil, err
	}

	if attacker.IsBoss() {
		output.SpecialDamage = defender.TakeDamage(a.rules.BossSpecialBonus)
		if err := a.publishHit(ctx, engine.EventSpecialAttack, attacker, defender, output.SpecialDamage, false); err != nil {
			return nil, err
		}
	}

	output.Damage = output.BaseDamage + output.SpecialDamage
	output.DefenderDefeated = !defender.IsAlive()

	return output, nil
}

// CalculateDamage rolls a d100 against the critical chance and multiplies
// the damage on a hit.
func (a *Adapter) CalculateDamage(
	_ context.Context,
	input *engine.CalculateDamageInput,
) (*engine.CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("BaseDamage", input.BaseDamage, 0, vb)
	errors.ValidateProbability("CriticalChance", input.CriticalChance, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output := &engine.CalculateDamageOutput{Damage: input.BaseDamage}
	if input.CriticalChance == 0 {
		return output, nil
	}

	roll, err := a.diceRoller.Roll(100)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll for critical hit")
	}

	threshold := int(math.Round(input.CriticalChance * 100))
	if roll <= threshold {
		output.Critical = true
		output.Damage = int(float64(input.BaseDamage) * a.rules.CriticalMultiplier)
	}

	return output, nil
}

// RollDice rolls Count dice of the given size. Count defaults to one.
func (a *Adapter) RollDice(_ context.Context, input *engine.RollDiceInput) (*engine.RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count := input.Count
	if count == 0 {
		count = 1
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("Sides", input.Sides, 1, vb)
	errors.ValidateMin("Count", count, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rolls, err := a.diceRoller.RollN(count, input.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, input.Sides)
	}

	output := &engine.RollDiceOutput{Rolls: rolls}
	for _, r := range rolls {
		output.Total += r
	}

	return output, nil
}

// RequiredExperience returns the experience needed to advance past level
func (a *Adapter) RequiredExperience(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Ceil(float64(a.rules.BaseExpPerLevel) * math.Pow(float64(level), a.rules.ExpMultiplier)))
}

// GainExperience adds experience and levels up as many times as it
// covers, consuming each threshold. Returns the number of levels gained.
func (a *Adapter) GainExperience(c *entities.Combatant, amount int) int {
	if c == nil {
		return 0
	}
	if amount < 0 {
		slog.Warn("Ignoring negative experience", "combatant", c.Name, "amount", amount)
		return 0
	}

	c.Experience += amount

	levels := 0
	for {
		required := a.RequiredExperience(c.Level)
		if c.Experience < required {
			break
		}
		c.Experience -= required
		a.LevelUp(c)
		levels++
	}

	return levels
}

// LevelUp advances one level and restores health to the new maximum
func (a *Adapter) LevelUp(c *entities.Combatant) {
	if c == nil {
		return
	}

	c.Level++
	c.IncreaseMaxHealth(a.rules.LevelUpHealth)
	c.Damage += a.rules.LevelUpDamage
	c.RestoreHealth()

	slog.Info("Combatant leveled up",
		"combatant", c.Name,
		"level", c.Level,
		"max_health", c.MaxHealth(),
		"damage", c.Damage,
	)
}

func (a *Adapter) publishHit(
	ctx context.Context,
	eventType string,
	attacker, defender core.Entity,
	damage int,
	critical bool,
) error {
	event := events.NewGameEvent(eventType, attacker, defender)
	event.Context().Set(engine.ContextKeyDamage, damage)
	event.Context().Set(engine.ContextKeyCritical, critical)

	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish attack event").
			WithMeta("event_type", eventType)
	}
	return nil
}
