package rpgtoolkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type AdapterTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      events.EventBus
	roller   *stubDiceRoller
	adapter  *Adapter
	received []events.Event
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.roller = &stubDiceRoller{value: 50}
	s.received = nil

	record := func(_ context.Context, e events.Event) error {
		s.received = append(s.received, e)
		return nil
	}
	s.bus.SubscribeFunc(engine.EventAttack, 0, record)
	s.bus.SubscribeFunc(engine.EventSpecialAttack, 0, record)

	adapter, err := NewAdapter(&AdapterConfig{
		EventBus:   s.bus,
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
	s.adapter = adapter
}

func (s *AdapterTestSuite) newCombatant(name string, health, damage int, weapon *entities.Item) *entities.Combatant {
	c, err := entities.NewCombatant(&entities.CombatantConfig{
		ID:     name,
		Name:   name,
		Kind:   entities.KindPlayer,
		Health: health,
		Damage: damage,
		Weapon: weapon,
	})
	s.Require().NoError(err)
	return c
}

func (s *AdapterTestSuite) TestAttackWithWeapon() {
	hero := s.newCombatant("Hero", 100, 10, entities.WeaponSword.Build())
	enemy := s.newCombatant("Enemy", 50, 5, nil)

	output, err := s.adapter.Attack(s.ctx, &engine.AttackInput{Attacker: hero, Defender: enemy})
	s.Require().NoError(err)

	s.Equal(15, output.Damage)
	s.Equal(35, enemy.Health())
	s.False(output.DefenderDefeated)
	s.Require().Len(s.received, 1)
	s.Equal(engine.EventAttack, s.received[0].Type())

	damage, ok := s.received[0].Context().Get(engine.ContextKeyDamage)
	s.True(ok)
	s.Equal(15, damage)
}

func (s *AdapterTestSuite) TestAttackWithoutWeapon() {
	hero := s.newCombatant("Hero", 100, 10, nil)
	enemy := s.newCombatant("Enemy", 50, 5, nil)

	output, err := s.adapter.Attack(s.ctx, &engine.AttackInput{Attacker: hero, Defender: enemy})
	s.Require().NoError(err)

	s.Equal(10, output.Damage)
	s.Equal(40, enemy.Health())
}

func (s *AdapterTestSuite) TestBossAttackAddsSpecialBonus() {
	boss, err := entities.NewBoss("boss-1", entities.BossGoblinKing)
	s.Require().NoError(err)
	player := s.newCombatant("Player", 110, 10, nil)

	output, err := s.adapter.Attack(s.ctx, &engine.AttackInput{Attacker: boss, Defender: player})
	s.Require().NoError(err)

	s.Equal(15, output.Damage)
	s.Equal(13, output.BaseDamage)
	s.Equal(2, output.SpecialDamage)
	s.Equal(95, player.Health())
	s.Require().Len(s.received, 2)
	s.Equal(engine.EventAttack, s.received[0].Type())
	s.Equal(engine.EventSpecialAttack, s.received[1].Type())
}

func (s *AdapterTestSuite) TestAttackFloorsHealthAtZero() {
	hero := s.newCombatant("Hero", 100, 10, entities.WeaponAxe.Build())
	enemy := s.newCombatant("Enemy", 5, 5, nil)

	output, err := s.adapter.Attack(s.ctx, &engine.AttackInput{Attacker: hero, Defender: enemy})
	s.Require().NoError(err)

	s.Equal(0, enemy.Health())
	s.True(output.DefenderDefeated)
}

func (s *AdapterTestSuite) TestAttackValidation() {
	hero := s.newCombatant("Hero", 100, 10, nil)

	_, err := s.adapter.Attack(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.Attack(s.ctx, &engine.AttackInput{Attacker: hero})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "defender is required")
}

func (s *AdapterTestSuite) TestAttackPublishFailure() {
	adapter, err := NewAdapter(&AdapterConfig{
		EventBus:   &stubEventBus{err: fmt.Errorf("bus closed")},
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)

	hero := s.newCombatant("Hero", 100, 10, nil)
	enemy := s.newCombatant("Enemy", 50, 5, nil)

	_, err = adapter.Attack(s.ctx, &engine.AttackInput{Attacker: hero, Defender: enemy})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *AdapterTestSuite) TestCalculateDamage() {
	testCases := []struct {
		name         string
		roll         int
		chance       float64
		expected     int
		expectedCrit bool
	}{
		{name: "no chance skips the roll", roll: 1, chance: 0, expected: 15},
		{name: "roll under chance crits", roll: 10, chance: 0.1, expected: 30, expectedCrit: true},
		{name: "roll over chance is normal", roll: 11, chance: 0.1, expected: 15},
		{name: "certain crit", roll: 100, chance: 1, expected: 30, expectedCrit: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.value = tc.roll
			output, err := s.adapter.CalculateDamage(s.ctx, &engine.CalculateDamageInput{
				BaseDamage:     15,
				CriticalChance: tc.chance,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Damage)
			s.Equal(tc.expectedCrit, output.Critical)
		})
	}

	s.Run("chance out of range", func() {
		_, err := s.adapter.CalculateDamage(s.ctx, &engine.CalculateDamageInput{BaseDamage: 1, CriticalChance: 1.5})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *AdapterTestSuite) TestAttackAppliesCritical() {
	s.roller.value = 1
	hero := s.newCombatant("Hero", 100, 10, entities.WeaponSword.Build())
	enemy := s.newCombatant("Enemy", 50, 5, nil)

	output, err := s.adapter.Attack(s.ctx, &engine.AttackInput{
		Attacker:       hero,
		Defender:       enemy,
		CriticalChance: 0.5,
	})
	s.Require().NoError(err)
	s.True(output.Critical)
	s.Equal(30, output.Damage)
	s.Equal(20, enemy.Health())
}

func (s *AdapterTestSuite) TestRollDice() {
	s.roller.value = 4
	output, err := s.adapter.RollDice(s.ctx, &engine.RollDiceInput{Sides: 6, Count: 3})
	s.Require().NoError(err)
	s.Equal([]int{4, 4, 4}, output.Rolls)
	s.Equal(12, output.Total)

	_, err = s.adapter.RollDice(s.ctx, &engine.RollDiceInput{Sides: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestRequiredExperience() {
	s.Equal(100, s.adapter.RequiredExperience(1))
	s.Equal(283, s.adapter.RequiredExperience(2))
	s.Equal(520, s.adapter.RequiredExperience(3))
	s.Equal(100, s.adapter.RequiredExperience(0))
}

func (s *AdapterTestSuite) TestGainExperience() {
	s.Run("below threshold", func() {
		hero := s.newCombatant("Hero", 100, 10, nil)
		s.Equal(0, s.adapter.GainExperience(hero, 99))
		s.Equal(1, hero.Level)
		s.Equal(99, hero.Experience)
	})

	s.Run("single level up consumes the threshold", func() {
		hero := s.newCombatant("Hero", 100, 10, nil)
		hero.SetHealth(40)

		s.Equal(1, s.adapter.GainExperience(hero, 150))
		s.Equal(2, hero.Level)
		s.Equal(50, hero.Experience)
		s.Equal(110, hero.MaxHealth())
		s.Equal(110, hero.Health())
		s.Equal(12, hero.Damage)
	})

	s.Run("huge amount levels repeatedly", func() {
		hero := s.newCombatant("Hero", 100, 10, nil)
		levels := s.adapter.GainExperience(hero, 10000)

		s.Greater(levels, 3)
		s.Equal(1+levels, hero.Level)
		s.Less(hero.Experience, s.adapter.RequiredExperience(hero.Level))
	})

	s.Run("negative amount is rejected", func() {
		hero := s.newCombatant("Hero", 100, 10, nil)
		s.Equal(0, s.adapter.GainExperience(hero, -50))
		s.Equal(0, hero.Experience)
	})
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing event bus", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.Contains(t, err.Error(), "event bus is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{EventBus: &stubEventBus{}})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("invalid rules", func(t *testing.T) {
		rules := engine.DefaultRules()
		rules.BaseExpPerLevel = 0
		adapter, err := NewAdapter(&AdapterConfig{
			EventBus:   &stubEventBus{},
			DiceRoller: &stubDiceRoller{},
			Rules:      rules,
		})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.Contains(t, err.Error(), "BaseExpPerLevel")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{
			EventBus:   &stubEventBus{},
			DiceRoller: &stubDiceRoller{},
		})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

// Simple stubs for testing
type stubEventBus struct {
	err error
}

type stubDiceRoller struct {
	value int
}

// Minimal implementation to satisfy events.EventBus interface
func (s *stubEventBus) Publish(_ context.Context, _ events.Event) error { return s.err }
func (s *stubEventBus) Subscribe(_ string, _ events.Handler) string     { return "sub-id" }
func (s *stubEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (s *stubEventBus) Unsubscribe(_ string) error { return nil }
func (s *stubEventBus) Clear(_ string)             {}
func (s *stubEventBus) ClearAll()                  {}

// Minimal implementation to satisfy dice.Roller interface
func (s *stubDiceRoller) Roll(_ int) (int, error) { return s.value, nil }
func (s *stubDiceRoller) RollN(count, _ int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = s.value
	}
	return rolls, nil
}
