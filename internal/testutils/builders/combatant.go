// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
)

// CombatantBuilder provides a fluent interface for building test Combatant instances
type CombatantBuilder struct {
	cfg   entities.CombatantConfig
	level int
	xp    int
	items []*entities.Item
}

// NewCombatantBuilder creates a new builder for an unarmed level 1 player
// with the standard starting stats.
func NewCombatantBuilder() *CombatantBuilder {
	return &CombatantBuilder{
		cfg: entities.CombatantConfig{
			ID:     "combatant-test-123",
			Name:   "Test Hero",
			Kind:   entities.KindPlayer,
			Health: entities.PlayerStartingHealth,
			Damage: entities.PlayerStartingDamage,
		},
	}
}

// NewBossBuilder creates a builder preloaded from a roster entry
func NewBossBuilder(spec entities.BossSpec) *CombatantBuilder {
	b := NewCombatantBuilder()
	b.cfg.ID = "boss-test-123"
	b.cfg.Name = spec.Name
	b.cfg.Kind = entities.KindBoss
	b.cfg.Health = spec.Health
	b.cfg.Damage = spec.Damage
	b.cfg.Weapon = entities.WeaponBoss.Build()
	return b
}

// WithID sets the combatant ID
func (b *CombatantBuilder) WithID(id string) *CombatantBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the combatant name
func (b *CombatantBuilder) WithName(name string) *CombatantBuilder {
	b.cfg.Name = name
	return b
}

// WithHealth sets both current and max health
func (b *CombatantBuilder) WithHealth(health int) *CombatantBuilder {
	b.cfg.Health = health
	return b
}

// WithDamage sets the base damage
func (b *CombatantBuilder) WithDamage(damage int) *CombatantBuilder {
	b.cfg.Damage = damage
	return b
}

// WithWeapon equips a weapon built from spec
func (b *CombatantBuilder) WithWeapon(spec entities.WeaponSpec) *CombatantBuilder {
	b.cfg.Weapon = spec.Build()
	return b
}

// WithInventorySlots sizes the inventory
func (b *CombatantBuilder) WithInventorySlots(slots int) *CombatantBuilder {
	b.cfg.InventorySlots = slots
	return b
}

// WithItems adds items to the inventory after creation
func (b *CombatantBuilder) WithItems(items ...*entities.Item) *CombatantBuilder {
	b.items = append(b.items, items...)
	return b
}

// WithProgress sets the level and experience without applying level up
// bonuses.
func (b *CombatantBuilder) WithProgress(level, experience int) *CombatantBuilder {
	b.level = level
	b.xp = experience
	return b
}

// AsBoss switches the kind to boss
func (b *CombatantBuilder) AsBoss() *CombatantBuilder {
	b.cfg.Kind = entities.KindBoss
	return b
}

// Build returns the built combatant. Panics on an invalid configuration
// since that is always a bug in the test.
func (b *CombatantBuilder) Build() *entities.Combatant {
	cfg := b.cfg
	c, err := entities.NewCombatant(&cfg)
	if err != nil {
		panic(err)
	}

	if b.level > 0 {
		c.Level = b.level
	}
	c.Experience = b.xp
	for _, item := range b.items {
		c.AddItem(item)
	}

	return c
}
