package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Kind distinguishes player characters from bosses. The engine
// dispatches attack rules on it.
type Kind string

// Combatant kinds
const (
	KindPlayer Kind = "player"
	KindBoss   Kind = "boss"
)

// Combatant is a character that can fight. Health always stays within
// [0, MaxHealth] through TakeDamage, Heal and RestoreHealth; SetHealth
// only guards the lower bound.
type Combatant struct {
	ID             string
	Name           string
	Kind           Kind
	Damage         int
	Level          int
	Experience     int
	Inventory      *Inventory
	EquippedWeapon *Item

	health    int
	maxHealth int
}

// CombatantConfig holds the starting values for a combatant
type CombatantConfig struct {
	ID             string
	Name           string
	Kind           Kind
	Health         int
	Damage         int
	Weapon         *Item
	InventorySlots int
}

// Validate ensures the starting values are usable
func (c *CombatantConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", c.Name, vb)
	errors.ValidateMin("Health", c.Health, 1, vb)
	errors.ValidateMin("Damage", c.Damage, 0, vb)
	if c.Kind != KindPlayer && c.Kind != KindBoss {
		vb.InvalidField("Kind", fmt.Sprintf("unknown kind %q", c.Kind))
	}
	if c.Weapon != nil && !c.Weapon.IsWeapon() {
		vb.InvalidField("Weapon", "item is not a weapon")
	}

	return vb.Build()
}

// NewCombatant creates a level 1 combatant at full health
func NewCombatant(cfg *CombatantConfig) (*Combatant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combatant config")
	}

	return &Combatant{
		ID:             cfg.ID,
		Name:           cfg.Name,
		Kind:           cfg.Kind,
		Damage:         cfg.Damage,
		Level:          1,
		Inventory:      NewInventory(cfg.InventorySlots),
		EquippedWeapon: cfg.Weapon,
		health:         cfg.Health,
		maxHealth:      cfg.Health,
	}, nil
}

// NewBoss creates a boss from the roster spec, armed with the Boss Weapon
func NewBoss(id string, spec BossSpec) (*Combatant, error) {
	return NewCombatant(&CombatantConfig{
		ID:     id,
		Name:   spec.Name,
		Kind:   KindBoss,
		Health: spec.Health,
		Damage: spec.Damage,
		Weapon: WeaponBoss.Build(),
	})
}

// Ensure Combatant can be used as an rpg-toolkit entity
var _ core.Entity = (*Combatant)(nil)

// GetID returns the combatant's ID
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the combatant kind for rpg-toolkit
func (c *Combatant) GetType() string {
	return string(c.Kind)
}

// IsBoss reports whether the combatant uses boss attack rules
func (c *Combatant) IsBoss() bool {
	return c.Kind == KindBoss
}

// Health returns current health
func (c *Combatant) Health() int {
	return c.health
}

// MaxHealth returns the health cap
func (c *Combatant) MaxHealth() int {
	return c.maxHealth
}

// SetHealth assigns health directly. Negative values store 0; the upper
// bound is left to Heal and RestoreHealth.
func (c *Combatant) SetHealth(value int) {
	c.health = max(0, value)
}

// IncreaseMaxHealth raises the health cap without touching current health
func (c *Combatant) IncreaseMaxHealth(amount int) {
	if amount > 0 {
		c.maxHealth += amount
	}
}

// IsAlive reports whether health is above zero
func (c *Combatant) IsAlive() bool {
	return c.health > 0
}

// TakeDamage lowers health, never below zero. Negative amounts count as
// zero so damage can never heal. Returns the amount applied.
func (c *Combatant) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	c.health = max(0, c.health-amount)
	return amount
}

// Heal raises health, capped at MaxHealth
func (c *Combatant) Heal(amount int) {
	if amount <= 0 {
		return
	}
	c.health = min(c.maxHealth, c.health+amount)
}

// RestoreHealth fills health to MaxHealth
func (c *Combatant) RestoreHealth() {
	c.health = c.maxHealth
}

// WeaponBonus returns the equipped weapon's damage bonus, or 0
func (c *Combatant) WeaponBonus() int {
	if c.EquippedWeapon == nil {
		return 0
	}
	return c.EquippedWeapon.DamageBonus
}

// EquipWeapon replaces the equipped weapon. Non-weapons are refused.
func (c *Combatant) EquipWeapon(weapon *Item) bool {
	if !weapon.IsWeapon() {
		return false
	}
	c.EquippedWeapon = weapon
	return true
}

// UnequipWeapon removes and returns the equipped weapon
func (c *Combatant) UnequipWeapon() *Item {
	w := c.EquippedWeapon
	c.EquippedWeapon = nil
	return w
}

// AddItem puts an item in the combatant's inventory
func (c *Combatant) AddItem(item *Item) bool {
	return c.Inventory.AddItem(item)
}

// UseItem uses an item from the combatant's inventory on itself
func (c *Combatant) UseItem(item *Item) bool {
	return c.Inventory.UseItem(item, c)
}

// String returns the name and health, prefixed for bosses
func (c *Combatant) String() string {
	if c.IsBoss() {
		return fmt.Sprintf("Boss: %s (Health: %d)", c.Name, c.health)
	}
	return fmt.Sprintf("%s (Health: %d)", c.Name, c.health)
}
