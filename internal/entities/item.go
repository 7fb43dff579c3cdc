// Package entities provides the core data structures for rpg-adventure:
// items, inventories, combatants and quests.
package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// ItemType categorizes an item and decides what Use does with it
type ItemType string

// Item types
const (
	ItemTypeWeapon  ItemType = "WEAPON"
	ItemTypeArmor   ItemType = "ARMOR"
	ItemTypePotion  ItemType = "POTION"
	ItemTypeKeyItem ItemType = "KEY_ITEM"
	ItemTypeGold    ItemType = "GOLD"
)

// String returns the string representation of the item type
func (t ItemType) String() string {
	return string(t)
}

// Equippable reports whether the type belongs to the equip catalog.
// Gold is carried, never equipped.
func (t ItemType) Equippable() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypePotion, ItemTypeKeyItem:
		return true
	default:
		return false
	}
}

// AttackType describes how a weapon deals damage
type AttackType string

// Attack types
const (
	AttackTypePhysical AttackType = "physical"
	AttackTypeMagical  AttackType = "magical"
)

// ErrUnsupportedItemType matches (via errors.Is) any failure from using
// an item whose type has no use capability.
var ErrUnsupportedItemType = errors.Unimplemented("unsupported item type")

// Item is anything a combatant can carry. Weapons are items of type
// WEAPON with a damage bonus; potions carry a heal amount.
type Item struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ItemType   `json:"item_type"`
	Value       int        `json:"value"`
	DamageBonus int        `json:"damage_bonus,omitempty"`
	AttackType  AttackType `json:"attack_type,omitempty"`
	HealAmount  int        `json:"heal_amount,omitempty"`
}

// NewWeapon creates a weapon item. Negative bonuses are raised to zero.
func NewWeapon(name, description string, damageBonus int, attackType AttackType) *Item {
	if damageBonus < 0 {
		damageBonus = 0
	}
	if attackType == "" {
		attackType = AttackTypePhysical
	}
	return &Item{
		Name:        name,
		Description: description,
		Type:        ItemTypeWeapon,
		DamageBonus: damageBonus,
		AttackType:  attackType,
	}
}

// NewPotion creates a healing potion
func NewPotion(name, description string, healAmount int) *Item {
	return &Item{
		Name:        name,
		Description: description,
		Type:        ItemTypePotion,
		HealAmount:  healAmount,
	}
}

// NewGold creates a gold pouch worth amount
func NewGold(amount int) *Item {
	return &Item{
		Name:        "Gold",
		Description: fmt.Sprintf("%d gold coins", amount),
		Type:        ItemTypeGold,
		Value:       amount,
	}
}

// IsWeapon reports whether the item is a weapon
func (i *Item) IsWeapon() bool {
	return i != nil && i.Type == ItemTypeWeapon
}

// Use applies the item to the combatant. Weapons are equipped, healing
// potions heal; every other type fails with ErrUnsupportedItemType.
func (i *Item) Use(c *Combatant) error {
	if c == nil {
		return errors.InvalidArgument("combatant is required")
	}

	switch {
	case i.Type == ItemTypeWeapon:
		c.EquipWeapon(i)
		return nil
	case i.Type == ItemTypePotion && i.HealAmount > 0:
		c.Heal(i.HealAmount)
		return nil
	default:
		return errors.Unimplementedf("cannot use %s item directly", i.Type).
			WithMeta("item", i.Name)
	}
}

// String returns a short description of the item
func (i *Item) String() string {
	if i.IsWeapon() {
		return fmt.Sprintf("%s (+%d %s)", i.Name, i.DamageBonus, i.AttackType)
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.Type)
}
