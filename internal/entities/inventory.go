package entities

import (
	"fmt"
	"log/slog"
)

// DefaultInventorySlots is the slot count used when none is configured
const DefaultInventorySlots = 10

// Inventory holds unequipped items in a bounded slot list plus at most
// one equipped item per type. len(Items) never exceeds MaxSlots.
type Inventory struct {
	maxSlots int
	items    []*Item
	equipped map[ItemType]*Item
}

// NewInventory creates an inventory. Non-positive slot counts fall back
// to DefaultInventorySlots.
func NewInventory(maxSlots int) *Inventory {
	if maxSlots <= 0 {
		maxSlots = DefaultInventorySlots
	}
	return &Inventory{
		maxSlots: maxSlots,
		items:    make([]*Item, 0, maxSlots),
		equipped: make(map[ItemType]*Item),
	}
}

// MaxSlots returns the slot capacity
func (inv *Inventory) MaxSlots() int {
	return inv.maxSlots
}

// Len returns the number of unequipped items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// IsFull reports whether every slot is taken
func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.maxSlots
}

// Items returns a copy of the unequipped items in slot order
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Contains reports whether this exact item sits in a slot
func (inv *Inventory) Contains(item *Item) bool {
	return inv.indexOf(item) >= 0
}

// AddItem places the item in a free slot. Returns false when full.
func (inv *Inventory) AddItem(item *Item) bool {
	if item == nil || inv.IsFull() {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// RemoveItem removes the first slot holding this exact item
func (inv *Inventory) RemoveItem(item *Item) bool {
	idx := inv.indexOf(item)
	if idx < 0 {
		return false
	}
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return true
}

// UseItem applies a carried item to the combatant and consumes it. An
// item whose use fails stays in its slot.
func (inv *Inventory) UseItem(item *Item, c *Combatant) bool {
	if !inv.Contains(item) {
		return false
	}

	if err := item.Use(c); err != nil {
		slog.Warn("Failed to use item",
			"item", item.Name,
			"item_type", item.Type,
			"error", err,
		)
		return false
	}

	inv.RemoveItem(item)
	return true
}

// EquipItem installs the item in its type's equip slot, moving any item
// already equipped there back into the slot list. The equip is refused
// when the evicted item would not fit.
func (inv *Inventory) EquipItem(item *Item) bool {
	if item == nil {
		return false
	}
	if !item.Type.Equippable() {
		slog.Warn("Cannot equip item", "item", item.Name, "item_type", item.Type)
		return false
	}

	current, hasCurrent := inv.equipped[item.Type]
	if current == item {
		return true
	}

	carried := inv.Contains(item)
	if hasCurrent {
		free := inv.maxSlots - len(inv.items)
		if carried {
			free++
		}
		if free < 1 {
			slog.Warn("Cannot equip item, no room for the unequipped item",
				"item", item.Name,
				"evicted", current.Name,
			)
			return false
		}
	}

	if carried {
		inv.RemoveItem(item)
	}
	if hasCurrent {
		delete(inv.equipped, item.Type)
		inv.items = append(inv.items, current)
	}
	inv.equipped[item.Type] = item
	return true
}

// UnequipItem moves the equipped item of the given type back into a
// slot. Returns nil when nothing is equipped or no slot is free.
func (inv *Inventory) UnequipItem(itemType ItemType) *Item {
	item, ok := inv.equipped[itemType]
	if !ok {
		return nil
	}
	if inv.IsFull() {
		return nil
	}

	delete(inv.equipped, itemType)
	inv.items = append(inv.items, item)
	return item
}

// Equipped returns the equipped item of a type, or nil
func (inv *Inventory) Equipped(itemType ItemType) *Item {
	return inv.equipped[itemType]
}

// EquippedCount returns how many equip slots are in use
func (inv *Inventory) EquippedCount() int {
	return len(inv.equipped)
}

// String returns a short summary of the inventory
func (inv *Inventory) String() string {
	return fmt.Sprintf("Inventory (items: %d, max: %d)", len(inv.items), inv.maxSlots)
}

func (inv *Inventory) indexOf(item *Item) int {
	if item == nil {
		return -1
	}
	for i, it := range inv.items {
		if it == item {
			return i
		}
	}
	return -1
}
