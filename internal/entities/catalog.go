package entities

// Starting stats for a new player character
const (
	PlayerStartingHealth = 110
	PlayerStartingDamage = 10
)

// WeaponSpec describes a weapon that can be built on demand
type WeaponSpec struct {
	Key         string
	Name        string
	Description string
	DamageBonus int
	AttackType  AttackType
}

// Build creates a fresh weapon item from the spec
func (w WeaponSpec) Build() *Item {
	return NewWeapon(w.Name, w.Description, w.DamageBonus, w.AttackType)
}

// Weapon catalog
var (
	WeaponSword = WeaponSpec{
		Key:         "SWORD",
		Name:        "Sword",
		Description: "A classic weapon of the brave",
		DamageBonus: 5,
		AttackType:  AttackTypePhysical,
	}
	WeaponAxe = WeaponSpec{
		Key:         "AXE",
		Name:        "Axe",
		Description: "Heavy weapon for powerful attacks",
		DamageBonus: 7,
		AttackType:  AttackTypePhysical,
	}
	WeaponBow = WeaponSpec{
		Key:         "BOW",
		Name:        "Bow",
		Description: "Ranged weapon for precision strikes",
		DamageBonus: 4,
		AttackType:  AttackTypePhysical,
	}
	WeaponBoss = WeaponSpec{
		Key:         "BOSS_WEAPON",
		Name:        "Boss Weapon",
		Description: "Special weapon wielded by bosses",
		DamageBonus: 5,
		AttackType:  AttackTypePhysical,
	}
)

// StarterWeapons returns the weapon menu offered at character creation,
// in menu order.
func StarterWeapons() []WeaponSpec {
	return []WeaponSpec{WeaponSword, WeaponAxe, WeaponBow}
}

// HealingPotion restores 20 health
var HealingPotion = struct {
	Name        string
	Description string
	HealAmount  int
}{
	Name:        "Healing Potion",
	Description: "Restores health",
	HealAmount:  20,
}

// NewHealingPotion builds a standard healing potion
func NewHealingPotion() *Item {
	return NewPotion(HealingPotion.Name, HealingPotion.Description, HealingPotion.HealAmount)
}

// BossSpec describes a boss in the roster
type BossSpec struct {
	Name        string
	Description string
	Health      int
	Damage      int
}

// Boss catalog
var (
	BossGoblinKing = BossSpec{
		Name:        "Goblin King",
		Description: "The tyrant ruler of the goblin horde",
		Health:      50,
		Damage:      8,
	}
	BossDarkSorcerer = BossSpec{
		Name:        "Dark Sorcerer",
		Description: "Master of dark magic and forbidden arts",
		Health:      60,
		Damage:      9,
	}
)

// DefaultBossRoster returns the bosses in fight order
func DefaultBossRoster() []BossSpec {
	return []BossSpec{BossGoblinKing, BossDarkSorcerer}
}
