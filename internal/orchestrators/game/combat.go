package game

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/console"
	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// CombatManager runs a fight between two combatants, alternating
// attacks with the attacker going first.
type CombatManager struct {
	engine         engine.Engine
	terminal       console.Terminal
	criticalChance float64
}

// NewCombatManager creates a combat manager
func NewCombatManager(eng engine.Engine, terminal console.Terminal, criticalChance float64) *CombatManager {
	return &CombatManager{
		engine:         eng,
		terminal:       terminal,
		criticalChance: criticalChance,
	}
}

// StartCombat fights until one side drops. Health is checked after every
// single attack, so a defender at zero never strikes back. Returns true
// when the attacker wins.
func (m *CombatManager) StartCombat(ctx context.Context, attacker, defender *entities.Combatant) (bool, error) {
	if attacker == nil || defender == nil {
		return false, errors.InvalidArgument("both combatants are required")
	}
	if !canHurt(attacker) && !canHurt(defender) {
		return false, errors.FailedPreconditionf("neither %s nor %s can deal damage", attacker.Name, defender.Name)
	}

	for {
		if err := m.strike(ctx, attacker, defender); err != nil {
			return false, err
		}
		if !defender.IsAlive() {
			m.terminal.Printf("\n%s defeated %s!\n", attacker, defender)
			return true, nil
		}

		if err := m.strike(ctx, defender, attacker); err != nil {
			return false, err
		}
		if !attacker.IsAlive() {
			m.terminal.Printf("\n%s defeated %s!\n", defender, attacker)
			return false, nil
		}

		if err := m.terminal.PressEnter(ctx); err != nil {
			return false, err
		}
	}
}

func (m *CombatManager) strike(ctx context.Context, from, to *entities.Combatant) error {
	out, err := m.engine.Attack(ctx, &engine.AttackInput{
		Attacker:       from,
		Defender:       to,
		CriticalChance: m.criticalChance,
	})
	if err != nil {
		return errors.Wrapf(err, "%s failed to attack %s", from.Name, to.Name)
	}

	if out.Critical {
		m.terminal.Println("\nCritical hit!")
	}
	m.terminal.Printf("\n%s attacks %s for %d damage!\n", from, to, out.Damage)
	return nil
}

func canHurt(c *entities.Combatant) bool {
	return c.IsBoss() || c.Damage+c.WeaponBonus() > 0
}
