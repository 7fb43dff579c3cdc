// Package game runs the adventure: character creation, then a fight
// against each boss in order until the player wins or falls.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/console"
	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
)

// Config holds the dependencies and tunables for a game
type Config struct {
	Engine      engine.Engine
	Terminal    console.Terminal
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	// SaveSystem and SaveSlot enable autosaving after every boss and at
	// the end of the game. A zero slot disables it.
	SaveSystem savegame.Service
	SaveSlot   int

	// Zero values fall back to the standard catalog
	Weapons        []entities.WeaponSpec
	Bosses         []entities.BossSpec
	PlayerHealth   int
	PlayerDamage   int
	InventorySlots int
	CriticalChance float64

	// Quest objective i advances when boss i falls. Defaults to one
	// objective per boss.
	Quest *entities.Quest
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Terminal == nil {
		vb.RequiredField("Terminal")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SaveSlot < 0 {
		vb.Field("SaveSlot", "must not be negative")
	}
	if c.SaveSlot > 0 && c.SaveSystem == nil {
		vb.Field("SaveSystem", "is required when SaveSlot is set")
	}
	errors.ValidateMin("PlayerHealth", c.PlayerHealth, 0, vb)
	errors.ValidateMin("PlayerDamage", c.PlayerDamage, 0, vb)
	errors.ValidateMin("InventorySlots", c.InventorySlots, 0, vb)
	errors.ValidateProbability("CriticalChance", c.CriticalChance, vb)
	for i, b := range c.Bosses {
		if b.Health < 1 {
			vb.Field(fmt.Sprintf("Bosses[%d].Health", i), "must be at least 1")
		}
	}

	return vb.Build()
}

// Game drives one playthrough
type Game struct {
	engine     engine.Engine
	terminal   console.Terminal
	eventBus   events.EventBus
	idGen      idgen.Generator
	saveSystem savegame.Service
	saveSlot   int
	combat     *CombatManager
	session    core.Entity

	weapons        []entities.WeaponSpec
	bossSpecs      []entities.BossSpec
	playerHealth   int
	playerDamage   int
	inventorySlots int
	quest          *entities.Quest

	state            State
	player           *entities.Combatant
	bosses           []*entities.Combatant
	currentBossIndex int
	bossesDefeated   int
}

// New creates a game in the initial state
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &Game{
		engine:         cfg.Engine,
		terminal:       cfg.Terminal,
		eventBus:       cfg.EventBus,
		idGen:          cfg.IDGenerator,
		saveSystem:     cfg.SaveSystem,
		saveSlot:       cfg.SaveSlot,
		combat:         NewCombatManager(cfg.Engine, cfg.Terminal, cfg.CriticalChance),
		session:        rpgtoolkit.NewSessionEntity(cfg.IDGenerator.Generate()),
		weapons:        cfg.Weapons,
		bossSpecs:      cfg.Bosses,
		playerHealth:   cfg.PlayerHealth,
		playerDamage:   cfg.PlayerDamage,
		inventorySlots: cfg.InventorySlots,
		quest:          cfg.Quest,
		state:          StateInitial,
	}

	if len(g.weapons) == 0 {
		g.weapons = entities.StarterWeapons()
	}
	if len(g.bossSpecs) == 0 {
		g.bossSpecs = entities.DefaultBossRoster()
	}
	if g.playerHealth == 0 {
		g.playerHealth = entities.PlayerStartingHealth
	}
	if g.playerDamage == 0 {
		g.playerDamage = entities.PlayerStartingDamage
	}
	if g.quest == nil {
		names := make([]string, len(g.bossSpecs))
		for i, spec := range g.bossSpecs {
			names[i] = spec.Name
		}
		g.quest = entities.DefaultQuest(names...)
	}

	return g, nil
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

// Player returns the player character, nil before setup
func (g *Game) Player() *entities.Combatant {
	return g.player
}

// Bosses returns the roster in fight order
func (g *Game) Bosses() []*entities.Combatant {
	return g.bosses
}

// CurrentBoss returns the boss being fought or next up, nil once the
// roster is exhausted.
func (g *Game) CurrentBoss() *entities.Combatant {
	if g.currentBossIndex < len(g.bosses) {
		return g.bosses[g.currentBossIndex]
	}
	return nil
}

// Quest returns the campaign quest
func (g *Game) Quest() *entities.Quest {
	return g.quest
}

// Run plays the whole game. A finished game cannot be run again.
func (g *Game) Run(ctx context.Context) error {
	if g.state.Terminal() {
		return errors.FailedPreconditionf("game already ended in %s", g.state)
	}

	if g.state == StateInitial {
		if err := g.ShowIntro(ctx); err != nil {
			return err
		}
	}

	if err := g.setState(ctx, StateInProgress); err != nil {
		return err
	}

	if err := g.HandleBossBattles(ctx); err != nil {
		return err
	}

	if g.state == StateVictory {
		g.terminal.Printf("\n%s\n", victoryMessage)
	} else {
		g.terminal.Println(defeatMessage)
	}
	g.autosave(ctx)

	return g.terminal.PressEnter(ctx)
}

// ShowIntro clears the screen, tells the story and runs setup
func (g *Game) ShowIntro(ctx context.Context) error {
	g.terminal.Clear()
	g.terminal.Println(introTitle)
	g.terminal.Println(introStory)
	return g.Setup(ctx)
}

// Setup creates the player and the boss roster, leaving the game ready
func (g *Game) Setup(ctx context.Context) error {
	if g.state != StateInitial {
		return errors.FailedPreconditionf("cannot set up a game in state %s", g.state)
	}

	name, err := g.promptName(ctx)
	if err != nil {
		return err
	}

	weapon, err := g.ChooseWeapon(ctx)
	if err != nil {
		return err
	}

	player, err := entities.NewCombatant(&entities.CombatantConfig{
		ID:             g.idGen.Generate(),
		Name:           name,
		Kind:           entities.KindPlayer,
		Health:         g.playerHealth,
		Damage:         g.playerDamage,
		Weapon:         weapon.Build(),
		InventorySlots: g.inventorySlots,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create player")
	}
	player.AddItem(entities.NewHealingPotion())
	g.player = player

	g.displayPlayer()
	if err := g.terminal.PressEnter(ctx); err != nil {
		return err
	}

	g.bosses = make([]*entities.Combatant, 0, len(g.bossSpecs))
	for _, spec := range g.bossSpecs {
		boss, err := entities.NewBoss(g.idGen.Generate(), spec)
		if err != nil {
			return errors.Wrapf(err, "failed to create boss %s", spec.Name)
		}
		g.bosses = append(g.bosses, boss)
	}
	g.currentBossIndex = 0

	slog.Info("Game set up",
		"player", player.Name,
		"weapon", weapon.Name,
		"bosses", len(g.bosses),
	)

	return g.setState(ctx, StateReady)
}

// ChooseWeapon shows the weapon menu and returns the pick
func (g *Game) ChooseWeapon(ctx context.Context) (entities.WeaponSpec, error) {
	g.terminal.Println(weaponHeader)
	for i, w := range g.weapons {
		g.terminal.Printf("%d. %s\n", i+1, w.Name)
	}

	choice, err := g.terminal.PromptChoice(ctx,
		fmt.Sprintf("Enter your choice (1-%d): ", len(g.weapons)), 1, len(g.weapons))
	if err != nil {
		return entities.WeaponSpec{}, err
	}

	return g.weapons[choice-1], nil
}

// HandleBossBattles fights each remaining boss in order and stops at the
// first defeat.
func (g *Game) HandleBossBattles(ctx context.Context) error {
	if g.state != StateInProgress {
		return errors.FailedPreconditionf("cannot fight in state %s", g.state)
	}

	for ; g.currentBossIndex < len(g.bosses); g.currentBossIndex++ {
		boss := g.bosses[g.currentBossIndex]
		g.terminal.Border("Boss Battle: " + boss.Name)

		won, err := g.combat.StartCombat(ctx, g.player, boss)
		if err != nil {
			return err
		}
		if !won {
			g.terminal.Println("\nYou have been defeated!")
			return g.setState(ctx, StateGameOver)
		}

		g.terminal.Printf("\nVictory over %s!\n", boss.Name)
		if err := g.rewardVictory(ctx, boss); err != nil {
			return err
		}
		g.autosave(ctx)

		if err := g.terminal.PressEnter(ctx); err != nil {
			return err
		}
	}

	if g.quest.Completed && g.quest.Complete(g.player, g.engine) {
		g.terminal.Printf("\nQuest complete: %s\n", g.quest.Name)
	}

	return g.setState(ctx, StateVictory)
}

// Snapshot returns the state mapping written to save slots
func (g *Game) Snapshot() map[string]any {
	snap := map[string]any{
		KeyState:          g.state.String(),
		KeyBossesDefeated: g.bossesDefeated,
		KeyQuestProgress:  g.quest.Progress(),
	}

	if g.player != nil {
		snap[KeyPlayerName] = g.player.Name
		snap[KeyPlayerLevel] = g.player.Level
		snap[KeyPlayerHealth] = g.player.Health()
		snap[KeyPlayerMaxHealth] = g.player.MaxHealth()
		snap[KeyPlayerDamage] = g.player.Damage
		snap[KeyPlayerExperience] = g.player.Experience
		if g.player.EquippedWeapon != nil {
			snap[KeyWeapon] = g.player.EquippedWeapon.Name
		}
	}

	return snap
}

func (g *Game) promptName(ctx context.Context) (string, error) {
	for {
		raw, err := g.terminal.Prompt(ctx, namePrompt)
		if err != nil {
			return "", err
		}
		if name := console.Capitalize(raw); name != "" {
			return name, nil
		}
	}
}

func (g *Game) displayPlayer() {
	p := g.player
	g.terminal.Printf("\nName: %s\n", p.Name)
	g.terminal.Printf("Health: %s\n", console.FormatHealth(p.Health(), p.MaxHealth()))
	g.terminal.Printf("Damage: %d\n", p.Damage)
	if p.EquippedWeapon != nil {
		g.terminal.Printf("Weapon: %s (+%d damage)\n", p.EquippedWeapon.Name, p.EquippedWeapon.DamageBonus)
	} else {
		g.terminal.Println("No Weapon")
	}
}

// rewardVictory grants experience equal to the boss's max health and
// advances the quest objective at the boss's roster index.
func (g *Game) rewardVictory(ctx context.Context, boss *entities.Combatant) error {
	g.bossesDefeated++
	g.quest.UpdateObjective(g.currentBossIndex, 1)

	xp := boss.MaxHealth()
	levels := g.engine.GainExperience(g.player, xp)
	g.terminal.Printf("You gained %d experience.\n", xp)
	if levels == 0 {
		return nil
	}

	g.terminal.Printf("%s reached level %d! Health restored to %d.\n",
		g.player.Name, g.player.Level, g.player.MaxHealth())

	event := events.NewGameEvent(engine.EventLevelUp, g.player, nil)
	event.Context().Set(engine.ContextKeyLevel, g.player.Level)
	if err := g.eventBus.Publish(ctx, event); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish level up")
	}
	return nil
}

func (g *Game) setState(ctx context.Context, next State) error {
	prev := g.state
	g.state = next

	slog.Info("Game state changed", "from", prev, "to", next)

	event := events.NewGameEvent(engine.EventStateChanged, g.session, nil)
	event.Context().Set(engine.ContextKeyState, next.String())
	event.Context().Set(engine.ContextKeyPrevious, prev.String())
	if err := g.eventBus.Publish(ctx, event); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish state change").
			WithMeta("state", next.String())
	}
	return nil
}

func (g *Game) autosave(ctx context.Context) {
	if g.saveSlot == 0 {
		return
	}
	if g.saveSystem.SaveGame(ctx, g.Snapshot(), g.saveSlot) {
		g.terminal.Printf("Game saved to slot %d.\n", g.saveSlot)
	} else {
		g.terminal.Println("Autosave failed, continuing without saving.")
	}
}
