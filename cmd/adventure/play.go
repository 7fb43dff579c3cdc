package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-adventure/internal/combatlog"
	"github.com/KirkDiggler/rpg-adventure/internal/console"
	"github.com/KirkDiggler/rpg-adventure/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
)

var (
	saveSlot  int
	noClear   bool
	questFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new adventure",
	Long:  `Start a new adventure. With --save-slot the game autosaves to that slot after every boss.`,
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&saveSlot, "save-slot", 0, "Autosave slot (0 disables autosave)")
	playCmd.Flags().BoolVar(&noClear, "no-clear", false, "Do not clear the screen")
	playCmd.Flags().StringVar(&questFile, "quest-file", "", "JSON file of quest definitions; the first one is tracked")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	term, err := console.New(&console.Config{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		ClearScreen: !noClear,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	var quest *entities.Quest
	if questFile != "" {
		quest, err = loadQuest(questFile)
		if err != nil {
			return err
		}
	}

	bus := events.NewBus()

	if appConfig.Game.Logging.Enabled {
		combatLog, err := combatlog.New(&combatlog.Config{
			EventBus: bus,
			Writer:   cmd.OutOrStdout(),
			Clock:    clock.New(),
		})
		if err != nil {
			return fmt.Errorf("failed to create combat log: %w", err)
		}
		defer func() {
			if err := combatLog.Close(); err != nil {
				slog.Warn("Failed to close combat log", "error", err)
			}
		}()
	}

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: dice.DefaultRoller,
		Rules:      appConfig.Rules(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	var saveSystem savegame.Service
	if saveSlot != 0 {
		svc, cleanup, err := openSaveSystem(ctx, appConfig)
		if err != nil {
			return err
		}
		defer cleanup()

		if saveSlot < 1 || saveSlot > svc.Slots() {
			return fmt.Errorf("save slot must be between 1 and %d", svc.Slots())
		}
		saveSystem = svc
	}

	g, err := game.New(&game.Config{
		Engine:         eng,
		Terminal:       term,
		EventBus:       bus,
		IDGenerator:    idgen.NewUUID(""),
		SaveSystem:     saveSystem,
		SaveSlot:       saveSlot,
		InventorySlots: appConfig.Inventory.MaxSlots,
		CriticalChance: appConfig.CriticalChance(),
		Quest:          quest,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	slog.Debug("Starting game", "name", appConfig.Game.Name, "version", appConfig.Game.Version)

	if err := g.Run(ctx); err != nil {
		if errors.IsCanceled(err) {
			term.Println("\nGoodbye!")
			return nil
		}
		return err
	}

	return nil
}

// loadQuest reads quest definitions from path and returns the first
func loadQuest(path string) (*entities.Quest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quest file: %w", err)
	}
	defer func() { _ = f.Close() }()

	quests, err := entities.LoadQuests(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load quests from %s: %w", path, err)
	}
	if len(quests) == 0 {
		return nil, fmt.Errorf("quest file %s defines no quests", path)
	}

	slog.Debug("Loaded quest", "name", quests[0].Name, "objectives", len(quests[0].Objectives))
	return quests[0], nil
}
