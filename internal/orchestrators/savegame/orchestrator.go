// Package savegame is the best-effort save system the game talks to.
// Storage failures are logged and reported as false or an empty state,
// never returned to the game loop.
package savegame

//go:generate mockgen -destination=mock/mock_service.go -package=savegamemock github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"time"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
)

const (
	// DefaultSlots is the number of save slots when none is configured
	DefaultSlots = 3

	// KeySaveTime is injected into every saved document
	KeySaveTime = "save_time"

	keyPlayerName  = "player_name"
	keyPlayerLevel = "player_level"

	unknown        = "Unknown"
	corruptedSave  = "Corrupted save"
	saveTimeLayout = time.RFC3339
)

// SlotInfo summarizes one save slot for menus
type SlotInfo struct {
	Slot       int    `json:"slot"`
	Empty      bool   `json:"empty,omitempty"`
	Error      string `json:"error,omitempty"`
	LastSave   string `json:"last_save,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	Level      int    `json:"level,omitempty"`
}

// Service defines the save system operations
type Service interface {
	SaveGame(ctx context.Context, state map[string]any, slot int) bool
	LoadGame(ctx context.Context, slot int) map[string]any
	ListSlots(ctx context.Context) []SlotInfo
	DeleteSave(ctx context.Context, slot int) bool
	Slots() int
}

// Config holds the dependencies for the save system
type Config struct {
	Repository saves.Repository
	Clock      clock.Clock
	// Slots defaults to DefaultSlots
	Slots int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	errors.ValidateMin("Slots", c.Slots, 0, vb)
	return vb.Build()
}

type orchestrator struct {
	repo  saves.Repository
	clock clock.Clock
	slots int
}

// NewOrchestrator creates a new save system
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	slots := cfg.Slots
	if slots == 0 {
		slots = DefaultSlots
	}

	return &orchestrator{
		repo:  cfg.Repository,
		clock: c,
		slots: slots,
	}, nil
}

func (o *orchestrator) Slots() int {
	return o.slots
}

// SaveGame stores a copy of state with save_time added. The caller's map
// is left untouched.
func (o *orchestrator) SaveGame(ctx context.Context, state map[string]any, slot int) bool {
	if !o.validSlot(slot) {
		slog.Warn("Refusing to save to unknown slot", "slot", slot, "slots", o.slots)
		return false
	}

	doc := make(map[string]any, len(state)+1)
	maps.Copy(doc, state)
	doc[KeySaveTime] = o.clock.Now().Format(saveTimeLayout)

	out, err := o.repo.Save(ctx, saves.SaveInput{Slot: slot, Data: doc})
	if err != nil {
		slog.Error("Failed to save game", "slot", slot, "error", err)
		return false
	}

	slog.Info("Game saved", "slot", slot, "location", out.Location)
	return true
}

// LoadGame returns the saved state, or an empty map when the slot is
// empty, unknown or unreadable.
func (o *orchestrator) LoadGame(ctx context.Context, slot int) map[string]any {
	if !o.validSlot(slot) {
		slog.Warn("Refusing to load unknown slot", "slot", slot, "slots", o.slots)
		return map[string]any{}
	}

	out, err := o.repo.Load(ctx, saves.LoadInput{Slot: slot})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.Debug("Save slot is empty", "slot", slot)
		} else {
			slog.Error("Failed to load game", "slot", slot, "error", err)
		}
		return map[string]any{}
	}

	return out.Data
}

// ListSlots summarizes slots 1 through Slots in order
func (o *orchestrator) ListSlots(ctx context.Context) []SlotInfo {
	infos := make([]SlotInfo, 0, o.slots)

	for slot := 1; slot <= o.slots; slot++ {
		out, err := o.repo.Load(ctx, saves.LoadInput{Slot: slot})
		switch {
		case errors.IsNotFound(err):
			infos = append(infos, SlotInfo{Slot: slot, Empty: true})
		case err != nil:
			slog.Warn("Unreadable save slot", "slot", slot, "error", err)
			infos = append(infos, SlotInfo{Slot: slot, Error: corruptedSave})
		default:
			infos = append(infos, SlotInfo{
				Slot:       slot,
				LastSave:   stringOr(out.Data[KeySaveTime], unknown),
				PlayerName: stringOr(out.Data[keyPlayerName], unknown),
				Level:      intOr(out.Data[keyPlayerLevel], 1),
			})
		}
	}

	return infos
}

// DeleteSave empties a slot. Deleting an empty slot reports false.
func (o *orchestrator) DeleteSave(ctx context.Context, slot int) bool {
	if !o.validSlot(slot) {
		return false
	}

	if _, err := o.repo.Delete(ctx, saves.DeleteInput{Slot: slot}); err != nil {
		if !errors.IsNotFound(err) {
			slog.Error("Failed to delete save", "slot", slot, "error", err)
		}
		return false
	}

	slog.Info("Save deleted", "slot", slot)
	return true
}

func (o *orchestrator) validSlot(slot int) bool {
	return slot >= 1 && slot <= o.slots
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func intOr(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return fallback
}
