// Package combatlog writes a timestamped, human readable account of
// combat to the console by listening on the event bus.
package combatlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
)

const timestampLayout = "15:04:05"

// Config holds the dependencies for a combat log
type Config struct {
	EventBus events.EventBus
	Writer   io.Writer
	Clock    clock.Clock
}

// Validate ensures all dependencies are set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Writer == nil {
		vb.RequiredField("Writer")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Logger renders combat events as log lines
type Logger struct {
	mu     sync.Mutex
	bus    events.EventBus
	writer io.Writer
	clock  clock.Clock
	subs   []string
}

// New creates a combat log subscribed to every event it knows how to
// render. Call Close to detach it.
func New(cfg *Config) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	l := &Logger{
		bus:    cfg.EventBus,
		writer: cfg.Writer,
		clock:  cfg.Clock,
	}

	l.subs = append(l.subs,
		l.bus.SubscribeFunc(engine.EventAttack, 0, l.onAttack),
		l.bus.SubscribeFunc(engine.EventSpecialAttack, 0, l.onSpecialAttack),
		l.bus.SubscribeFunc(engine.EventLevelUp, 0, l.onLevelUp),
		l.bus.SubscribeFunc(engine.EventStateChanged, 0, l.onStateChanged),
	)

	return l, nil
}

// Log writes a single timestamped line
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.clock.Now().Format(timestampLayout)
	if _, err := fmt.Fprintf(l.writer, "[%s] %s\n", ts, message); err != nil {
		slog.Warn("Failed to write combat log", "error", err)
	}
}

// Close unsubscribes from the event bus
func (l *Logger) Close() error {
	for _, id := range l.subs {
		if err := l.bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	l.subs = nil
	return nil
}

func (l *Logger) onAttack(_ context.Context, e events.Event) error {
	damage := intFromContext(e, engine.ContextKeyDamage)
	if critical, ok := e.Context().Get(engine.ContextKeyCritical); ok && critical == true {
		l.Log(fmt.Sprintf("%s landed a critical hit on %s for %d damage", nameOf(e.Source()), nameOf(e.Target()), damage))
		return nil
	}

	l.Log(fmt.Sprintf("%s attacked %s for %d damage", nameOf(e.Source()), nameOf(e.Target()), damage))
	return nil
}

func (l *Logger) onSpecialAttack(_ context.Context, e events.Event) error {
	damage := intFromContext(e, engine.ContextKeyDamage)
	l.Log(fmt.Sprintf("%s used a special attack on %s for %d damage", nameOf(e.Source()), nameOf(e.Target()), damage))
	return nil
}

func (l *Logger) onLevelUp(_ context.Context, e events.Event) error {
	level := intFromContext(e, engine.ContextKeyLevel)
	l.Log(fmt.Sprintf("%s reached level %d", nameOf(e.Source()), level))
	return nil
}

func (l *Logger) onStateChanged(_ context.Context, e events.Event) error {
	state, _ := e.Context().Get(engine.ContextKeyState)
	l.Log(fmt.Sprintf("Game state changed to %v", state))
	return nil
}

func intFromContext(e events.Event, key string) int {
	v, ok := e.Context().Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

func nameOf(entity core.Entity) string {
	if entity == nil {
		return "someone"
	}
	if c, ok := entity.(*entities.Combatant); ok {
		return c.Name
	}
	return entity.GetID()
}
