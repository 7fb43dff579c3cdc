// Package dice implements the dice orchestrator behind the roll command
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-adventure/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// MaxDice caps the dice in a single roll
const MaxDice = 100

var (
	// Matches "2d6", "d20", "4d6+1", "1d8-2"
	diceNotationRegex = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)
	// Matches a bare die size, "20"
	dieSizeRegex = regexp.MustCompile(`^(\d+)$`)
)

// Service defines the interface for dice operations
type Service interface {
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Engine engine.Engine
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
	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine: cfg.Engine,
	}, nil
}

// ParseNotation parses dice notation like "2d6", "d20+1" or "6"
func ParseNotation(notation string) (*Notation, error) {
	clean := strings.ToLower(strings.ReplaceAll(notation, " ", ""))

	if m := dieSizeRegex.FindStringSubmatch(clean); m != nil {
		sides, _ := strconv.Atoi(m[1])
		return validNotation(notation, &Notation{Count: 1, Sides: sides})
	}

	m := diceNotationRegex.FindStringSubmatch(clean)
	if m == nil {
		return nil, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	parsed := &Notation{Count: 1}
	if m[1] != "" {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
		parsed.Count = count
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	parsed.Sides = sides

	if m[3] != "" {
		modifier, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
		parsed.Modifier = modifier
	}

	return validNotation(notation, parsed)
}

func validNotation(raw string, n *Notation) (*Notation, error) {
	if n.Count <= 0 || n.Sides <= 0 {
		return nil, errors.InvalidArgumentf("dice count and size must be positive: %s", raw)
	}
	if n.Count > MaxDice {
		return nil, errors.OutOfRangef("at most %d dice per roll, got %d", MaxDice, n.Count)
	}
	return n, nil
}

// String renders the notation in canonical form
func (n *Notation) String() string {
	switch {
	case n.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", n.Count, n.Sides, n.Modifier)
	case n.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", n.Count, n.Sides, n.Modifier)
	default:
		return fmt.Sprintf("%dd%d", n.Count, n.Sides)
	}
}

// Roll parses the notation and rolls it through the engine
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Notation) == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	notation, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}
	if input.DropLowest < 0 || input.DropLowest >= notation.Count {
		return nil, errors.InvalidArgumentf("cannot drop %d of %d dice", input.DropLowest, notation.Count)
	}

	rolled, err := o.engine.RollDice(ctx, &engine.RollDiceInput{
		Sides: notation.Sides,
		Count: notation.Count,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", notation)
	}

	kept, dropped := dropLowest(rolled.Rolls, input.DropLowest)

	roll := &Roll{
		Notation: notation.String(),
		Dice:     kept,
		Dropped:  dropped,
		Modifier: notation.Modifier,
		Total:    notation.Modifier,
	}
	for _, d := range kept {
		roll.Total += d
	}

	slog.Debug("Dice rolled",
		"notation", roll.Notation,
		"dice", roll.Dice,
		"dropped", roll.Dropped,
		"total", roll.Total,
	)

	return &RollOutput{Roll: roll}, nil
}

// dropLowest splits rolls into the kept dice, in roll order, and the n
// lowest dice, lowest first.
func dropLowest(rolls []int, n int) (kept, dropped []int) {
	if n <= 0 {
		return rolls, nil
	}

	idx := make([]int, len(rolls))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return rolls[idx[a]] < rolls[idx[b]] })

	drop := make(map[int]bool, n)
	for _, i := range idx[:n] {
		drop[i] = true
		dropped = append(dropped, rolls[i])
	}
	for i, r := range rolls {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	return kept, dropped
}
