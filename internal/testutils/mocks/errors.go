package mocks

import (
	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

func errUnexpectedAttack(input *engine.AttackInput) error {
	return errors.Internalf("unexpected attack by %s on %s", input.Attacker.Name, input.Defender.Name)
}

func errUnexpectedSlot(got, want int) error {
	return errors.Internalf("unexpected save to slot %d, want %d", got, want)
}
