// Package errors provides the structured error type used across
// rpg-adventure.
//
// Errors carry a Code, a player-facing Message, an optional Cause, and
// free-form metadata:
//
//	err := errors.NotFoundf("save slot %d is empty", slot).
//	    WithMeta("slot", slot)
//
// Wrapping keeps the original code unless a new one is given:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load game")
//	}
//
// Component configs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("max_slots", cfg.MaxSlots, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines:
//   - Repositories return NotFound for empty slots and DataLoss for
//     documents that no longer decode.
//   - Orchestrators validate inputs (InvalidArgument) and state
//     (FailedPrecondition).
//   - The save facade and the console loop log errors and fall back to
//     defaults instead of propagating them.
package errors
