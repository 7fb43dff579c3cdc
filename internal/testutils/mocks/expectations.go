// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-adventure/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-adventure/internal/engine/mock"
	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	savegamemock "github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame/mock"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
	savesmock "github.com/KirkDiggler/rpg-adventure/internal/repositories/saves/mock"
)

// ExpectAttack sets up one attack by attacker on defender that applies
// damage the way the engine does.
func ExpectAttack(
	ctx context.Context, mockEngine *enginemock.MockEngine,
	attacker, defender *entities.Combatant, damage int, critical bool,
) *gomock.Call {
	return mockEngine.EXPECT().
		Attack(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.AttackInput) (*engine.AttackOutput, error) {
			if input.Attacker != attacker || input.Defender != defender {
				return nil, errUnexpectedAttack(input)
			}
			dealt := defender.TakeDamage(damage)
			return &engine.AttackOutput{
				Damage:           dealt,
				BaseDamage:       dealt,
				Critical:         critical,
				DefenderDefeated: !defender.IsAlive(),
			}, nil
		})
}

// ExpectAutosave sets up times successful saves to slot and returns the
// call for further tuning.
func ExpectAutosave(ctx context.Context, mockSaves *savegamemock.MockService, slot, times int) *gomock.Call {
	return mockSaves.EXPECT().
		SaveGame(ctx, gomock.Any(), slot).
		Return(true).
		Times(times)
}

// ExpectSlotLoad sets up a repository load of slot
func ExpectSlotLoad(
	ctx context.Context, mockRepo *savesmock.MockRepository,
	slot int, data map[string]any, err error,
) *gomock.Call {
	call := mockRepo.EXPECT().Load(ctx, saves.LoadInput{Slot: slot})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&saves.LoadOutput{Data: data}, nil)
}

// ExpectSlotSave sets up a repository save of slot that records the
// stored document in captured when it is non-nil.
func ExpectSlotSave(
	ctx context.Context, mockRepo *savesmock.MockRepository,
	slot int, captured *map[string]any,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input saves.SaveInput) (*saves.SaveOutput, error) {
			if input.Slot != slot {
				return nil, errUnexpectedSlot(input.Slot, slot)
			}
			if captured != nil {
				*captured = input.Data
			}
			return &saves.SaveOutput{Location: "mock"}, nil
		})
}
