package savegame_test

import (
	"context"
	"maps"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame"
	mockclock "github.com/KirkDiggler/rpg-adventure/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
	savesmock "github.com/KirkDiggler/rpg-adventure/internal/repositories/saves/mock"
	"github.com/KirkDiggler/rpg-adventure/internal/testutils"
	"github.com/KirkDiggler/rpg-adventure/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *savesmock.MockRepository
	mockClock *mockclock.MockClock
	service   savegame.Service
	ctx       context.Context
	now       time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = savesmock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 14, 3, 9, 0, time.UTC)

	service, err := savegame.NewOrchestrator(&savegame.Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := savegame.NewOrchestrator(&savegame.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Repository")

	s.Equal(savegame.DefaultSlots, s.service.Slots())
}

func (s *OrchestratorTestSuite) TestSaveGame() {
	s.Run("injects save time without touching the caller's map", func() {
		state := map[string]any{"player_name": "Arthur"}

		s.mockClock.EXPECT().Now().Return(s.now)
		s.mockRepo.EXPECT().
			Save(s.ctx, saves.SaveInput{
				Slot: 1,
				Data: map[string]any{
					"player_name": "Arthur",
					"save_time":   "2024-05-01T14:03:09Z",
				},
			}).
			Return(&saves.SaveOutput{Location: "saves/save_1.json"}, nil)

		s.True(s.service.SaveGame(s.ctx, state, 1))
		s.NotContains(state, savegame.KeySaveTime)
	})

	s.Run("stores a copy with every caller key", func() {
		var stored map[string]any
		state := testutils.CreateTestSaveState()

		s.mockClock.EXPECT().Now().Return(s.now)
		mocks.ExpectSlotSave(s.ctx, s.mockRepo, 3, &stored)

		s.True(s.service.SaveGame(s.ctx, state, 3))
		s.Len(stored, len(state)+1)
		for key, value := range state {
			s.Equal(value, stored[key], key)
		}
	})

	s.Run("storage failure returns false", func() {
		s.mockClock.EXPECT().Now().Return(s.now)
		s.mockRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("disk full"))

		s.False(s.service.SaveGame(s.ctx, map[string]any{}, 2))
	})

	s.Run("slot out of range never reaches storage", func() {
		s.False(s.service.SaveGame(s.ctx, map[string]any{}, 4))
		s.False(s.service.SaveGame(s.ctx, map[string]any{}, 0))
	})
}

func (s *OrchestratorTestSuite) TestLoadGame() {
	s.Run("returns stored state", func() {
		mocks.ExpectSlotLoad(s.ctx, s.mockRepo, 1, map[string]any{"player_name": "Arthur"}, nil)

		s.Equal(map[string]any{"player_name": "Arthur"}, s.service.LoadGame(s.ctx, 1))
	})

	s.Run("empty slot gives empty state", func() {
		mocks.ExpectSlotLoad(s.ctx, s.mockRepo, 2, nil, errors.NotFound("save slot 2 is empty"))

		s.Empty(s.service.LoadGame(s.ctx, 2))
	})

	s.Run("corrupt slot gives empty state", func() {
		mocks.ExpectSlotLoad(s.ctx, s.mockRepo, 3, nil, errors.DataLossf("save slot %d is corrupted", 3))

		state := s.service.LoadGame(s.ctx, 3)
		s.NotNil(state)
		s.Empty(state)
	})
}

func (s *OrchestratorTestSuite) TestListSlots() {
	s.mockRepo.EXPECT().
		Load(s.ctx, saves.LoadInput{Slot: 1}).
		Return(&saves.LoadOutput{Data: map[string]any{
			"player_name":  "Arthur",
			"player_level": float64(3),
			"save_time":    "2024-05-01T14:03:09Z",
		}}, nil)
	s.mockRepo.EXPECT().
		Load(s.ctx, saves.LoadInput{Slot: 2}).
		Return(nil, errors.NotFound("save slot 2 is empty"))
	s.mockRepo.EXPECT().
		Load(s.ctx, saves.LoadInput{Slot: 3}).
		Return(nil, errors.DataLossf("save slot %d is corrupted", 3))

	s.Equal([]savegame.SlotInfo{
		{Slot: 1, LastSave: "2024-05-01T14:03:09Z", PlayerName: "Arthur", Level: 3},
		{Slot: 2, Empty: true},
		{Slot: 3, Error: "Corrupted save"},
	}, s.service.ListSlots(s.ctx))
}

func (s *OrchestratorTestSuite) TestListSlotsDefaults() {
	s.mockRepo.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(&saves.LoadOutput{Data: map[string]any{}}, nil).
		Times(3)

	for _, info := range s.service.ListSlots(s.ctx) {
		s.Equal("Unknown", info.PlayerName)
		s.Equal("Unknown", info.LastSave)
		s.Equal(1, info.Level)
	}
}

func (s *OrchestratorTestSuite) TestDeleteSave() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, saves.DeleteInput{Slot: 1}).
		Return(&saves.DeleteOutput{}, nil)
	s.True(s.service.DeleteSave(s.ctx, 1))

	s.mockRepo.EXPECT().
		Delete(s.ctx, saves.DeleteInput{Slot: 2}).
		Return(nil, errors.NotFound("save slot 2 is empty"))
	s.False(s.service.DeleteSave(s.ctx, 2))
}

// TestRoundTripWithFiles checks the facade against real file storage
func TestRoundTripWithFiles(t *testing.T) {
	repo, err := saves.NewFile(&saves.FileConfig{Dir: filepath.Join(t.TempDir(), "saves")})
	if err != nil {
		t.Fatal(err)
	}

	ctrl := gomock.NewController(t)
	clk := mockclock.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(time.Date(2024, 5, 1, 14, 3, 9, 0, time.UTC))

	service, err := savegame.NewOrchestrator(&savegame.Config{Repository: repo, Clock: clk})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	state := testutils.CreateTestSaveState()
	state["gold"] = 9007199254740993
	if !service.SaveGame(ctx, state, 1) {
		t.Fatal("save failed")
	}

	loaded := service.LoadGame(ctx, 1)

	want := maps.Clone(state)
	want[savegame.KeySaveTime] = "2024-05-01T14:03:09Z"
	assert.Equal(t, want, loaded)
	assert.Equal(t, 2, loaded["player_level"])
	assert.Equal(t, 9007199254740993, loaded["gold"])
}
