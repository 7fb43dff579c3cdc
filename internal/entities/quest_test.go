package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/entities"
)

type fakeAwarder struct {
	total int
}

func (f *fakeAwarder) GainExperience(c *entities.Combatant, amount int) int {
	f.total += amount
	c.Experience += amount
	return 0
}

type QuestTestSuite struct {
	suite.Suite
	hero *entities.Combatant
}

func TestQuestSuite(t *testing.T) {
	suite.Run(t, new(QuestTestSuite))
}

func (s *QuestTestSuite) SetupTest() {
	hero, err := entities.NewCombatant(&entities.CombatantConfig{
		Name:   "Hero",
		Kind:   entities.KindPlayer,
		Health: 100,
		Damage: 10,
	})
	s.Require().NoError(err)
	s.hero = hero
}

func (s *QuestTestSuite) TestUpdateObjective() {
	q := entities.NewQuest("Hunt", "Hunt things", []entities.QuestObjective{
		{Description: "Wolves slain", Target: 2},
		{Description: "Pelts collected", Target: 1},
	}, nil)

	s.False(q.UpdateObjective(5, 1))
	s.False(q.UpdateObjective(-1, 1))

	s.True(q.UpdateObjective(0, 2))
	s.True(q.Objectives[0].Completed)
	s.False(q.Completed)

	s.True(q.UpdateObjective(1, 1))
	s.True(q.Completed)
	s.Equal("Wolves slain: 2/2\nPelts collected: 1/1", q.Progress())
}

func (s *QuestTestSuite) TestCompleteRequiresCompletion() {
	awarder := &fakeAwarder{}
	q := entities.DefaultQuest("Goblin King", "Dark Sorcerer")

	s.False(q.Complete(s.hero, awarder))
	s.Equal(0, awarder.total)
}

func (s *QuestTestSuite) TestDefaultQuestTracksEachBoss() {
	q := entities.DefaultQuest("Goblin King", "Dark Sorcerer")

	s.Require().Len(q.Objectives, 2)
	s.Equal("Defeat Goblin King: 0/1\nDefeat Dark Sorcerer: 0/1", q.Progress())

	s.True(q.UpdateObjective(0, 1))
	s.False(q.Completed)
	s.Equal("Defeat Goblin King: 1/1\nDefeat Dark Sorcerer: 0/1", q.Progress())

	s.True(q.UpdateObjective(1, 1))
	s.True(q.Completed)
}

func (s *QuestTestSuite) TestCompletePaysInKeyOrder() {
	for range 20 {
		hero, err := entities.NewCombatant(&entities.CombatantConfig{
			Name:           "Hero",
			Kind:           entities.KindPlayer,
			Health:         100,
			Damage:         10,
			InventorySlots: 1,
		})
		s.Require().NoError(err)

		q := entities.NewQuest("Fetch", "Fetch the relic", nil, map[string]any{
			entities.RewardItem:       map[string]any{"name": "Ancient Relic", "item_type": "KEY_ITEM"},
			entities.RewardGold:       10,
			entities.RewardExperience: 5,
		})

		s.Require().True(q.Complete(hero, &fakeAwarder{}))
		s.Require().Equal(1, hero.Inventory.Len())
		s.Equal("Gold", hero.Inventory.Items()[0].Name)
		s.Equal(5, hero.Experience)
	}
}

func (s *QuestTestSuite) TestCompletePaysRewardsOnce() {
	awarder := &fakeAwarder{}
	q := entities.NewQuest("Fetch", "Fetch the relic", []entities.QuestObjective{
		{Description: "Relic found", Target: 1},
	}, map[string]any{
		entities.RewardExperience: 100,
		entities.RewardGold:       float64(50),
		entities.RewardItem: map[string]any{
			"name":        "Ancient Relic",
			"description": "Hums faintly",
			"item_type":   "KEY_ITEM",
		},
	})
	q.UpdateObjective(0, 1)

	s.True(q.Complete(s.hero, awarder))
	s.Equal(100, awarder.total)
	s.Require().Equal(2, s.hero.Inventory.Len())

	var names []string
	for _, item := range s.hero.Inventory.Items() {
		names = append(names, item.Name)
		if item.Type == entities.ItemTypeGold {
			s.Equal("50 gold coins", item.Description)
		}
	}
	s.ElementsMatch([]string{"Gold", "Ancient Relic"}, names)

	s.False(q.Complete(s.hero, awarder))
	s.Equal(100, awarder.total)
}

func (s *QuestTestSuite) TestLoadQuests() {
	doc := `[{"name":"Scout","description":"Look around","objectives":[{"description":"Rooms","target":3,"current":3}],"rewards":{"gold":5}}]`

	quests, err := entities.LoadQuests(strings.NewReader(doc))
	s.Require().NoError(err)
	s.Require().Len(quests, 1)
	s.True(quests[0].Completed)

	_, err = entities.LoadQuests(strings.NewReader("{"))
	s.Error(err)
}
