package entities

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Reward keys understood by Quest.Complete
const (
	RewardExperience = "experience"
	RewardGold       = "gold"
	RewardItem       = "item"
)

// ExperienceAwarder grants experience following the progression rules
type ExperienceAwarder interface {
	GainExperience(c *Combatant, amount int) int
}

// QuestObjective is one countable goal of a quest
type QuestObjective struct {
	Description string `json:"description"`
	Target      int    `json:"target"`
	Current     int    `json:"current"`
	Completed   bool   `json:"completed"`
}

// Quest tracks objectives and pays out rewards once all are met.
// Completed is true exactly when every objective has Current >= Target.
type Quest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Objectives  []QuestObjective `json:"objectives"`
	Rewards     map[string]any   `json:"rewards"`
	Completed   bool             `json:"completed"`

	rewarded bool
}

// NewQuest creates a quest. Objective progress is recomputed so a
// definition can't arrive pre-completed by accident.
func NewQuest(name, description string, objectives []QuestObjective, rewards map[string]any) *Quest {
	q := &Quest{
		Name:        name,
		Description: description,
		Objectives:  make([]QuestObjective, len(objectives)),
		Rewards:     rewards,
	}
	copy(q.Objectives, objectives)
	for i := range q.Objectives {
		q.Objectives[i].Completed = q.Objectives[i].Current >= q.Objectives[i].Target
	}
	q.refresh()
	return q
}

// LoadQuests decodes a JSON array of quest definitions
func LoadQuests(r io.Reader) ([]*Quest, error) {
	var defs []Quest
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode quest definitions")
	}

	quests := make([]*Quest, len(defs))
	for i, d := range defs {
		quests[i] = NewQuest(d.Name, d.Description, d.Objectives, d.Rewards)
	}
	return quests, nil
}

// UpdateObjective adds amount to an objective's progress. Returns false
// for an index outside the objective list.
func (q *Quest) UpdateObjective(index, amount int) bool {
	if index < 0 || index >= len(q.Objectives) {
		return false
	}

	obj := &q.Objectives[index]
	obj.Current += amount
	obj.Completed = obj.Current >= obj.Target
	q.refresh()
	return true
}

// Progress renders one "description: current/target" line per objective
func (q *Quest) Progress() string {
	lines := make([]string, len(q.Objectives))
	for i, obj := range q.Objectives {
		lines[i] = fmt.Sprintf("%s: %d/%d", obj.Description, obj.Current, obj.Target)
	}
	return strings.Join(lines, "\n")
}

// Complete pays the rewards to the combatant in reward key order. Does
// nothing until the quest is completed, and pays at most once.
func (q *Quest) Complete(c *Combatant, awarder ExperienceAwarder) bool {
	if !q.Completed || q.rewarded || c == nil {
		return false
	}

	for _, rewardType := range slices.Sorted(maps.Keys(q.Rewards)) {
		value := q.Rewards[rewardType]
		switch rewardType {
		case RewardExperience:
			if amount, ok := asInt(value); ok && awarder != nil {
				awarder.GainExperience(c, amount)
			}
		case RewardGold:
			if amount, ok := asInt(value); ok {
				if !c.AddItem(NewGold(amount)) {
					slog.Warn("No room for quest gold", "quest", q.Name, "amount", amount)
				}
			}
		case RewardItem:
			item, err := itemFromReward(value)
			if err != nil {
				slog.Warn("Skipping quest item reward", "quest", q.Name, "error", err)
				continue
			}
			if !c.AddItem(item) {
				slog.Warn("No room for quest item", "quest", q.Name, "item", item.Name)
			}
		default:
			slog.Debug("Ignoring unknown quest reward", "quest", q.Name, "reward", rewardType)
		}
	}

	q.rewarded = true
	return true
}

func (q *Quest) refresh() {
	for _, obj := range q.Objectives {
		if !obj.Completed {
			q.Completed = false
			return
		}
	}
	q.Completed = true
}

func itemFromReward(value any) (*Item, error) {
	switch v := value.(type) {
	case *Item:
		return v, nil
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode item reward")
		}
		var item Item
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid item reward")
		}
		if item.Name == "" {
			return nil, errors.InvalidArgument("item reward has no name")
		}
		return &item, nil
	default:
		return nil, errors.InvalidArgumentf("unsupported item reward %T", value)
	}
}

// asInt accepts the numeric shapes rewards arrive in, ints from code and
// float64 from decoded JSON.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

// DefaultQuest is the campaign quest, one objective per boss in roster
// order.
func DefaultQuest(bossNames ...string) *Quest {
	objectives := make([]QuestObjective, len(bossNames))
	for i, name := range bossNames {
		objectives[i] = QuestObjective{Description: "Defeat " + name, Target: 1}
	}

	return NewQuest(
		"Slay the Bosses",
		"Defeat every boss standing between you and victory",
		objectives,
		map[string]any{
			RewardExperience: 100,
			RewardGold:       50,
		},
	)
}
