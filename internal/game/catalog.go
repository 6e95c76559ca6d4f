package game

import "github.com/sandeepkv93/habitquest/internal/model"

// DefaultCatalog returns the static quest catalog. Quests are assigned by
// uniform random draw and completed against the full task and habit lists.
func DefaultCatalog() []model.Quest {
	return []model.Quest{
		{
			Type:        model.QuestCompleteTasks,
			Description: "Complete 3 tasks",
			Amount:      3,
			Reward:      50,
		},
		{
			Type:        model.QuestCompleteHabits,
			Description: "Mark at least one habit done today",
			Amount:      1,
			Reward:      30,
		},
	}
}
