package update

import (
	"time"

	"github.com/sandeepkv93/habitquest/internal/game"
	"github.com/sandeepkv93/habitquest/internal/model"
	"github.com/sandeepkv93/habitquest/internal/views"
)

func (m Model) renderTasksView() string {
	now := time.Now()
	tasks := m.state.Tasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, views.TaskItemData{
			Position:    i + 1,
			Description: t.Description,
			DueDate:     formatDay(t.DueDate),
			Completed:   t.Completed,
			Overdue:     t.DueDate.Before(model.Day(now)),
		})
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		QuickAddView: m.quickAddInput.View(),
		ListView:     m.taskList.View(),
		Items:        items,
		Selected:     m.Tasks.Cursor + 1,
	})
}

func (m Model) renderHabitsView() string {
	now := time.Now()
	habits := m.state.Habits()
	items := make([]views.HabitItemData, 0, len(habits))
	for i, h := range habits {
		items = append(items, views.HabitItemData{
			Position:    i + 1,
			Description: h.Description,
			Frequency:   string(h.Frequency),
			Goal:        h.Goal,
			DoneToday:   h.DoneOn(now),
		})
	}
	return views.RenderHabitsPanel(views.HabitsPanelData{
		QuickAddView: m.quickAddInput.View(),
		ListView:     m.habitList.View(),
		Items:        items,
		Selected:     m.Habits.Cursor + 1,
	})
}

func (m Model) renderProfileView() string {
	profile := m.state.Profile()
	threshold := game.LevelUpThreshold(profile.Level)
	pct := 0.0
	if threshold > 0 {
		pct = float64(profile.Experience) / float64(threshold)
	}
	if pct > 1 {
		pct = 1
	}

	var questData *views.QuestData
	if quest, active := m.state.ActiveQuest(); active {
		questData = &views.QuestData{
			Description: quest.Description,
			Progress:    m.questProgress(quest),
			Amount:      quest.Amount,
			Reward:      quest.Reward,
		}
	}

	return views.RenderProfilePanel(views.ProfilePanelData{
		Name:            profile.Name,
		Level:           profile.Level,
		Experience:      profile.Experience,
		NextThreshold:   threshold,
		ProgressView:    m.xpProgress.ViewAs(pct),
		QuestsCompleted: profile.QuestsCompleted,
		BirthYear:       profile.BirthYear,
		AvatarPath:      profile.AvatarPath,
		ActiveQuest:     questData,
	})
}

func (m Model) questProgress(quest model.Quest) int {
	switch quest.Type {
	case model.QuestCompleteTasks:
		return m.state.CompletedTaskCount()
	case model.QuestCompleteHabits:
		if m.state.AnyHabitDoneOn(time.Now()) {
			return 1
		}
	}
	return 0
}
