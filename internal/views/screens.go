package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	Position    int
	Description string
	DueDate     string
	Completed   bool
	Overdue     bool
}

type TasksPanelData struct {
	QuickAddView string
	ListView     string
	Items        []TaskItemData
	Selected     int
}

type HabitItemData struct {
	Position    int
	Description string
	Frequency   string
	Goal        string
	DoneToday   bool
}

type HabitsPanelData struct {
	QuickAddView string
	ListView     string
	Items        []HabitItemData
	Selected     int
}

type QuestData struct {
	Description string
	Progress    int
	Amount      int
	Reward      int
}

type ProfilePanelData struct {
	Name            string
	Level           int
	Experience      int
	NextThreshold   int
	ProgressView    string
	QuestsCompleted int
	BirthYear       int
	AvatarPath      string
	ActiveQuest     *QuestData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [enter]add [space]toggle [j/k]move [1]tasks [2]habits [3]profile\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("  (no tasks yet, type a description and due:YYYY-MM-DD)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.Selected == item.Position {
			cursor = ">"
		}
		box := "[ ]"
		if item.Completed {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %d. %s due:%s", cursor, box, item.Position, item.Description, item.DueDate))
		if item.Overdue && !item.Completed {
			b.WriteString(" OVERDUE")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderHabitsPanel(data HabitsPanelData) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [enter]add [space]toggle-today [j/k]move [1]tasks [2]habits [3]profile\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("  (no habits yet, type a description and freq:daily|weekly|monthly)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.Selected == item.Position {
			cursor = ">"
		}
		mark := "[ ]"
		if item.DoneToday {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %d. %s (%s)", cursor, mark, item.Position, item.Description, item.Frequency))
		if item.Goal != "" {
			b.WriteString(" goal: " + item.Goal)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderProfilePanel(data ProfilePanelData) string {
	var b strings.Builder
	b.WriteString("profile:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	b.WriteString(fmt.Sprintf("level: %d\n", data.Level))
	b.WriteString(fmt.Sprintf("experience: %d / %d %s\n", data.Experience, data.NextThreshold, data.ProgressView))
	b.WriteString(fmt.Sprintf("quests completed: %d\n", data.QuestsCompleted))
	if data.BirthYear > 0 {
		b.WriteString(fmt.Sprintf("birth year: %d\n", data.BirthYear))
	}
	if data.AvatarPath != "" {
		b.WriteString(fmt.Sprintf("avatar: %s\n", data.AvatarPath))
	}
	if data.ActiveQuest != nil {
		b.WriteString(RenderMarkdown(questMarkdown(*data.ActiveQuest)) + "\n")
	} else {
		b.WriteString("quest: (none active)\n")
	}
	b.WriteString("actions: [1]tasks [2]habits [3]profile [/]command")
	return strings.TrimSpace(b.String())
}

func questMarkdown(q QuestData) string {
	return fmt.Sprintf("## Active Quest\n\n**%s**\n\nProgress: %d/%d · Reward: %d XP",
		q.Description, q.Progress, q.Amount, q.Reward)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}
