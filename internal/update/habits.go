package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitquest/internal/model"
)

func (m Model) handleHabitsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Habits.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Habits.CaptureMode = false
			m.quickAddInput.Blur()
			m.Status = StatusBar{Text: "habit list mode", IsError: false}
			return m, nil
		case "enter":
			m = m.quickAddHabit(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			m.Habits.Input = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		m.Habits.Input = m.quickAddInput.Value()
		return m, cmd
	}

	switch msg.String() {
	case "i", "enter":
		m.Habits.CaptureMode = true
		m.Status = StatusBar{Text: "habit capture mode", IsError: false}
		return m, m.quickAddInput.Focus()
	case "up", "k":
		if m.Habits.Cursor > 0 {
			m.Habits.Cursor--
		}
	case "down", "j":
		if m.Habits.Cursor < len(m.state.Habits())-1 {
			m.Habits.Cursor++
		}
	case " ":
		m = m.toggleHabitAtCursor()
	default:
		if msg.Type == tea.KeyRunes {
			m.Habits.CaptureMode = true
			focusCmd := m.quickAddInput.Focus()
			m.quickAddInput.SetValue("")
			var cmd tea.Cmd
			m.quickAddInput, cmd = m.quickAddInput.Update(msg)
			m.Habits.Input = m.quickAddInput.Value()
			return m, tea.Batch(focusCmd, cmd)
		}
	}
	return m, nil
}

// quickAddHabit accepts "<description> freq:daily|weekly|monthly [goal:<text>]".
func (m Model) quickAddHabit(line string) Model {
	args, err := parseQuickAdd("habit", line)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	freq, err := model.ParseFrequency(args.Frequency)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	res, err := m.engine.AddHabit(args.Description, freq, args.Goal)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Habits.Cursor = len(m.state.Habits()) - 1
	return m.applyResult(res, "habit added: "+args.Description)
}

func (m Model) toggleHabitAtCursor() Model {
	res, err := m.engine.ToggleHabit(m.Habits.Cursor)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	return m.applyResult(res, "habit toggled for today")
}
