package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Tasks.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Tasks.CaptureMode = false
			m.quickAddInput.Blur()
			m.Status = StatusBar{Text: "task list mode", IsError: false}
			return m, nil
		case "enter":
			m = m.quickAddTask(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			m.Tasks.Input = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		m.Tasks.Input = m.quickAddInput.Value()
		return m, cmd
	}

	switch msg.String() {
	case "i", "enter":
		m.Tasks.CaptureMode = true
		m.Status = StatusBar{Text: "task capture mode", IsError: false}
		return m, m.quickAddInput.Focus()
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.state.Tasks())-1 {
			m.Tasks.Cursor++
		}
	case " ":
		m = m.toggleTaskAtCursor()
	default:
		if msg.Type == tea.KeyRunes {
			m.Tasks.CaptureMode = true
			focusCmd := m.quickAddInput.Focus()
			m.quickAddInput.SetValue("")
			var cmd tea.Cmd
			m.quickAddInput, cmd = m.quickAddInput.Update(msg)
			m.Tasks.Input = m.quickAddInput.Value()
			return m, tea.Batch(focusCmd, cmd)
		}
	}
	return m, nil
}

// quickAddTask accepts the same grammar as the palette's add command, without
// the leading verb: "<description> due:YYYY-MM-DD".
func (m Model) quickAddTask(line string) Model {
	args, err := parseQuickAdd("task", line)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	res, err := m.engine.AddTask(args.Description, args.Due)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Tasks.Cursor = len(m.state.Tasks()) - 1
	return m.applyResult(res, "task added: "+args.Description)
}

func (m Model) toggleTaskAtCursor() Model {
	res, err := m.engine.ToggleTask(m.Tasks.Cursor)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	return m.applyResult(res, "task toggled")
}
