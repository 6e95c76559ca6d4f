package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitquest/internal/scanner"
	"github.com/sandeepkv93/habitquest/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForReminderCmd(m.reminders)
}

// Update delegates to the single-exit update so the bubble components are
// resynced on the model actually returned to the runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()

		// While the palette or a quick-add input is capturing, every printable
		// key belongs to the text input. Only ctrl+c stays global, so a due
		// date full of digits or a q in a description cannot switch views or
		// quit the app.
		if m.Palette.Active {
			if keyStr == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed)
		}
		if m.captureActive() && keyStr != "ctrl+c" {
			return m.handleViewKey(typed)
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, m.commandInput.Focus()
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Habits:
			m.CurrentView = ViewHabits
			return m, nil
		case m.Keys.Profile:
			m.CurrentView = ViewProfile
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleViewKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewTasks {
				m.Tasks.CaptureMode = true
				return m, m.quickAddInput.Focus()
			}
			if typed.View == ViewHabits {
				m.Habits.CaptureMode = true
				return m, m.quickAddInput.Focus()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ReminderDueMsg:
		text := fmt.Sprintf("task due: %s (due %s)", typed.Reminder.Description, formatDay(typed.Reminder.DueDate))
		m.Status = StatusBar{Text: text, IsError: false}
		m.notify("Reminder", text, "info")
		if m.reminders != nil {
			return m, waitForReminderCmd(m.reminders)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleViewKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.CurrentView {
	case ViewTasks:
		return m.handleTasksKey(msg)
	case ViewHabits:
		return m.handleHabitsKey(msg)
	default:
		return m, nil
	}
}

func (m Model) captureActive() bool {
	return (m.CurrentView == ViewTasks && m.Tasks.CaptureMode) ||
		(m.CurrentView == ViewHabits && m.Habits.CaptureMode)
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	mainPane := ""
	switch m.CurrentView {
	case ViewTasks:
		mainPane = m.renderTasksView()
	case ViewHabits:
		mainPane = m.renderHabitsView()
	case ViewProfile:
		mainPane = m.renderProfileView()
	}
	if m.HelpVisible {
		mainPane += "\n\n" + m.renderHelpView()
	}

	profile := m.state.Profile()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("habitquest | view: %s | %s lvl %d", m.CurrentView, profile.Name, profile.Level),
		MainPane:     mainPane,
		StatusLine:   status,
		Palette:      views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s tasks | %s habits | %s profile | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Habits, m.Keys.Profile, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

func waitForReminderCmd(ch <-chan scanner.Reminder) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		rem, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Reminder: rem}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewTasks, ViewHabits, ViewProfile:
		return true
	default:
		return false
	}
}
