package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/habitquest/internal/game"
	"github.com/sandeepkv93/habitquest/internal/scanner"
	"github.com/sandeepkv93/habitquest/internal/state"
)

type View string

const (
	ViewTasks   View = "Tasks"
	ViewHabits  View = "Habits"
	ViewProfile View = "Profile"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks   string
	Habits  string
	Profile string
	Help    string
	Quit    string
}

type TasksState struct {
	Input       string
	Cursor      int
	CaptureMode bool
}

type HabitsState struct {
	Input       string
	Cursor      int
	CaptureMode bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Tasks          TasksState
	Habits         HabitsState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	engine    *game.Engine
	state     *state.Container
	reminders <-chan scanner.Reminder

	// Bubble components used for rich TUI controls
	taskList      list.Model
	habitList     list.Model
	quickAddInput textinput.Model
	commandInput  textinput.Model
	xpProgress    progress.Model
	helpModel     help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Reminder scanner.Reminder
}

func NewModel(engine *game.Engine, st *state.Container) Model {
	m := Model{
		CurrentView: ViewTasks,
		notifier:    NoopDesktopNotifier{},
		engine:      engine,
		state:       st,
		Keys: GlobalKeyMap{
			Tasks:   "1",
			Habits:  "2",
			Profile: "3",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(engine *game.Engine, st *state.Container, reminders <-chan scanner.Reminder, desktopEnabled bool, notifier DesktopNotifier) Model {
	m := NewModel(engine, st)
	m.reminders = reminders
	m.DesktopEnabled = desktopEnabled
	if notifier != nil {
		m.notifier = notifier
	}
	return m
}

// WithStartupWarning surfaces a load problem on the first frame instead of
// failing the launch.
func (m Model) WithStartupWarning(text string) Model {
	if text == "" {
		return m
	}
	m.Status = StatusBar{Text: text, IsError: true}
	m.notify("Startup", text, "error")
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 66, 12)
	m.taskList.Title = "Tasks (list)"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.habitList = list.New([]list.Item{}, list.NewDefaultDelegate(), 66, 12)
	m.habitList.Title = "Habits (list)"
	m.habitList.SetShowHelp(false)
	m.habitList.SetFilteringEnabled(false)

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.xpProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	tasks := m.state.Tasks()
	taskItems := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		taskItems = append(taskItems, listItem{title: t.Description, description: "due " + formatDay(t.DueDate)})
	}
	m.taskList.SetItems(taskItems)
	if len(taskItems) > 0 && m.Tasks.Cursor < len(taskItems) {
		m.taskList.Select(m.Tasks.Cursor)
	}

	habits := m.state.Habits()
	habitItems := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		habitItems = append(habitItems, listItem{title: h.Description, description: string(h.Frequency)})
	}
	m.habitList.SetItems(habitItems)
	if len(habitItems) > 0 && m.Habits.Cursor < len(habitItems) {
		m.habitList.Select(m.Habits.Cursor)
	}

	switch m.CurrentView {
	case ViewTasks:
		m.quickAddInput.SetValue(m.Tasks.Input)
		if m.Tasks.CaptureMode {
			m.quickAddInput.Focus()
		}
	case ViewHabits:
		m.quickAddInput.SetValue(m.Habits.Input)
		if m.Habits.CaptureMode {
			m.quickAddInput.Focus()
		}
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}
