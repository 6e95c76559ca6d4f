package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitquest/internal/commands"
	"github.com/sandeepkv93/habitquest/internal/game"
	"github.com/sandeepkv93/habitquest/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	var gameRes game.Result
	res, err := commands.Execute(cmd, commands.Handlers{
		AddTask: func(a commands.AddArgs) (commands.Result, error) {
			r, err := m.engine.AddTask(a.Description, a.Due)
			if err != nil {
				return commands.Result{}, err
			}
			gameRes = r
			m.CurrentView = ViewTasks
			m.Tasks.Cursor = len(m.state.Tasks()) - 1
			return commands.Result{Message: fmt.Sprintf("task added: %s", a.Description)}, nil
		},
		AddHabit: func(a commands.AddArgs) (commands.Result, error) {
			freq, err := model.ParseFrequency(a.Frequency)
			if err != nil {
				return commands.Result{}, err
			}
			r, err := m.engine.AddHabit(a.Description, freq, a.Goal)
			if err != nil {
				return commands.Result{}, err
			}
			gameRes = r
			m.CurrentView = ViewHabits
			m.Habits.Cursor = len(m.state.Habits()) - 1
			return commands.Result{Message: fmt.Sprintf("habit added: %s", a.Description)}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			var r game.Result
			var err error
			if d.Kind == commands.KindHabit {
				r, err = m.engine.ToggleHabit(d.Position - 1)
			} else {
				r, err = m.engine.ToggleTask(d.Position - 1)
			}
			if err != nil {
				return commands.Result{}, err
			}
			gameRes = r
			return commands.Result{Message: fmt.Sprintf("%s %d toggled", d.Kind, d.Position)}, nil
		},
		Profile: func(p commands.ProfileArgs) (commands.Result, error) {
			current := m.state.Profile()
			switch p.Field {
			case "name":
				r, err := m.engine.UpdateProfile(p.Value, current.BirthYear)
				if err != nil {
					return commands.Result{}, err
				}
				gameRes = r
			case "year":
				year, err := strconv.Atoi(p.Value)
				if err != nil {
					return commands.Result{}, &commands.CommandError{
						Code:    commands.ErrCodeInvalidArgument,
						Message: fmt.Sprintf("profile year requires a number, got %q", p.Value),
					}
				}
				r, err := m.engine.UpdateProfile(current.Name, year)
				if err != nil {
					return commands.Result{}, err
				}
				gameRes = r
			case "avatar":
				gameRes = m.engine.SetAvatarPath(p.Value)
			}
			m.CurrentView = ViewProfile
			return commands.Result{Message: fmt.Sprintf("profile %s updated", p.Field)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m = m.applyResult(gameRes, res.Message)
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
