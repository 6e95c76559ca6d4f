package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitquest/internal/config"
	"github.com/sandeepkv93/habitquest/internal/game"
	"github.com/sandeepkv93/habitquest/internal/model"
	"github.com/sandeepkv93/habitquest/internal/scanner"
	"github.com/sandeepkv93/habitquest/internal/state"
	"github.com/sandeepkv93/habitquest/internal/storage"
	"github.com/sandeepkv93/habitquest/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitquest failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := storage.NewStore(cfg.DataFile)
	st := state.NewContainer()

	warning := ""
	tasks, habits, profile, err := store.Load()
	switch {
	case err == nil:
		st.Replace(tasks, habits, profile)
	case errors.Is(err, storage.ErrCorrupt):
		// A broken file never blocks the launch; the user starts over.
		st.Replace(tasks, habits, profile)
		warning = "state file was corrupt, starting fresh"
	default:
		st.Replace(nil, nil, model.DefaultProfile())
		warning = fmt.Sprintf("could not load state: %v", err)
	}

	engine := game.NewEngine(st, store)
	engine.AssignQuest()

	sc := scanner.New(st, cfg.ReminderInterval(), cfg.ReminderBuffer)
	sc.Start()
	defer sc.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithRuntime(engine, st, sc.C(), cfg.DesktopNotifications, notifier)
	m = m.WithStartupWarning(warning)

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
