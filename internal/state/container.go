package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sandeepkv93/habitquest/internal/model"
)

var ErrIndexOutOfRange = errors.New("state: index out of range")

// Container owns the shared mutable collections. The update loop mutates them
// and the reminder scanner reads them from a second goroutine, so every access
// goes through the mutex and readers always get copies rather than live
// slices.
type Container struct {
	mu          sync.Mutex
	tasks       []model.Task
	habits      []model.Habit
	profile     model.UserProfile
	activeQuest *model.Quest
}

func NewContainer() *Container {
	return &Container{profile: model.DefaultProfile()}
}

// Replace swaps in a freshly loaded state wholesale. The active quest is not
// persisted, so it is left untouched.
func (c *Container) Replace(tasks []model.Task, habits []model.Habit, profile model.UserProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append([]model.Task(nil), tasks...)
	c.habits = cloneHabits(habits)
	c.profile = profile
}

func (c *Container) AddTask(t model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append(c.tasks, t)
}

func (c *Container) AddHabit(h model.Habit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.habits = append(c.habits, h)
}

// ToggleTask flips completion for the task at index and returns its new state.
func (c *Container) ToggleTask(index int) (model.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.tasks) {
		return model.Task{}, fmt.Errorf("%w: task %d", ErrIndexOutOfRange, index)
	}
	c.tasks[index].Completed = !c.tasks[index].Completed
	return c.tasks[index], nil
}

// ToggleHabit flips today's completion mark for the habit at index and reports
// whether the habit is now done today.
func (c *Container) ToggleHabit(index int, now time.Time) (model.Habit, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.habits) {
		return model.Habit{}, false, fmt.Errorf("%w: habit %d", ErrIndexOutOfRange, index)
	}
	done := c.habits[index].ToggleToday(now)
	return cloneHabit(c.habits[index]), done, nil
}

// Tasks returns a snapshot copy of the task list.
func (c *Container) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Task(nil), c.tasks...)
}

// Habits returns a snapshot copy of the habit list, including the date sets.
func (c *Container) Habits() []model.Habit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneHabits(c.habits)
}

func (c *Container) Profile() model.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// UpdateProfile applies fn to the profile under the lock and returns the
// resulting copy.
func (c *Container) UpdateProfile(fn func(*model.UserProfile)) model.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.profile)
	return c.profile
}

func (c *Container) ActiveQuest() (model.Quest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeQuest == nil {
		return model.Quest{}, false
	}
	return *c.activeQuest, true
}

func (c *Container) SetActiveQuest(q model.Quest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeQuest = &q
}

func (c *Container) ClearActiveQuest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeQuest = nil
}

// CompletedTaskCount counts completed tasks across the entire list.
func (c *Container) CompletedTaskCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, t := range c.tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

// AnyHabitDoneOn reports whether any habit was marked done on the given day.
func (c *Container) AnyHabitDoneOn(day time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range c.habits {
		if h.DoneOn(day) {
			return true
		}
	}
	return false
}

func cloneHabit(h model.Habit) model.Habit {
	out := h
	out.CompletedDates = make(map[string]bool, len(h.CompletedDates))
	for k, v := range h.CompletedDates {
		out.CompletedDates[k] = v
	}
	return out
}

func cloneHabits(habits []model.Habit) []model.Habit {
	out := make([]model.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, cloneHabit(h))
	}
	return out
}
