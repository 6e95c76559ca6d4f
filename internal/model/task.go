package model

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDescription = errors.New("model: description is required")

// Task is identified by its position in the owning list. There is no stable ID
// and no delete operation; a task disappears only by being absent from a
// reload.
type Task struct {
	Description string
	DueDate     time.Time
	Completed   bool
}

func NewTask(description, dueDate string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}
	due, err := ParseDate(dueDate)
	if err != nil {
		return Task{}, err
	}
	return Task{Description: description, DueDate: due}, nil
}

// DueBy reports whether the task is due on or before the given day.
func (t Task) DueBy(day time.Time) bool {
	return !t.DueDate.After(Day(day))
}
