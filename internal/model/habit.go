package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidFrequency = errors.New("model: invalid habit frequency")

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, input)
	}
	return f, nil
}

// Habit tracks the set of calendar days it was marked done. Frequency is
// stored but does not gate reminders.
type Habit struct {
	Description    string
	Frequency      Frequency
	Goal           string
	CompletedDates map[string]bool
}

func NewHabit(description string, frequency Frequency, goal string) (Habit, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Habit{}, ErrEmptyDescription
	}
	if !frequency.IsValid() {
		return Habit{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
	}
	return Habit{
		Description:    description,
		Frequency:      frequency,
		Goal:           strings.TrimSpace(goal),
		CompletedDates: make(map[string]bool),
	}, nil
}

// ToggleToday flips today's completion mark and reports whether the habit is
// now done today. A date appears in the set at most once, so toggling twice
// restores the original state.
func (h *Habit) ToggleToday(now time.Time) bool {
	if h.CompletedDates == nil {
		h.CompletedDates = make(map[string]bool)
	}
	key := DayKey(now)
	if h.CompletedDates[key] {
		delete(h.CompletedDates, key)
		return false
	}
	h.CompletedDates[key] = true
	return true
}

func (h Habit) DoneOn(day time.Time) bool {
	return h.CompletedDates[DayKey(day)]
}
