package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseFrequency(t *testing.T) {
	for _, in := range []string{"daily", " Weekly ", "MONTHLY"} {
		if _, err := ParseFrequency(in); err != nil {
			t.Fatalf("ParseFrequency(%q): %v", in, err)
		}
	}
	if _, err := ParseFrequency("hourly"); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got: %v", err)
	}
}

func TestNewHabitValidation(t *testing.T) {
	if _, err := NewHabit("", FrequencyDaily, ""); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got: %v", err)
	}
	if _, err := NewHabit("read", Frequency("sometimes"), ""); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got: %v", err)
	}
	habit, err := NewHabit("read", FrequencyDaily, " 20 pages ")
	if err != nil {
		t.Fatalf("new habit: %v", err)
	}
	if habit.Goal != "20 pages" {
		t.Fatalf("unexpected goal: %q", habit.Goal)
	}
	if habit.CompletedDates == nil {
		t.Fatal("completed dates map must be initialized")
	}
}

func TestHabitToggleTodayTwiceRestoresState(t *testing.T) {
	habit, err := NewHabit("stretch", FrequencyDaily, "")
	if err != nil {
		t.Fatalf("new habit: %v", err)
	}
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	if done := habit.ToggleToday(now); !done {
		t.Fatal("first toggle must mark today done")
	}
	if !habit.DoneOn(now) {
		t.Fatal("expected today present in completed dates")
	}

	if done := habit.ToggleToday(now); done {
		t.Fatal("second toggle must unmark today")
	}
	if habit.DoneOn(now) {
		t.Fatal("expected today absent after second toggle")
	}
	if len(habit.CompletedDates) != 0 {
		t.Fatalf("expected empty completed dates, got %v", habit.CompletedDates)
	}
}

func TestHabitToggleTodayInitializesNilMap(t *testing.T) {
	habit := Habit{Description: "loaded without dates", Frequency: FrequencyWeekly}
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	if done := habit.ToggleToday(now); !done {
		t.Fatal("toggle on nil map must mark today done")
	}
	if !habit.CompletedDates["2026-03-04"] {
		t.Fatalf("expected date key present, got %v", habit.CompletedDates)
	}
}
