package model

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.Name != DefaultName {
		t.Fatalf("unexpected default name: %q", p.Name)
	}
	if p.Level != 1 || p.Experience != 0 || p.QuestsCompleted != 0 {
		t.Fatalf("unexpected default counters: %+v", p)
	}
	if p.AvatarPath != "" || p.BirthYear != 0 {
		t.Fatalf("expected unset optional fields: %+v", p)
	}
}

func TestValidateBirthYear(t *testing.T) {
	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	for _, year := range []int{1900, 1988, 2026} {
		if err := ValidateBirthYear(year, now); err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
	}
	for _, year := range []int{1899, 2027, -1} {
		if err := ValidateBirthYear(year, now); !errors.Is(err, ErrInvalidBirthYear) {
			t.Fatalf("year %d: expected ErrInvalidBirthYear, got: %v", year, err)
		}
	}
}

func TestNormalizedName(t *testing.T) {
	if got := NormalizedName("  "); got != DefaultName {
		t.Fatalf("blank name: got %q", got)
	}
	if got := NormalizedName(" Ada "); got != "Ada" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestQuestTypeValidation(t *testing.T) {
	if !QuestCompleteTasks.IsValid() || !QuestCompleteHabits.IsValid() {
		t.Fatal("known quest types must be valid")
	}
	if QuestType("grind").IsValid() {
		t.Fatal("unknown quest type must be invalid")
	}
	quest := Quest{Type: QuestType("grind"), Description: "x", Reward: 1}
	if err := quest.Validate(); !errors.Is(err, ErrInvalidQuestType) {
		t.Fatalf("expected ErrInvalidQuestType, got: %v", err)
	}
}
