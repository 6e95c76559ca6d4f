package model

import (
	"errors"
	"fmt"
)

var ErrInvalidQuestType = errors.New("model: invalid quest type")

type QuestType string

const (
	QuestCompleteTasks  QuestType = "complete_tasks"
	QuestCompleteHabits QuestType = "complete_habits"
)

func (q QuestType) IsValid() bool {
	switch q {
	case QuestCompleteTasks, QuestCompleteHabits:
		return true
	default:
		return false
	}
}

// Quest is an immutable catalog entry. The active quest a profile works toward
// is a value copy of one of these, never a reference into the catalog. Amount
// is meaningful only for complete_tasks quests.
type Quest struct {
	Type        QuestType
	Description string
	Amount      int
	Reward      int
}

func (q Quest) Validate() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuestType, q.Type)
	}
	if q.Description == "" {
		return errors.New("model: quest description is required")
	}
	if q.Reward < 0 {
		return errors.New("model: quest reward must not be negative")
	}
	return nil
}
