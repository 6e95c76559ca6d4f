package update

import (
	"fmt"

	"github.com/sandeepkv93/habitquest/internal/game"
)

// applyResult turns the events of one engine operation into the status line
// and notification stream. The save error wins the status line: a successful
// toggle that failed to persist is an error the user has to see.
func (m Model) applyResult(res game.Result, okMessage string) Model {
	status := okMessage
	if res.XPAwarded > 0 {
		status = fmt.Sprintf("%s (+%d xp)", status, res.XPAwarded)
	}
	m.Status = StatusBar{Text: status, IsError: false}

	for _, level := range res.LevelsReached {
		m.notify("Level up!", fmt.Sprintf("You reached level %d", level), "info")
	}
	if res.CompletedQuest != nil {
		m.notify("Quest complete", fmt.Sprintf("%s (+%d xp)", res.CompletedQuest.Description, res.CompletedQuest.Reward), "info")
	}
	if res.AssignedQuest != nil {
		m.notify("New quest", res.AssignedQuest.Description, "info")
	}
	if res.SaveErr != nil {
		text := fmt.Sprintf("save failed: %v", res.SaveErr)
		m.Status = StatusBar{Text: text, IsError: true}
		m.notify("Save Failed", text, "error")
	}
	return m
}
