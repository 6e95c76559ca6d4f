package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/habitquest/internal/commands"
	"github.com/sandeepkv93/habitquest/internal/model"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func formatDay(t time.Time) string {
	return model.FormatDate(t)
}

// parseQuickAdd reuses the palette grammar for the in-view quick-add line.
func parseQuickAdd(kind, line string) (commands.AddArgs, error) {
	cmd, err := commands.Parse("add " + kind + " " + line)
	if err != nil {
		return commands.AddArgs{}, err
	}
	return *cmd.Add, nil
}
