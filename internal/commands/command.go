package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeProfile Type = "profile"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	KindTask  = "task"
	KindHabit = "habit"
)

type AddArgs struct {
	Kind        string
	Description string
	Due         string // due:YYYY-MM-DD, tasks only
	Frequency   string // freq:daily|weekly|monthly, habits only
	Goal        string // goal:<text>, habits only, captures the rest of the line
}

type DoneArgs struct {
	Kind     string
	Position int // 1-based list position
}

type ProfileArgs struct {
	Field string // name | year | avatar
	Value string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Done    *DoneArgs
	Profile *ProfileArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeProfile:
		return parseProfile(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a kind and a description"}
	}
	kind := strings.ToLower(args[0])
	if kind != KindTask && kind != KindHabit {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("add supports task or habit, got %q", kind)}
	}

	add := AddArgs{Kind: kind}
	descWords := make([]string, 0, len(args))
	for i := 1; i < len(args); i++ {
		token := args[i]
		lower := strings.ToLower(token)
		switch {
		case strings.HasPrefix(lower, "due:"):
			add.Due = token[len("due:"):]
		case strings.HasPrefix(lower, "freq:"):
			add.Frequency = strings.ToLower(token[len("freq:"):])
		case strings.HasPrefix(lower, "goal:"):
			goal := append([]string{token[len("goal:"):]}, args[i+1:]...)
			add.Goal = strings.TrimSpace(strings.Join(goal, " "))
			i = len(args)
		default:
			descWords = append(descWords, token)
		}
	}
	add.Description = strings.TrimSpace(strings.Join(descWords, " "))
	if add.Description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	if kind == KindTask && add.Due == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add task requires due:YYYY-MM-DD"}
	}
	if kind == KindHabit && add.Frequency == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add habit requires freq:daily|weekly|monthly"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a kind and a position"}
	}
	kind := strings.ToLower(args[0])
	if kind != KindTask && kind != KindHabit {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("done supports task or habit, got %q", kind)}
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("done requires a positive list position, got %q", args[1])}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Kind: kind, Position: pos}}, nil
}

func parseProfile(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "profile requires a field and a value"}
	}
	field := strings.ToLower(args[0])
	switch field {
	case "name", "year", "avatar":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("profile supports name, year or avatar, got %q", field)}
	}
	value := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeProfile, Raw: raw, Profile: &ProfileArgs{Field: field, Value: value}}, nil
}
