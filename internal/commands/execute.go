package commands

type Result struct {
	Message string
}

type Handlers struct {
	AddTask  func(AddArgs) (Result, error)
	AddHabit func(AddArgs) (Result, error)
	Done     func(DoneArgs) (Result, error)
	Profile  func(ProfileArgs) (Result, error)
}

func Execute(cmd Command, h Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if cmd.Add.Kind == KindHabit {
			if h.AddHabit == nil {
				return Result{}, missingHandler("add habit")
			}
			return h.AddHabit(*cmd.Add)
		}
		if h.AddTask == nil {
			return Result{}, missingHandler("add task")
		}
		return h.AddTask(*cmd.Add)
	case TypeDone:
		if h.Done == nil {
			return Result{}, missingHandler("done")
		}
		return h.Done(*cmd.Done)
	case TypeProfile:
		if h.Profile == nil {
			return Result{}, missingHandler("profile")
		}
		return h.Profile(*cmd.Profile)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: string(cmd.Type)}
	}
}

func missingHandler(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: "no handler for " + name}
}
