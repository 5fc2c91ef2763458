package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Complete func(SelectArgs) (Result, error)
	Remove   func(SelectArgs) (Result, error)
	Archive  func() (Result, error)
	List     func(ViewArgs) (Result, error)
	Report   func() (Result, error)
	Export   func(ExportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeComplete:
		if handlers.Complete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Complete(*cmd.Select)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Remove(*cmd.Select)
	case TypeArchive:
		if handlers.Archive == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Archive()
	case TypeList:
		if handlers.List == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.List(*cmd.View)
	case TypeReport:
		if handlers.Report == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Report()
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Export(*cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

// ExecuteAll runs cmds in order and stops at the first failure. A failing
// command that still produced a message, such as a batch with some invalid
// items, keeps its result.
func ExecuteAll(cmds []Command, handlers Handlers) ([]Result, error) {
	out := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		res, err := Execute(cmd, handlers)
		if err != nil {
			if res.Message != "" {
				out = append(out, res)
			}
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
