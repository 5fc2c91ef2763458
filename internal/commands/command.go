package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeComplete Type = "complete"
	TypeRemove   Type = "remove"
	TypeArchive  Type = "archive"
	TypeList     Type = "list"
	TypeReport   Type = "report"
	TypeExport   Type = "export"
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

type AddArgs struct {
	Title      string
	DueDate    string
	Priority   string
	Recurring  string
	Categories []string
}

// ViewArgs describe the task view that list output and display numbers
// refer to.
type ViewArgs struct {
	All      bool
	Search   string
	Category string
	Sort     string
}

type SelectArgs struct {
	Selection string
	View      ViewArgs
}

type ExportArgs struct {
	Format string
	Output string
}

type Command struct {
	Type   Type
	Add    *AddArgs
	View   *ViewArgs
	Select *SelectArgs
	Export *ExportArgs
}

// Flags is the raw command-line surface.
type Flags struct {
	Add        string
	Due        string
	Priority   string
	Recurring  string
	Categories []string

	List   bool
	All    bool
	Search string
	Filter string
	Sort   string

	Report bool
	Export string
	Output string

	Complete string
	Remove   string
	Archive  bool
}

// HasAction reports whether any flag asks for work. Without one the
// program runs the interactive menu.
func (f Flags) HasAction() bool {
	return f.Add != "" || f.List || f.All || f.Search != "" || f.Filter != "" || f.Sort != "" ||
		f.Report || f.Export != "" || f.Complete != "" || f.Remove != "" || f.Archive
}

// Build turns flags into commands in a fixed order: mutations first, then
// the read-only outputs, so a listing reflects the changes of the same run.
func Build(f Flags) ([]Command, error) {
	if !f.HasAction() {
		return nil, &CommandError{Code: ErrCodeEmptyInput, Message: "no action requested"}
	}
	adding := strings.TrimSpace(f.Add) != ""
	if f.Add != "" && !adding {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: "--add requires a title"}
	}
	if !adding {
		for name, v := range map[string]string{"--due": f.Due, "--priority": f.Priority, "--recurring": f.Recurring} {
			if strings.TrimSpace(v) != "" {
				return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: name + " requires --add"}
			}
		}
		if len(f.Categories) > 0 {
			return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: "--category requires --add; use --filter to list a category"}
		}
	}
	if f.Output != "" && f.Export == "" {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: "--output requires --export"}
	}

	view := ViewArgs{
		All:      f.All,
		Search:   strings.TrimSpace(f.Search),
		Category: strings.TrimSpace(f.Filter),
		Sort:     strings.TrimSpace(f.Sort),
	}

	var out []Command
	if adding {
		out = append(out, Command{Type: TypeAdd, Add: &AddArgs{
			Title:      f.Add,
			DueDate:    f.Due,
			Priority:   f.Priority,
			Recurring:  f.Recurring,
			Categories: f.Categories,
		}})
	}
	if f.Complete != "" {
		out = append(out, Command{Type: TypeComplete, Select: &SelectArgs{Selection: f.Complete, View: view}})
	}
	if f.Remove != "" {
		out = append(out, Command{Type: TypeRemove, Select: &SelectArgs{Selection: f.Remove, View: view}})
	}
	if f.Archive {
		out = append(out, Command{Type: TypeArchive})
	}
	// View flags alone imply a listing; next to --complete or --remove
	// they only select what the display numbers refer to.
	viewOnly := view.All || view.Search != "" || view.Category != "" || view.Sort != ""
	if f.List || (viewOnly && f.Complete == "" && f.Remove == "") {
		out = append(out, Command{Type: TypeList, View: &view})
	}
	if f.Report {
		out = append(out, Command{Type: TypeReport})
	}
	if f.Export != "" {
		out = append(out, Command{Type: TypeExport, Export: &ExportArgs{Format: f.Export, Output: f.Output}})
	}
	return out, nil
}
