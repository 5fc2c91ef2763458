package tasklist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTask      = errors.New("tasklist: unknown task")
	ErrInvalidSelection = errors.New("tasklist: invalid selection")
	ErrOutOfRange       = errors.New("tasklist: task number out of range")

	ErrNumericCategoryName = errors.New("tasklist: category name must not be a number")
)

// SelectionError collects per-item failures of a batch operation. Items
// that did not fail were still applied.
type SelectionError struct {
	Items []error
}

func (e *SelectionError) Error() string {
	msgs := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		msgs = append(msgs, item.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e *SelectionError) Unwrap() []error {
	return e.Items
}

func (e *SelectionError) add(err error) {
	e.Items = append(e.Items, err)
}

// orNil returns nil when no item failed.
func (e *SelectionError) orNil() error {
	if e == nil || len(e.Items) == 0 {
		return nil
	}
	return e
}

// JoinErrors merges the per-item failures of a and b into one
// SelectionError, or returns nil when both are nil.
func JoinErrors(a, b error) error {
	var out SelectionError
	for _, err := range []error{a, b} {
		if err == nil {
			continue
		}
		var se *SelectionError
		if errors.As(err, &se) {
			out.Items = append(out.Items, se.Items...)
			continue
		}
		out.add(err)
	}
	return out.orNil()
}

func unknownTask(id string) error {
	return fmt.Errorf("%w: %s", ErrUnknownTask, id)
}
