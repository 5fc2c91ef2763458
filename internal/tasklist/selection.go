package tasklist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

// Resolve maps a comma-separated list of 1-based display numbers onto the
// ids of the displayed tasks. Invalid tokens are reported per item and the
// valid ones are still returned, in input order without duplicates.
func Resolve(displayed []model.Task, selection string) ([]string, error) {
	var errs SelectionError
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, token := range strings.Split(selection, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			errs.add(fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, token))
			continue
		}
		if n < 1 || n > len(displayed) {
			errs.add(fmt.Errorf("%w: %d", ErrOutOfRange, n))
			continue
		}
		id := displayed[n-1].ID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 && len(errs.Items) == 0 {
		errs.add(fmt.Errorf("%w: nothing selected", ErrInvalidSelection))
	}
	return ids, errs.orNil()
}

func indexOf(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
