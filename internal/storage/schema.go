package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sandeepkv93/todo/internal/model"
)

//go:embed schema/tasks.schema.json
var taskListSchemaJSON []byte

const taskListSchemaURL = "https://todo.invalid/schema/tasks.schema.json"

var taskListSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(taskListSchemaURL, bytes.NewReader(taskListSchemaJSON)); err != nil {
		panic(fmt.Sprintf("storage: add task schema: %v", err))
	}
	return compiler.MustCompile(taskListSchemaURL)
}

// SchemaError describes one schema violation in a task document.
type SchemaError struct {
	Path    string
	Message string
}

func (e SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// validateTaskDocument checks raw against the task list schema.
func validateTaskDocument(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := taskListSchema.Validate(doc); err != nil {
		problems := collectSchemaErrors(nil, err)
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			msgs = append(msgs, p.Error())
		}
		return fmt.Errorf("%w: %s", ErrCorrupt, strings.Join(msgs, "; "))
	}
	return nil
}

func collectSchemaErrors(out []SchemaError, err error) []SchemaError {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return append(out, SchemaError{Message: err.Error()})
	}
	if len(ve.Causes) == 0 {
		return append(out, SchemaError{Path: pointerToPath(ve.InstanceLocation), Message: ve.Message})
	}
	for _, cause := range ve.Causes {
		out = collectSchemaErrors(out, cause)
	}
	return out
}

// pointerToPath turns "/0/title" into "[0].title".
func pointerToPath(ptr string) string {
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func decodeTasks(raw []byte) ([]model.Task, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []model.Task{}, nil
	}
	if err := validateTaskDocument(raw); err != nil {
		return []model.Task{}, err
	}
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return []model.Task{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return normalizeTasks(tasks), nil
}
