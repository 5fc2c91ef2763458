package jobs

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/todo/internal/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("jobs: unknown export format")

// CSVHeader is the fixed column order of CSV exports.
var CSVHeader = []string{"title", "completed", "due_date", "priority", "recurring", "categories", "completion_timestamp"}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// DefaultPath is the file an export writes to when no output is given.
func (f Format) DefaultPath() string {
	return "tasks_export." + string(f)
}

func ExportCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write(csvRecord(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(t model.Task) []string {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.String()
	}
	cats := make([]string, 0, len(t.Categories))
	for _, id := range t.Categories {
		cats = append(cats, strconv.Itoa(id))
	}
	completedAt := ""
	if t.CompletionTimestamp != nil {
		completedAt = t.CompletionTimestamp.Format(time.RFC3339)
	}
	return []string{
		t.Title,
		strconv.FormatBool(t.Completed),
		due,
		string(t.Priority),
		string(t.Recurring),
		strings.Join(cats, ";"),
		completedAt,
	}
}

// ExportJSON writes the same document shape as the task store.
func ExportJSON(w io.Writer, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func ExportYAML(w io.Writer, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return err
	}
	return enc.Close()
}

func Export(w io.Writer, format Format, tasks []model.Task) error {
	switch format {
	case FormatCSV:
		return ExportCSV(w, tasks)
	case FormatJSON:
		return ExportJSON(w, tasks)
	case FormatYAML:
		return ExportYAML(w, tasks)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ExportFile writes tasks to path, replacing any existing file. An empty
// path uses the format's default file name. It returns the path written.
func ExportFile(path string, format Format, tasks []model.Task) (string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return path, err
	}
	if strings.TrimSpace(path) == "" {
		path = format.DefaultPath()
	}
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create export: %w", err)
	}
	if err := Export(f, format, tasks); err != nil {
		_ = f.Close()
		return path, fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
