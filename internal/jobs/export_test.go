package jobs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestExportCSVRoundTrip(t *testing.T) {
	tasks := sampleTasks()
	tasks[0].Categories = []int{1, 2}
	tasks[0].Title = `Call "Bob", then email`

	var buf bytes.Buffer
	if err := ExportCSV(&buf, tasks); err != nil {
		t.Fatalf("export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != len(tasks)+1 {
		t.Fatalf("expected %d rows, got %d", len(tasks)+1, len(rows))
	}
	if strings.Join(rows[0], ",") != "title,completed,due_date,priority,recurring,categories,completion_timestamp" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	want := []string{`Call "Bob", then email`, "false", "2025-05-01", "High", "", "1;2", ""}
	if strings.Join(rows[1], "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected first row %q", rows[1])
	}
	if rows[3][4] != "weekly" {
		t.Fatalf("expected recurrence cell, got %q", rows[3][4])
	}
	if rows[4][1] != "true" || rows[4][6] != "2025-03-30T18:00:00Z" {
		t.Fatalf("unexpected completed row %q", rows[4])
	}
	if rows[5][2] != "" || rows[5][5] != "" {
		t.Fatalf("absent values must be empty cells, got %q", rows[5])
	}
}

func TestExportJSONMatchesStoreShape(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, sampleTasks()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  {\n    \"id\": \"1\",") {
		t.Fatalf("expected two-space indentation, got:\n%s", buf.String())
	}
	var back []model.Task
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(back) != 5 || back[2].Recurring != model.RecurrenceWeekly || back[3].CompletionTimestamp == nil {
		t.Fatalf("unexpected decoded export %+v", back)
	}

	buf.Reset()
	if err := ExportJSON(&buf, nil); err != nil || strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected empty array, got %q (%v)", buf.String(), err)
	}
}

func TestExportYAMLUsesStoreFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportYAML(&buf, sampleTasks()[:1]); err != nil {
		t.Fatalf("export: %v", err)
	}
	var back []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(back) != 1 {
		t.Fatalf("expected one document entry, got %d", len(back))
	}
	row := back[0]
	if row["title"] != "Renew passport" || row["due_date"] != "2025-05-01" || row["priority"] != "High" {
		t.Fatalf("unexpected yaml row %v", row)
	}
	if v, ok := row["recurring"]; !ok || v != nil {
		t.Fatalf("expected null recurring, got %v", v)
	}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	written, err := ExportFile(path, FormatCSV, sampleTasks())
	if err != nil || written != path {
		t.Fatalf("export file: %q %v", written, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(raw), "title,completed,") {
		t.Fatalf("unexpected file content %q", raw)
	}

	if _, err := ExportFile(filepath.Join(dir, "out.xml"), Format("xml"), nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.xml")); !os.IsNotExist(err) {
		t.Fatal("unknown format must not create a file")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"CSV": FormatCSV, " json ": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if FormatJSON.DefaultPath() != "tasks_export.json" {
		t.Fatalf("unexpected default path %q", FormatJSON.DefaultPath())
	}
}
