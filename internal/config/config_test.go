package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, warnings := Load(Options{DataDir: dir})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cfg.DefaultRecurring != model.RecurrenceNone || cfg.ReminderDaysAhead != 1 || cfg.DefaultPriority != model.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DataDir != dir || cfg.Storage != BackendJSON || !cfg.AutoArchive {
		t.Fatalf("unexpected ambient defaults: %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := `{"default_recurring":"weekly","reminder_days_ahead":3,"default_priority":"high","storage":"sqlite","auto_archive":false}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, warnings := Load(Options{DataDir: dir})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cfg.DefaultRecurring != model.RecurrenceWeekly || cfg.ReminderDaysAhead != 3 || cfg.DefaultPriority != model.PriorityHigh {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Storage != BackendSQLite || cfg.AutoArchive {
		t.Fatalf("unexpected ambient config: %+v", cfg)
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, warnings := Load(Options{DataDir: dir, LogLevel: "debug"})
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if cfg.ReminderDaysAhead != 1 || cfg.DefaultPriority != model.PriorityMedium || cfg.LogLevel != "debug" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalidValuesFallBackPerField(t *testing.T) {
	dir := t.TempDir()
	body := `{"default_priority":"Urgent","reminder_days_ahead":-2,"default_recurring":"hourly","storage":"postgres"}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, warnings := Load(Options{DataDir: dir})
	if len(warnings) != 4 {
		t.Fatalf("expected four warnings, got %v", warnings)
	}
	def := Default()
	if cfg.DefaultPriority != def.DefaultPriority || cfg.ReminderDaysAhead != def.ReminderDaysAhead ||
		cfg.DefaultRecurring != def.DefaultRecurring || cfg.Storage != def.Storage {
		t.Fatalf("expected per-field defaults, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TODO_REMINDER_DAYS_AHEAD", "5")
	t.Setenv("TODO_DEFAULT_PRIORITY", "Low")
	t.Setenv("TODO_LOG_LEVEL", "WARN")

	cfg, warnings := Load(Options{DataDir: t.TempDir()})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cfg.ReminderDaysAhead != 5 || cfg.DefaultPriority != model.PriorityLow || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected env config: %+v", cfg)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(path, []byte(`{"reminder_days_ahead":0}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, warnings := Load(Options{Path: path, DataDir: t.TempDir()})
	if len(warnings) != 0 || cfg.ReminderDaysAhead != 0 {
		t.Fatalf("unexpected config: %+v %v", cfg, warnings)
	}
}
