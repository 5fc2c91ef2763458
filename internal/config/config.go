// Package config loads the per-run settings of the todo program.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sandeepkv93/todo/internal/model"
)

const (
	FileName      = "config.json"
	EnvPrefix     = "TODO"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	DefaultRecurring  model.Recurrence
	ReminderDaysAhead int
	DefaultPriority   model.Priority
	DataDir           string
	Storage           string
	AutoArchive       bool
	LogLevel          string
}

func Default() Config {
	return Config{
		DefaultRecurring:  model.RecurrenceNone,
		ReminderDaysAhead: 1,
		DefaultPriority:   model.PriorityMedium,
		DataDir:           ".",
		Storage:           BackendJSON,
		AutoArchive:       true,
		LogLevel:          "info",
	}
}

// Options select the config file and carry explicit overrides from flags.
type Options struct {
	Path     string
	DataDir  string
	LogLevel string
}

// Load reads the config file and TODO_* environment variables on top of
// the defaults. It always returns a usable Config; the returned warnings
// describe anything that fell back to a default.
func Load(opts Options) (Config, []error) {
	def := Default()
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("default_recurring", "")
	v.SetDefault("reminder_days_ahead", def.ReminderDaysAhead)
	v.SetDefault("default_priority", string(def.DefaultPriority))
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("storage", def.Storage)
	v.SetDefault("auto_archive", def.AutoArchive)
	v.SetDefault("log_level", def.LogLevel)

	var warnings []error
	dataDir := strings.TrimSpace(opts.DataDir)
	if dataDir == "" {
		dataDir = strings.TrimSpace(v.GetString("data_dir"))
	}
	if dataDir == "" {
		dataDir = def.DataDir
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = filepath.Join(dataDir, FileName)
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			warnings = append(warnings, fmt.Errorf("read config %s: %w", path, err))
			return fallback(def, dataDir, opts.LogLevel), warnings
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		warnings = append(warnings, fmt.Errorf("stat config %s: %w", path, err))
	}

	cfg := def
	cfg.DataDir = dataDir
	if opts.DataDir == "" && strings.TrimSpace(v.GetString("data_dir")) != "" {
		cfg.DataDir = strings.TrimSpace(v.GetString("data_dir"))
	}

	if rec, err := model.ParseRecurrence(v.GetString("default_recurring")); err != nil {
		warnings = append(warnings, fmt.Errorf("default_recurring: %w", err))
	} else {
		cfg.DefaultRecurring = rec
	}

	if p, err := model.ParsePriority(v.GetString("default_priority")); err != nil {
		warnings = append(warnings, fmt.Errorf("default_priority: %w", err))
	} else {
		cfg.DefaultPriority = p
	}

	if days := v.GetInt("reminder_days_ahead"); days < 0 {
		warnings = append(warnings, fmt.Errorf("reminder_days_ahead: must be >= 0, got %d", days))
	} else {
		cfg.ReminderDaysAhead = days
	}

	switch backend := strings.ToLower(strings.TrimSpace(v.GetString("storage"))); backend {
	case BackendJSON, BackendSQLite:
		cfg.Storage = backend
	default:
		warnings = append(warnings, fmt.Errorf("storage: unknown backend %q", backend))
	}

	cfg.AutoArchive = v.GetBool("auto_archive")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(v.GetString("log_level")))
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
	return cfg, warnings
}

func fallback(def Config, dataDir, logLevel string) Config {
	def.DataDir = dataDir
	if lvl := strings.TrimSpace(logLevel); lvl != "" {
		def.LogLevel = strings.ToLower(lvl)
	}
	return def
}
