package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/update"
)

var ErrNotInteractive = errors.New("cli: interactive menu needs a terminal; pass action flags or --help")

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "todo",
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
	if strings.TrimSpace(level) == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// run is the start-up sequence: config, logger, store, session, alerts and
// auto-archive, then one of command mode or the interactive menu.
func run(ctx context.Context, app *App, global globalOptions, flags commands.Flags) error {
	cfg, warnings := config.Load(config.Options{
		Path:     global.configPath,
		DataDir:  global.dataDir,
		LogLevel: global.logLevel,
	})
	logger, err := newLogger(app.Err, cfg.LogLevel)
	if err != nil {
		logger.Warn("falling back to info logging", "err", err)
	}
	for _, w := range warnings {
		logger.Warn("config", "err", w)
	}

	var cmds []commands.Command
	interactive := !flags.HasAction()
	if !interactive {
		if cmds, err = commands.Build(flags); err != nil {
			return err
		}
	} else if !app.IsTerminal() {
		return ErrNotInteractive
	}

	store, err := storage.Open(ctx, cfg.Storage, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()

	mgr := tasklist.New(cfg)
	if app.Now != nil {
		mgr.Now = app.Now
	}
	session, err := update.OpenSession(ctx, store, mgr, logger)
	if err != nil {
		return err
	}

	alerts := session.Alerts(cfg.ReminderDaysAhead)
	if cfg.AutoArchive {
		if _, err := session.ArchiveCompleted(ctx); err != nil {
			logger.Error("auto-archive failed", "err", err)
		}
	}

	if interactive {
		return update.Run(ctx, update.NewModel(ctx, session, cfg, alerts), app.In, app.Out)
	}

	if alerts != "" {
		fmt.Fprintln(app.Out, alerts)
		fmt.Fprintln(app.Out)
	}
	results, err := commands.ExecuteAll(cmds, newHandlers(ctx, session))
	for _, res := range results {
		if res.Message != "" {
			fmt.Fprintln(app.Out, res.Message)
		}
	}
	return err
}

// Farewell is printed when the user leaves, including by interrupt.
const Farewell = update.Farewell

// Interrupted reports whether err is the result of ctx being cancelled by
// a signal rather than a real failure.
func Interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}
