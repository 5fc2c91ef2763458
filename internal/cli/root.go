// Package cli implements the todo command line: flag parsing, the start-up
// sequence and the choice between command mode and the interactive menu.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todo/internal/commands"
)

// App carries the process environment so tests can substitute it.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Now func() time.Time
	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal func() bool
}

func DefaultApp() *App {
	return &App{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		Now: time.Now,
		IsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

type globalOptions struct {
	configPath string
	dataDir    string
	logLevel   string
}

// NewRootCmd builds the todo command. Without action flags it starts the
// interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	var (
		global globalOptions
		flags  commands.Flags
	)
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Personal to-do list manager",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), app, global, flags)
		},
	}
	cmd.SetIn(app.In)
	cmd.SetOut(app.Out)
	cmd.SetErr(app.Err)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c.OutOrStdout())
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&global.configPath, "config", "", "config file (default <data-dir>/config.json)")
	pf.StringVar(&global.dataDir, "data-dir", "", "directory holding the task files")
	pf.StringVar(&global.logLevel, "log-level", "", "debug, info, warn or error")

	f := cmd.Flags()
	f.StringVarP(&flags.Add, "add", "a", "", "add a task with this title")
	f.StringVarP(&flags.Due, "due", "d", "", "due date for --add (YYYY-MM-DD)")
	f.StringVarP(&flags.Priority, "priority", "p", "", "priority for --add (High, Medium, Low)")
	f.StringVarP(&flags.Recurring, "recurring", "r", "", "recurrence for --add (daily, weekly, monthly, yearly)")
	f.StringArrayVarP(&flags.Categories, "category", "c", nil, "category id or name for --add (repeatable)")
	f.BoolVarP(&flags.List, "list", "l", false, "list tasks")
	f.BoolVar(&flags.All, "all", false, "include completed tasks")
	f.StringVarP(&flags.Search, "search", "s", "", "only tasks whose title contains this text")
	f.StringVarP(&flags.Filter, "filter", "f", "", "only tasks in this category (id or name)")
	f.StringVar(&flags.Sort, "sort", "", "sort by due_date, priority or category")
	f.BoolVar(&flags.Report, "report", false, "print task counts")
	f.StringVar(&flags.Export, "export", "", "export all tasks as csv, json or yaml")
	f.StringVarP(&flags.Output, "output", "o", "", "export file (default tasks_export.<format>)")
	f.StringVar(&flags.Complete, "complete", "", "toggle completion of the listed task numbers, e.g. 1,3")
	f.StringVar(&flags.Remove, "remove", "", "remove the listed task numbers, e.g. 2,4")
	f.BoolVar(&flags.Archive, "archive", false, "move completed tasks to the archive")
	return cmd
}

// Execute runs the todo command against the process environment.
func Execute(ctx context.Context) error {
	app := DefaultApp()
	return NewRootCmd(app).ExecuteContext(ctx)
}
