package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sandeepkv93/todo/internal/views"
)

const usageMarkdown = "# todo\n\n" +
	"Personal to-do list manager. Run without action flags for the interactive menu.\n\n" +
	"## Usage\n\n" +
	"```\ntodo [flags]\n```\n\n" +
	"## Tasks\n\n" +
	"| Flag | Meaning |\n|---|---|\n" +
	"| `-a, --add TITLE` | add a task |\n" +
	"| `-d, --due DATE` | due date for the new task, `YYYY-MM-DD`, 2025-01-01 or later |\n" +
	"| `-p, --priority P` | `High`, `Medium` or `Low` |\n" +
	"| `-r, --recurring R` | `daily`, `weekly`, `monthly` or `yearly` |\n" +
	"| `-c, --category C` | category id or name, repeatable |\n" +
	"| `--complete N[,M]` | toggle completion by display number |\n" +
	"| `--remove N[,M]` | remove by display number |\n" +
	"| `--archive` | move completed tasks to the archive |\n\n" +
	"## Views\n\n" +
	"| Flag | Meaning |\n|---|---|\n" +
	"| `-l, --list` | list pending tasks |\n" +
	"| `--all` | include completed tasks |\n" +
	"| `-s, --search TEXT` | titles containing TEXT |\n" +
	"| `-f, --filter C` | tasks in category C |\n" +
	"| `--sort KEY` | `due_date`, `priority` or `category` |\n" +
	"| `--report` | total, completed and overdue counts |\n" +
	"| `--export FMT` | write all tasks as `csv`, `json` or `yaml` |\n" +
	"| `-o, --output FILE` | export file name |\n\n" +
	"Display numbers refer to the list the same view flags print.\n\n" +
	"## Settings\n\n" +
	"| Flag | Meaning |\n|---|---|\n" +
	"| `--config FILE` | config file, default `<data-dir>/config.json` |\n" +
	"| `--data-dir DIR` | directory for task, archive and category files |\n" +
	"| `--log-level L` | `debug`, `info`, `warn` or `error` |\n" +
	"| `-h, --help` | show this help |\n\n" +
	"Settings can also come from `TODO_*` environment variables, e.g. `TODO_REMINDER_DAYS_AHEAD=3`.\n"

func printHelp(w io.Writer) {
	out := usageMarkdown
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = views.RenderMarkdown(usageMarkdown) + "\n"
	}
	fmt.Fprint(w, out)
}
