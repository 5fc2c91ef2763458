package update

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todo/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return Farewell + "\n"
	}
	header := "todo | menu"
	menuView := renderMenu()
	if m.flow != nil {
		header = "todo | " + m.flow.title
		menuView = ""
	}
	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}
	return views.RenderApp(views.AppData{
		Header:     header,
		Body:       m.Body,
		Menu:       menuView,
		Prompt:     m.input.View(),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.renderHelp(),
	})
}

// Run drives the menu until the user exits. Interrupts and a cancelled
// context end the loop normally since every change is already saved.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	default:
		return err
	}
}
