package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/todo/internal/model"
)

type AppData struct {
	Header     string
	Body       string
	Menu       string
	Prompt     string
	StatusLine string
	IsError    bool
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	classStyles = map[ColorClass]lipgloss.Style{
		ColorDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		ColorNeutral: lipgloss.NewStyle(),
	}
)

func RenderApp(data AppData) string {
	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}
	lines := []string{headerStyle.Render(data.Header)}
	if strings.TrimSpace(data.Body) != "" {
		lines = append(lines, panelStyle.Render(data.Body))
	}
	if data.Menu != "" {
		lines = append(lines, data.Menu)
	}
	if data.Prompt != "" {
		lines = append(lines, data.Prompt)
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// FormatEntry renders one line without color.
func FormatEntry(e Entry, cats []model.Category) string {
	t := e.Task
	status := "[ ]"
	if t.Completed {
		status = "[x]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s %s", e.Number, status, t.Title)
	if t.DueDate != nil {
		fmt.Fprintf(&b, " (Due: %s)", t.DueDate)
	}
	fmt.Fprintf(&b, " (Priority: %s)", t.Priority)
	if len(t.Categories) > 0 {
		fmt.Fprintf(&b, " (Categories: %s)", strings.Join(model.CategoryNames(cats, t.Categories), ", "))
	}
	if t.Recurring.IsSet() {
		fmt.Fprintf(&b, " (Recurring: %s)", t.Recurring)
	}
	return b.String()
}

// RenderList renders entries one per line, colored by class.
func RenderList(entries []Entry, cats []model.Category) string {
	if len(entries) == 0 {
		return "No tasks found."
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, classStyles[e.Class].Render(FormatEntry(e, cats)))
	}
	return strings.Join(lines, "\n")
}

// RenderTaskSummary renders "- title (Due: date)" lines for alerts.
func RenderTaskSummary(heading string, tasks []model.Task, class ColorClass) string {
	if len(tasks) == 0 {
		return ""
	}
	lines := []string{classStyles[class].Bold(true).Render(heading)}
	for _, t := range tasks {
		line := "- " + t.Title
		if t.DueDate != nil {
			line += fmt.Sprintf(" (Due: %s)", t.DueDate)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func RenderCategories(cats []model.Category) string {
	if len(cats) == 0 {
		return "No categories."
	}
	lines := make([]string, 0, len(cats))
	for _, c := range cats {
		line := fmt.Sprintf("%d. %s", c.ID, c.Name)
		if c.Description != "" {
			line += " - " + c.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
