package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Cancel):
			if m.flow != nil {
				m.resetPrompt()
				m.setStatus("Cancelled")
			}
			return m, nil
		case key.Matches(typed, m.keys.Submit):
			m = m.submit()
			if m.Quitting {
				return m, tea.Quit
			}
			return m, nil
		}
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.setError(typed.Err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	answer := strings.TrimSpace(m.input.Value())
	if m.flow == nil {
		m.input.Reset()
		return m.choose(answer)
	}

	p := m.flow.current()
	if p.check != nil {
		if err := p.check(&m, answer); err != nil {
			m.setError(err)
			m.input.Reset()
			return m
		}
	}
	m.flow.answers = append(m.flow.answers, answer)
	if len(m.flow.answers) < len(m.flow.prompts) {
		m.Status = StatusBar{}
		m.preparePrompt()
		return m
	}
	f := m.flow
	m.resetPrompt()
	f.finish(&m, f.answers)
	return m
}

func (m Model) choose(answer string) Model {
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(menu) {
		m.setError(fmt.Errorf("invalid option %q, choose 1-%d", answer, len(menu)))
		return m
	}
	m.Status = StatusBar{}
	menu[n-1].run(&m)
	return m
}
