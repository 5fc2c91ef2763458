package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/views"
)

const Farewell = "Goodbye!"

type StatusBar struct {
	Text    string
	IsError bool
}

// prompt is one question of a multi-step flow. check, when set, validates
// the answer before the flow moves on.
type prompt struct {
	label       string
	placeholder string
	check       func(m *Model, answer string) error
}

// flow collects answers for one menu option and applies them at the end.
type flow struct {
	title   string
	prompts []prompt
	answers []string
	finish  func(m *Model, answers []string)
}

func (f *flow) current() prompt {
	return f.prompts[len(f.answers)]
}

type Model struct {
	Session  *Session
	Config   config.Config
	Status   StatusBar
	Body     string
	Quitting bool

	ctx   context.Context
	query views.Query
	// shown is the sequence display numbers currently refer to.
	shown []model.Task
	flow  *flow

	input     textinput.Model
	helpModel help.Model
	keys      keyMap
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel builds the menu model. alerts is shown in the body until the
// first option is chosen.
func NewModel(ctx context.Context, s *Session, cfg config.Config, alerts string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Session:   s,
		Config:    cfg,
		Body:      alerts,
		ctx:       ctx,
		helpModel: help.New(),
		keys:      defaultKeyMap(),
	}
	m.initInput()
	m.resetPrompt()
	return m
}

func (m *Model) initInput() {
	m.input = textinput.New()
	m.input.CharLimit = 256
	m.input.Width = 48
	m.input.Focus()
}

// resetPrompt returns the input to menu selection.
func (m *Model) resetPrompt() {
	m.flow = nil
	m.input.Reset()
	m.input.Prompt = "Choose an option: "
	m.input.Placeholder = "1-16"
}

func (m *Model) startFlow(f *flow) {
	m.flow = f
	m.preparePrompt()
}

func (m *Model) preparePrompt() {
	p := m.flow.current()
	m.input.Reset()
	m.input.Prompt = p.label + ": "
	m.input.Placeholder = p.placeholder
}
