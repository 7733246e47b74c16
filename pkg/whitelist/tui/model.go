// Package tui is the interactive terminal form for whitelisting a network or
// device. The remote checks run in a tea.Cmd and report back through
// registeredMsg, so the form state only changes inside Update.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chainsafe/wifi-whitelist/internal/i18n"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/form"
)

const (
	ssidInput = iota
	macInput
	submitButton
)

const requestTimeout = 15 * time.Second

// registeredMsg carries the outcome of a Register call.
type registeredMsg struct {
	entry *whitelist.Entry
	err   error
}

// Model is the bubbletea model of the whitelist form.
type Model struct {
	form       *form.Form
	registrar  form.Registrar
	inputs     []textinput.Model
	focusIndex int
	spinner    spinner.Model
	inserted   []*whitelist.Entry
}

// New creates the form model. opts configure the underlying form.Form, for
// example form.WithOnInserted.
func New(registrar form.Registrar, opts ...form.Option) Model {
	m := Model{
		form:      form.New(registrar, opts...),
		registrar: registrar,
		inputs:    make([]textinput.Model, 2),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(focusedStyle)),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 32
		t.Prompt = "> "

		switch i {
		case ssidInput:
			t.Placeholder = i18n.T("form.ssid_placeholder")
			t.CharLimit = 64
		case macInput:
			t.Placeholder = i18n.T("form.mac_placeholder")
			t.CharLimit = 32
		}
		m.inputs[i] = t
	}

	m.inputs[ssidInput].Focus()
	m.inputs[ssidInput].TextStyle = focusedStyle

	return m
}

// Form returns the underlying form state.
func (m Model) Form() *form.Form {
	return m.form
}

// Inserted returns the entries added during this session.
func (m Model) Inserted() []*whitelist.Entry {
	return m.inserted
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		// input is frozen while the store is checked
		if m.form.Status().Loading() {
			return m, nil
		}

		switch msg.String() {
		case "enter":
			return m.submit()
		case "tab", "shift+tab", "up", "down":
			cmd := m.moveFocus(msg.String())
			return m, cmd
		}

	case registeredMsg:
		m.form.Finish(msg.err)
		if msg.err == nil {
			m.inserted = append(m.inserted, msg.entry)
			m.syncInputs()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.form.Status().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// submit starts a submission. Invalid input is reported without a command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.form.SSID = m.inputs[ssidInput].Value()
	m.form.MAC = m.inputs[macInput].Value()

	req, err := m.form.Begin()
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.register(req))
}

func (m Model) register(req *whitelist.RegisterRequest) tea.Cmd {
	registrar := m.registrar
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		entry, err := registrar.Register(ctx, req)
		return registeredMsg{entry: entry, err: err}
	}
}

// syncInputs copies the form fields back into the text inputs.
func (m *Model) syncInputs() {
	m.inputs[ssidInput].SetValue(m.form.SSID)
	m.inputs[macInput].SetValue(m.form.MAC)
}

func (m *Model) moveFocus(key string) tea.Cmd {
	if key == "up" || key == "shift+tab" {
		m.focusIndex--
	} else {
		m.focusIndex++
	}
	if m.focusIndex > submitButton {
		m.focusIndex = ssidInput
	} else if m.focusIndex < ssidInput {
		m.focusIndex = submitButton
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	if m.form.Status().Loading() {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	status := m.form.Status()

	items := []string{
		titleStyle.Render(i18n.T("form.title")),
		subtitleStyle.Render(i18n.T("form.subtitle")),
		"",
		labelStyle.Render(i18n.T("form.ssid_label")),
		m.inputs[ssidInput].View(),
		"",
		labelStyle.Render(i18n.T("form.mac_label")),
		m.inputs[macInput].View(),
		"",
	}

	switch {
	case status.Loading():
		items = append(items, disabledStyle.Render(m.spinner.View()+" "+i18n.T("form.checking")))
	case m.focusIndex == submitButton:
		items = append(items, buttonSelectedStyle.Render("[ "+i18n.T("form.submit")+" ]"))
	default:
		items = append(items, buttonStyle.Render("[ "+i18n.T("form.submit")+" ]"))
	}

	if msg := status.Error(); msg != "" {
		items = append(items, "", errorStyle.Render(msg))
	}
	if msg := status.Success(); msg != "" {
		items = append(items, "", successStyle.Render(msg))
	}

	items = append(items, "", helpStyle.Render(i18n.T("form.help")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}
