package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/parsekit/diag"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// interactiveModel re-checks the document on every keystroke and shows
// either the accepted entries or the failure report.
type interactiveModel struct {
	input   textinput.Model
	styles  diag.Styles
	entries []Entry
	explain string
	hex     bool
}

func newInteractiveModel(styles diag.Styles, hex bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "host=1, port=8080"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{input: ti, styles: styles, hex: hex}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.hex = !m.hex
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *interactiveModel) refresh() {
	m.entries, m.explain = nil, ""

	src := m.input.Value()
	if src == "" {
		return
	}

	entries, err := check(src)
	switch {
	case err == nil:
		m.entries = entries
	case err.Incomplete():
		m.explain = err.Error()
	default:
		m.explain = report(src, err.Inner, m.styles, m.hex)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pcheck"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.explain != "":
		b.WriteString(m.explain)
	case len(m.entries) > 0:
		for _, e := range m.entries {
			b.WriteString(keyStyle.Render(e.Key))
			b.WriteString(" = ")
			b.WriteString(resultStyle.Render(fmt.Sprint(e.Value)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	hex := "off"
	if m.hex {
		hex = "on"
	}
	b.WriteString(helpStyle.Render("tab hex dump (" + hex + ") • esc quit"))
	return b.String()
}

func runInteractive(styles diag.Styles, hex bool) error {
	p := tea.NewProgram(newInteractiveModel(styles, hex), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
