package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wavescope/translate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	undefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	highImpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func kindStyle(kind translate.ValueKind) lipgloss.Style {
	switch kind {
	case translate.KindWarn:
		return warnStyle
	case translate.KindUndef:
		return undefStyle
	case translate.KindHighImp:
		return highImpStyle
	default:
		return normalStyle
	}
}

type modelState int

const (
	stateSelectTranslator modelState = iota
	stateInputValue
)

type historyEntry struct {
	raw    string
	result translate.TranslationResult
	err    error
}

type interactiveModel struct {
	reg      *translate.Registry
	signal   string
	names    []string
	selected int
	input    textinput.Model
	history  []historyEntry
	state    modelState
}

func newInteractiveModel(reg *translate.Registry, signal string) *interactiveModel {
	input := textinput.New()
	input.Placeholder = "raw value, e.g. 10x1"
	input.CharLimit = 256

	return &interactiveModel{
		reg:    reg,
		signal: signal,
		names:  reg.Names(),
		input:  input,
		state:  stateSelectTranslator,
	}
}

func runInteractive(reg *translate.Registry, signal string) error {
	if reg.Len() == 0 {
		return fmt.Errorf("no translators registered")
	}
	_, err := tea.NewProgram(newInteractiveModel(reg, signal)).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateInputValue {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.state {
	case stateSelectTranslator:
		return m.updateSelect(keyMsg)
	case stateInputValue:
		return m.updateInput(keyMsg)
	}
	return m, nil
}

func (m *interactiveModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.names)-1 {
			m.selected++
		}
	case "enter":
		m.state = stateInputValue
		m.history = nil
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *interactiveModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateSelectTranslator
		m.input.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		if raw != "" {
			m.translateValue(raw)
			m.input.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) translateValue(raw string) {
	tr, err := m.reg.Get(m.names[m.selected])
	if err != nil {
		m.history = append(m.history, historyEntry{raw: raw, err: err})
		return
	}
	res, err := tr.Translate(m.signal, raw)
	m.history = append(m.history, historyEntry{raw: raw, result: res, err: err})
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("signal translator"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectTranslator:
		b.WriteString("Select a translator:\n\n")
		for i, name := range m.names {
			line := "  " + name
			if i == m.selected {
				line = selectedStyle.Render("> " + name)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(helpStyle.Render("\nup/down: move  enter: select  q: quit"))

	case stateInputValue:
		fmt.Fprintf(&b, "Translator: %s   Signal: %s\n\n", m.names[m.selected], m.signal)
		b.WriteString(m.input.View())
		b.WriteString("\n\n")

		start := 0
		if len(m.history) > 10 {
			start = len(m.history) - 10
		}
		for _, entry := range m.history[start:] {
			if entry.err != nil {
				fmt.Fprintf(&b, "%-20s %s\n", entry.raw, errorStyle.Render(entry.err.Error()))
				continue
			}
			styled := kindStyle(entry.result.Kind).Render(entry.result.Value)
			fmt.Fprintf(&b, "%-20s %s  %s\n", entry.raw, styled,
				helpStyle.Render("("+entry.result.Kind.String()+")"))
		}
		b.WriteString(helpStyle.Render("\nenter: translate  esc: back  ctrl+c: quit"))
	}

	return b.String()
}
