package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"techangel/internal/domain"
	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

const (
	tabConverter = iota
	tabRegression
)

var tabNames = []string{"Address converter", "Salary regression"}

// Options configures the TUI.
type Options struct {
	Converter    *converter.View
	Regression   *regression.View
	Models       []domain.ModelInfo
	Gate         domain.ReadinessGate
	ReadyTimeout time.Duration
	// MarkdownStyle is a glamour standard style name; empty picks one from
	// the terminal background.
	MarkdownStyle string
}

// readyMsg carries the result of the crypto gate.
type readyMsg struct{ err error }

// Model is the root bubbletea model.
type Model struct {
	opts       Options
	active     int
	converter  converterTab
	regression regressionTab
	styles     Styles
	quitting   bool
}

// New builds the root model.
func New(opts Options) Model {
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = 10 * time.Second
	}
	return Model{
		opts:       opts,
		converter:  newConverterTab(opts.Converter),
		regression: newRegressionTab(opts.Regression, opts.Models, opts.MarkdownStyle),
		styles:     DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitReady(), textinput.Blink)
}

// waitReady resolves the crypto gate off the UI loop.
func (m Model) waitReady() tea.Cmd {
	gate, timeout := m.opts.Gate, m.opts.ReadyTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return readyMsg{err: gate.WaitReady(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		// A timeout only means the gate is still pending; keep waiting.
		if errors.Is(msg.err, context.DeadlineExceeded) {
			return m, m.waitReady()
		}
		m.converter.view.SetReady(msg.err)
		return m, nil

	case tea.WindowSizeMsg:
		m.converter.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % len(tabNames)
			return m, nil
		case "shift+tab":
			m.active = (m.active + len(tabNames) - 1) % len(tabNames)
			return m, nil
		}
		if m.active == tabRegression {
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			m.regression.HandleKey(msg.String())
			return m, nil
		}
	}

	if m.active == tabConverter {
		var cmd tea.Cmd
		m.converter, cmd = m.converter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == m.active {
			tabs[i] = m.styles.ActiveTab.Render(name)
		} else {
			tabs[i] = m.styles.Tab.Render(name)
		}
	}

	var body, help string
	switch m.active {
	case tabConverter:
		body = m.converter.View(m.styles)
		help = "tab switch view • ↑/↓ field • enter convert • esc quit"
	case tabRegression:
		body = m.regression.View(m.styles)
		help = "tab switch view • 1-4 model • d details • r regenerate • q quit"
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString(m.styles.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderMarkdown renders md for a terminal. style is a glamour standard style
// name; empty picks one from the terminal background.
func RenderMarkdown(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(rendererOptions(style)...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
