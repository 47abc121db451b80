package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"techangel/internal/services/converter"
)

const (
	polkaField = iota
	ethField
)

type converterTab struct {
	view   *converter.View
	inputs []textinput.Model
	focus  int
}

func newConverterTab(v *converter.View) converterTab {
	polka := textinput.New()
	polka.Prompt = "SS58 > "
	polka.Placeholder = "5Grwva..."
	polka.CharLimit = 64
	polka.Width = 52
	polka.Focus()

	eth := textinput.New()
	eth.Prompt = "EVM  > "
	eth.Placeholder = "0x..."
	eth.CharLimit = 64
	eth.Width = 52

	return converterTab{view: v, inputs: []textinput.Model{polka, eth}}
}

func (t converterTab) Update(msg tea.Msg) (converterTab, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up", "down":
			t.setFocus(1 - t.focus)
			return t, nil
		case "enter":
			t.submit(context.Background())
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.inputs[t.focus], cmd = t.inputs[t.focus].Update(msg)
	return t, cmd
}

func (t *converterTab) setFocus(i int) {
	t.inputs[t.focus].Blur()
	t.focus = i
	t.inputs[t.focus].Focus()
}

func (t *converterTab) setWidth(w int) {
	w = min(max(w-len(t.inputs[0].Prompt)-2, 16), 64)
	for i := range t.inputs {
		t.inputs[i].Width = w
	}
}

// submit converts the focused field.
func (t *converterTab) submit(ctx context.Context) {
	switch t.focus {
	case polkaField:
		t.view.PolkaInput = t.inputs[polkaField].Value()
		t.view.PolkaToEth(ctx)
	case ethField:
		t.view.EthInput = t.inputs[ethField].Value()
		t.view.EthToPolka(ctx)
	}
}

func (t converterTab) View(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Address converter"))
	b.WriteString("\n")
	if !t.view.Ready && t.view.Error == "" {
		b.WriteString(st.Warning.Render("Loading Polkadot crypto libraries..."))
		b.WriteString("\n\n")
	}

	b.WriteString(st.Label.Render("Polkadot -> Ethereum"))
	b.WriteString("\n" + t.inputs[polkaField].View() + "\n")
	if t.view.EthOutput != "" {
		b.WriteString(st.Label.Render("Ethereum address: ") + st.Output.Render(t.view.EthOutput) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Label.Render(fmt.Sprintf("Ethereum -> Polkadot (format %d)", t.view.Format())))
	b.WriteString("\n" + t.inputs[ethField].View() + "\n")
	if t.view.PolkaOutput != "" {
		b.WriteString(st.Label.Render("SS58 address: ") + st.Output.Render(t.view.PolkaOutput) + "\n")
	}

	if t.view.PublicKey != "" {
		b.WriteString("\n" + st.Label.Render("Public key: ") + t.view.PublicKey + "\n")
	}
	if t.view.Error != "" {
		b.WriteString("\n" + st.Error.Render(t.view.Error) + "\n")
	}
	return b.String()
}
