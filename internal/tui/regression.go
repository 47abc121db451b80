package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"techangel/internal/domain"
	"techangel/internal/services/regression"
)

type regressionTab struct {
	view     *regression.View
	models   []domain.ModelInfo
	renderer *glamour.TermRenderer
}

func newRegressionTab(v *regression.View, models []domain.ModelInfo, style string) regressionTab {
	// A nil renderer falls back to plain markdown.
	r, _ := glamour.NewTermRenderer(rendererOptions(style)...)
	return regressionTab{view: v, models: models, renderer: r}
}

func rendererOptions(style string) []glamour.TermRendererOption {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if style == "" {
		return append(opts, glamour.WithAutoStyle())
	}
	return append(opts, glamour.WithStandardStyle(style))
}

// HandleKey applies a regression key binding and reports whether it matched.
func (t regressionTab) HandleKey(key string) bool {
	switch key {
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(t.models) {
			_ = t.view.SelectModel(t.models[i].Name)
		}
	case "d":
		t.view.ToggleDetails()
	case "r":
		t.view.Regenerate()
	default:
		return false
	}
	return true
}

func (t regressionTab) View(st Styles) string {
	snap := t.view.Snapshot()

	var b strings.Builder
	b.WriteString(st.Title.Render("Salary regression"))
	b.WriteString("\n")

	buttons := make([]string, 0, len(t.models))
	for i, m := range t.models {
		label := fmt.Sprintf("%d %s", i+1, m.Title)
		if m.Name == snap.Selected {
			buttons = append(buttons, st.Selected.Render(label))
		} else {
			buttons = append(buttons, st.Button.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")

	b.WriteString(samplesTable(snap.Curve))
	b.WriteString("\n")
	b.WriteString(st.Label.Render(fmt.Sprintf("seed %d  MAE $%.0f  RMSE $%.0f  R² %.2f",
		snap.Seed, snap.Score.MAE, snap.Score.RMSE, snap.Score.R2)))
	b.WriteString("\n")
	b.WriteString(t.describe(snap.Info, snap.ShowDetails))
	return b.String()
}

func samplesTable(curve []domain.Prediction) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Years", "Actual", "Predicted")
	for _, p := range curve {
		tbl.Row(fmt.Sprint(p.Experience), fmt.Sprintf("$%.0f", p.Actual), fmt.Sprintf("$%.0f", p.Predicted))
	}
	return tbl.String()
}

func (t regressionTab) describe(info domain.ModelInfo, details bool) string {
	md := Markdown(info, details)
	if t.renderer == nil {
		return md
	}
	out, err := t.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Markdown renders a model description; details adds the long form with
// pros and cons.
func Markdown(info domain.ModelInfo, details bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n`%s`\n", info.Title, info.Summary, info.Equation)
	if !details {
		return b.String()
	}
	fmt.Fprintf(&b, "\n%s\n\n### Pros\n\n", info.Details)
	for _, p := range info.Pros {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\n### Cons\n\n")
	for _, c := range info.Cons {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	return b.String()
}
