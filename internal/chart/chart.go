// Package chart draws the regression demo: the noisy samples as a scatter
// plot and one or more model curves as lines, with axes and a legend.
package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"techangel/internal/domain"
)

// Format is the output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat resolves a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Curve is one model's predictions, drawn as a line.
type Curve struct {
	Model  domain.ModelName
	Label  string
	Points []domain.Prediction
}

// Options controls the canvas.
type Options struct {
	Width  int
	Height int
	Title  string
}

var (
	sampleColor = drawing.ColorFromHex("6b7280")
	curveColors = map[domain.ModelName]drawing.Color{
		domain.ModelLinear:        drawing.ColorFromHex("4f46e5"),
		domain.ModelPolynomial:    drawing.ColorFromHex("9333ea"),
		domain.ModelDecisionTree:  drawing.ColorFromHex("db2777"),
		domain.ModelNeuralNetwork: drawing.ColorFromHex("059669"),
	}
)

// pointStyle renders points only (no connecting line)
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: 2.5,
		StrokeColor: col,
	}
}

// salary formats axis values as "$75k".
func salary(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.0fk", f/1000)
	}
	return ""
}

// Render writes the chart for samples and curves to w.
func Render(w io.Writer, format Format, samples []domain.Sample, curves []Curve, opts Options) error {
	if len(samples) < 2 {
		return fmt.Errorf("chart needs at least two samples, got %d", len(samples))
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.Experience)
		ys[i] = s.Actual
	}
	series := []gochart.Series{
		gochart.ContinuousSeries{Name: "Actual salary", XValues: xs, YValues: ys, Style: pointStyle(sampleColor)},
	}

	for _, c := range curves {
		cx := make([]float64, len(c.Points))
		cy := make([]float64, len(c.Points))
		for i, p := range c.Points {
			cx[i] = float64(p.Experience)
			cy[i] = p.Predicted
		}
		col, ok := curveColors[c.Model]
		if !ok {
			col = gochart.ColorAlternateGray
		}
		label := c.Label
		if label == "" {
			label = string(c.Model)
		}
		series = append(series, gochart.ContinuousSeries{Name: label, XValues: cx, YValues: cy, Style: lineStyle(col)})
	}

	ch := gochart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: "Years of experience"},
		YAxis:      gochart.YAxis{Name: "Salary", ValueFormatter: salary},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	switch format {
	case SVG:
		return ch.Render(gochart.SVG, w)
	case PNG:
		return ch.Render(gochart.PNG, w)
	}
	return fmt.Errorf("unsupported chart format %q", format)
}
