package app

import (
	"techangel/internal/chart"
	"techangel/internal/domain"
	"techangel/internal/webui"
)

// NewServer builds the web UI from the wired services. debug exposes
// GET /debug/state.
func (w *Wire) NewServer(debug bool) (*webui.Server, error) {
	idle, err := w.Config.GetSessionIdle()
	if err != nil {
		return nil, err
	}
	return webui.New(webui.Options{
		Addr:        w.Config.Listen,
		Converter:   w.Converter,
		Regression:  w.Regression,
		Gate:        w.Gate,
		Format:      domain.SS58Format(w.Config.SS58Format),
		Seeds:       w.SeedSource,
		SessionIdle: idle,
		Chart:       chart.Options{Width: w.Config.Chart.Width, Height: w.Config.Chart.Height},
		Debug:       debug,
		Log:         w.Log,
	})
}
