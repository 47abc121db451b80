package webui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"techangel/internal/chart"
	"techangel/internal/domain"
	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Title string
	Page  string

	Converter *converter.View
	Format    domain.SS58Format

	Regression regression.Snapshot
	Models     []domain.ModelInfo

	Debug string
}

var pageFuncs = template.FuncMap{
	"salary": func(v float64) string {
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	},
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
}

func parsePages() (*template.Template, error) {
	return template.New("pages").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html")
}

// render executes a page into a buffer so template errors never produce a
// half-written response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	buf := new(bytes.Buffer)
	if err := s.pages.ExecuteTemplate(buf, name, data); err != nil {
		serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.html", pageData{Title: "Tech Angel", Page: "index"})
}

func (s *Server) converterPageHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.syncReady(sess.converter)
	s.render(w, r, "converter.html", pageData{
		Title:     "Address converter",
		Page:      "converter",
		Converter: sess.converter,
		Format:    sess.converter.Format(),
	})
}

func (s *Server) converterToEVMHandler(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, func(v *converter.View) {
		v.PolkaInput = r.PostFormValue("polka")
		v.PolkaToEth(r.Context())
	})
}

func (s *Server) converterToSS58Handler(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, func(v *converter.View) {
		v.EthInput = r.PostFormValue("eth")
		v.EthToPolka(r.Context())
	})
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request, apply func(*converter.View)) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	s.syncReady(sess.converter)
	apply(sess.converter)
	sess.mu.Unlock()

	http.Redirect(w, r, "/converter", http.StatusSeeOther)
}

func (s *Server) regressionPageHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	snap := sess.regression.Snapshot()
	sess.mu.Unlock()

	s.render(w, r, "regression.html", pageData{
		Title:      "Salary regression",
		Page:       "regression",
		Regression: snap,
		Models:     s.opts.Regression.Models(),
	})
}

func (s *Server) regressionModelHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name, err := regression.ParseModel(r.PostFormValue("model"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	err = sess.regression.SelectModel(name)
	sess.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	http.Redirect(w, r, "/regression", http.StatusSeeOther)
}

func (s *Server) regressionDetailsHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	sess.regression.ToggleDetails()
	sess.mu.Unlock()
	http.Redirect(w, r, "/regression", http.StatusSeeOther)
}

func (s *Server) regressionRegenerateHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	sess.regression.Regenerate()
	sess.mu.Unlock()
	http.Redirect(w, r, "/regression", http.StatusSeeOther)
}

func (s *Server) regressionChartHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	snap := sess.regression.Snapshot()
	var all map[domain.ModelName][]domain.Prediction
	if r.URL.Query().Get("all") != "" {
		all = sess.regression.Curves()
	}
	sess.mu.Unlock()

	curves := []chart.Curve{{Model: snap.Selected, Label: snap.Info.Title, Points: snap.Curve}}
	if all != nil {
		curves = curves[:0]
		for _, info := range s.opts.Regression.Models() {
			curves = append(curves, chart.Curve{Model: info.Name, Label: info.Title, Points: all[info.Name]})
		}
	}

	opts := s.opts.Chart
	opts.Title = "Salary vs experience"
	buf := new(bytes.Buffer)
	if err := chart.Render(buf, chart.SVG, snap.Samples, curves, opts); err != nil {
		serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", chart.SVG.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
