package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"techangel/internal/domain"
)

type debugState struct {
	Session  string
	Sessions int

	PolkaInput  string
	EthInput    string
	EthOutput   string
	PolkaOutput string
	PublicKey   string
	Error       string
	Ready       bool

	Selected    domain.ModelName
	ShowDetails bool
	Seed        uint64
	Samples     []domain.Sample
}

func (s *Server) debugStateHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(w, r)
	sess.mu.Lock()
	cv, rv := sess.converter, sess.regression
	state := debugState{
		Session:     sess.id,
		PolkaInput:  cv.PolkaInput,
		EthInput:    cv.EthInput,
		EthOutput:   cv.EthOutput,
		PolkaOutput: cv.PolkaOutput,
		PublicKey:   cv.PublicKey,
		Error:       cv.Error,
		Ready:       cv.Ready,
		Selected:    rv.Selected(),
		ShowDetails: rv.ShowDetails(),
		Seed:        rv.Seed(),
		Samples:     rv.Samples(),
	}
	sess.mu.Unlock()
	state.Sessions = s.sessions.len()

	s.render(w, r, "debug.html", pageData{
		Title: "Session state",
		Page:  "debug",
		Debug: spew.Sdump(state),
	})
}
