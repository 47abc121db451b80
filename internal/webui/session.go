package webui

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

const sessionCookie = "techangel_session"

// session is the per-browser state. mu serializes requests of one browser.
type session struct {
	mu         sync.Mutex
	id         string
	converter  *converter.View
	regression *regression.View
	lastSeen   time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
	build    func(id string) *session
	now      func() time.Time
}

func newSessionStore(idle time.Duration, build func(id string) *session) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		idle:     idle,
		build:    build,
		now:      time.Now,
	}
}

// lookup returns the session named by the request cookie, creating one (and
// setting the cookie) when it is missing or expired.
func (st *sessionStore) lookup(w http.ResponseWriter, r *http.Request) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if s, ok := st.sessions[c.Value]; ok {
			if now.Sub(s.lastSeen) <= st.idle {
				s.lastSeen = now
				return s
			}
			delete(st.sessions, c.Value)
		}
	}

	s := st.build(uuid.NewString())
	s.lastSeen = now
	st.sessions[s.id] = s
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// prune drops sessions idle for longer than the configured duration.
func (st *sessionStore) prune() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.idle)
	n := 0
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
