package webui

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"techangel/internal/chart"
	"techangel/internal/domain"
	"techangel/internal/logging"
	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr       string
	Converter  domain.ConverterService
	Regression domain.RegressionService
	Gate       domain.ReadinessGate
	// Format is the network prefix used for H160 -> SS58.
	Format domain.SS58Format
	// Seeds returns the seed supplier for a new session. Each session gets
	// its own, so a fixed seed gives every browser the same first dataset.
	// nil draws random ones.
	Seeds       func() func() uint64
	SessionIdle time.Duration
	Chart       chart.Options
	// Debug exposes GET /debug/state.
	Debug bool
	Log   *zap.Logger
}

// Server is the web UI and JSON API.
type Server struct {
	opts     Options
	log      *zap.Logger
	sessions *sessionStore
	pages    *template.Template
	router   *httprouter.Router
}

// New validates opts and builds the router.
func New(opts Options) (*Server, error) {
	if opts.Converter == nil || opts.Regression == nil || opts.Gate == nil {
		return nil, errors.New("webui: converter, regression and gate are required")
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.SessionIdle <= 0 {
		opts.SessionIdle = 30 * time.Minute
	}
	if opts.Chart.Width == 0 {
		opts.Chart.Width = 900
	}
	if opts.Chart.Height == 0 {
		opts.Chart.Height = 420
	}

	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		opts:  opts,
		log:   opts.Log.Named("webui"),
		pages: pages,
	}
	s.sessions = newSessionStore(opts.SessionIdle, s.newSession)
	s.router = s.routes()
	return s, nil
}

func (s *Server) newSession(id string) *session {
	var seeds func() uint64
	if s.opts.Seeds != nil {
		seeds = s.opts.Seeds()
	}
	return &session{
		id:         id,
		converter:  converter.NewView(s.opts.Converter, s.opts.Format),
		regression: regression.NewView(s.opts.Regression, seeds),
	}
}

// Handler returns the router wrapped in the access log.
func (s *Server) Handler() http.Handler {
	return accessLog(s.log, s.router)
}

// Serve listens on opts.Addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled. The crypto gate is
// initialized alongside; requests arriving before it resolves get a not-ready
// answer.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.opts.Gate.WaitReady(gctx)
		switch {
		case err == nil:
			logging.LogOperation(s.log, "crypto ready")
		case gctx.Err() != nil:
		default:
			// Keep serving: the converter reports the failure per request.
			logging.LogError(s.log, "crypto initialization failed", err)
		}
		return nil
	})

	g.Go(func() error {
		logging.LogOperation(s.log, "listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		t := time.NewTicker(s.opts.SessionIdle / 2)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				if n := s.sessions.prune(); n > 0 {
					s.log.Debug("pruned sessions", zap.Int("count", n))
				}
			}
		}
	})

	return g.Wait()
}

// syncReady resolves a session's converter readiness from the gate.
func (s *Server) syncReady(v *converter.View) {
	if v.Ready {
		return
	}
	if s.opts.Converter.Ready() {
		v.SetReady(nil)
		return
	}
	if err := s.opts.Gate.Err(); err != nil {
		v.SetReady(err)
	}
}
