package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"listingseo/internal/platform/config"
	perr "listingseo/internal/platform/errors"
	"listingseo/internal/platform/logger"
)

// Server is a chi mux behind a stdlib http.Server
type Server struct {
	mux      *chi.Mux
	srv      *stdhttp.Server
	ln       net.Listener
	drainFor time.Duration
}

// NewServer reads PORT, READ_HEADER_TIMEOUT and SHUTDOWN_TIMEOUT from cfg.
// opts receive the mux before any route is mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              cfg.MayAddr("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
		drainFor: cfg.MayDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Router returns the mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the bound address once listening, the configured one before
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Listen binds the configured address
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(s.ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), s.drainFor)
		defer cancel()
		log.Info().Dur("drain", s.drainFor).Msg("http shutting down")
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
