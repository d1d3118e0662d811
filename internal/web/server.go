// Package web serves the browser front end as static files.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/san-kum/energycalc/internal/config"
)

// ErrIndexMissing is returned by New when the root has no entry file.
var ErrIndexMissing = errors.New("web: index file not found")

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg      config.ServerConfig
	root     string
	log      zerolog.Logger
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	handler  http.Handler
}

func New(cfg config.ServerConfig, logger zerolog.Logger) (*Server, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("web: resolve root: %w", err)
	}
	index := filepath.Join(root, cfg.Index)
	if st, err := os.Stat(index); err != nil || st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIndexMissing, index)
	}

	s := &Server{
		cfg:      cfg,
		root:     root,
		log:      logger.With().Str("component", "web").Logger(),
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "energycalc",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Static file requests by method and status code.",
			},
			[]string{"method", "code"},
		),
	}
	s.registry.MustRegister(s.requests)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.Handle("/", s.instrument(http.FileServer(http.Dir(root))))
	s.handler = mux
	return s, nil
}

// Root is the absolute directory being served.
func (s *Server) Root() string { return s.root }

func (s *Server) Handler() http.Handler { return s.handler }

// URL returns the browser address of the entry file.
func (s *Server) URL() string {
	host, port, err := net.SplitHostPort(s.cfg.Addr)
	if err != nil {
		return "http://" + s.cfg.Addr + "/" + s.cfg.Index
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/" + s.cfg.Index
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Str("root", s.root).Msg("serving")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web: shutdown: %w", err)
		}
		s.log.Info().Msg("server stopped")
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
