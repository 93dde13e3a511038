// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package distserve

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/cactus/go-distserve/pkg/router"
	"github.com/cactus/go-distserve/pkg/stats"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"
)

// Config holds configuration data used when creating a Server with New.
type Config struct {
	// RootDir is the build output directory to serve. Relative paths are
	// resolved against the working directory.
	RootDir string
	// Listen is the address:port to bind to.
	Listen string
	// ServerName used in the Server response header.
	ServerName string
	// AddHeaders are extra headers set on every response, in addition to
	// the CORS headers.
	AddHeaders map[string]string
	// MaxConns caps the number of concurrent connections accepted by the
	// listener. Zero means no cap.
	MaxConns int
	// ReadTimeout for the underlying http.Server. Zero picks a default.
	ReadTimeout time.Duration
	// EnableStats exposes running counters at /status.
	EnableStats bool
	// EnableMetrics exposes prometheus metrics at /metrics.
	EnableMetrics bool
}

// A Server serves a build output directory over HTTP, stamping CORS
// headers on every response. Listen is split from Serve so that bind
// failures surface synchronously, before the accept loop starts.
type Server struct {
	config  *Config
	handler *FileHandler
	stats   *stats.ServerStats
	srv     *http.Server
	ln      net.Listener
}

// New returns a new Server. Returns an error if the build output
// directory is missing, or the Server could not be constructed.
func New(sc Config) (*Server, error) {
	if sc.Listen == "" {
		sc.Listen = "localhost:8000"
	}
	if sc.RootDir == "" {
		sc.RootDir = "dist"
	}
	if sc.ReadTimeout == 0 {
		sc.ReadTimeout = 30 * time.Second
	}

	root, err := filepath.Abs(sc.RootDir)
	if err != nil {
		return nil, err
	}
	sc.RootDir = root

	fh, err := NewFileHandler(sc.RootDir)
	if err != nil {
		return nil, err
	}

	addHeaders := make(map[string]string, len(corsHeaders)+len(sc.AddHeaders))
	for k, v := range corsHeaders {
		addHeaders[k] = v
	}
	for k, v := range sc.AddHeaders {
		addHeaders[k] = v
	}

	dumbrouter := &router.DumbRouter{
		ServerName:  sc.ServerName,
		AddHeaders:  addHeaders,
		FileHandler: fh,
	}

	s := &Server{
		config:  &sc,
		handler: fh,
	}

	if sc.EnableStats {
		ss := &stats.ServerStats{}
		fh.SetMetricsCollector(ss)
		dumbrouter.StatsHandler = stats.Handler(ss)
		s.stats = ss
	}

	if sc.EnableMetrics {
		dumbrouter.MetricsHandler = promhttp.Handler()
	}

	s.srv = &http.Server{
		Addr:        sc.Listen,
		Handler:     dumbrouter,
		ReadTimeout: sc.ReadTimeout,
	}

	return s, nil
}

// Root returns the resolved directory files are served from.
func (s *Server) Root() string {
	return s.handler.Root()
}

// Handler returns the root http.Handler (the router wrapping the file
// handler), mostly useful for testing without a bound listener.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the bound listener address, or the configured address if
// the listener is not yet bound. Useful when binding port 0.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.config.Listen
	}
	return s.ln.Addr().String()
}

// Listen binds the configured address. A failure here (port already in
// use, bad address) is returned as an error rather than surfacing later
// from the serve loop.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("could not bind %s: %w", s.config.Listen, err)
	}
	if s.config.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.config.MaxConns)
	}
	s.ln = ln
	return nil
}

// Serve accepts and serves requests on the bound listener, blocking until
// Shutdown is called or the server fails. It binds first if Listen was not
// called. Returns http.ErrServerClosed after a clean Shutdown.
func (s *Server) Serve() error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	return s.srv.Serve(s.ln)
}

// Shutdown gracefully shuts down the server: the listener is closed, and
// in-flight requests are given until the context deadline to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
