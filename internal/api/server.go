package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"hellod/internal/config"
)

// Server represents the HTTP demo server
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	handler http.Handler
	addr    string
	logger  *slog.Logger
	routes  []Route
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		addr:   cfg.Server.Addr(),
		logger: logger,
		router: http.NewServeMux(),
	}

	s.registerRoutes()

	handler, err := s.applyMiddleware(s.router, cfg.Compression)
	if err != nil {
		return nil, err
	}
	s.handler = handler
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      handler,
		ReadTimeout:  config.Timeout(cfg.Server.ReadTimeoutMs),
		WriteTimeout: config.Timeout(cfg.Server.WriteTimeoutMs),
		IdleTimeout:  config.Timeout(cfg.Server.IdleTimeoutMs),
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s, nil
}

// Start binds the listen address and serves until Shutdown. A bind failure is
// returned immediately.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", "addr", ln.Addr().String())

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully")
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// Routes returns the registered routes in registration order
func (s *Server) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler, compression config.CompressionConfig) (http.Handler, error) {
	compress, err := CompressionMiddleware(compression)
	if err != nil {
		return nil, err
	}

	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = compress(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	return handler, nil
}
