// package server contains middleware & handlers for the track sharing web service
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wvclb/internal/paint"
	"github.com/desertthunder/wvclb/internal/services"
	"github.com/desertthunder/wvclb/internal/shared"
	"golang.org/x/time/rate"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, request ids, recovery and rate limiting.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the track service.
// Implementations handle specific endpoints (tracks, uploads, paint sessions).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the method-qualified patterns this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

const shutdownTimeout = 10 * time.Second

// Options configures a [Server].
type Options struct {
	Addr        string
	Catalog     services.Catalog
	UploadsDir  string
	MaxUpload   int64   // bytes accepted per upload body
	UploadRPS   float64 // uploads per second; <= 0 disables limiting
	UploadBurst int
	Paint       paint.Options
	Logger      *log.Logger
}

// Server is the HTTP surface: track listing, uploads, stored audio and paint sessions.
type Server struct {
	http   *http.Server
	router *BasicRouter
	paint  *PaintSessions
	logger *log.Logger
}

// New wires every handler onto a fresh [BasicRouter].
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("%w: catalog is required", shared.ErrInvalidArgument)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	logger := shared.WithLogger(opts.Logger, "component", "server")

	router := NewBasicRouter()
	router.Use(Recover(logger), RequestID(), Logging(logger))

	var limiter *rate.Limiter
	if opts.UploadRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.UploadRPS), max(opts.UploadBurst, 1))
	}

	sessions := NewPaintSessions(opts.Paint, logger)
	router.Handler(NewTracksHandler(opts.Catalog, logger))
	router.Handler(NewUploadHandler(opts.Catalog, opts.MaxUpload, limiter, logger))
	router.Handler(NewUploadsHandler(opts.UploadsDir))
	router.Handler(sessions)
	router.HandleFunc(http.MethodGet, "/api/health", Health)

	return &Server{
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		paint:  sessions,
		logger: logger,
	}, nil
}

// ServeHTTP lets tests drive the full middleware stack without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// Sessions exposes the paint session registry.
func (s *Server) Sessions() *PaintSessions { return s.paint }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.http.Addr)
		err := s.http.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.paint.CloseAll()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-serverErr
	}
}
