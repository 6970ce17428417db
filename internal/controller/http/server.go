package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	"PoliceDigest/internal/usecase"
)

// Server is the dashboard API.
type Server struct {
	*http.Server
	router  chi.Router
	session *usecase.Session
	now     func() time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithClock replaces the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer builds the router over a session.
func NewServer(ctx context.Context, addr string, session *usecase.Session, opts ...Option) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		session: session,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/digest", s.handleDigest)
		r.Post("/digest", s.handleProcess)
		r.Get("/clusters", s.handleClusters)
		r.Get("/clusters/{id}", s.handleCluster)
		r.Get("/alerts", s.handleAlerts)
		r.Delete("/alerts/{id}", s.handleDismiss)
		r.Get("/analytics", s.handleAnalytics)
		r.Get("/report", s.handleReport)
		r.Get("/exports", s.handleExports)
	})

	ctxlog.From(ctx).Debug("dashboard API routes mounted", "addr", addr)
	return s
}

// LoggingMiddleware puts the server logger into each request context and
// logs one line per request.
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(ctxlog.With(r.Context(), ctxlog.From(ctx)))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			ctxlog.From(r.Context()).Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
