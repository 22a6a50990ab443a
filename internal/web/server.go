// Package web serves life calendars over HTTP. Chart inputs travel in the
// query string so every chart has a shareable URL.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/locale"
)

// Options configure a Server. Zero values select sensible defaults.
type Options struct {
	Logger    *zap.Logger
	Formatter lifechart.DateFormatter
	Horizon   int
	BaseURL   string
	Now       func() time.Time
}

// Server renders charts as HTML pages and JSON documents.
type Server struct {
	router    *mux.Router
	logger    *zap.Logger
	formatter lifechart.DateFormatter
	horizon   int
	baseURL   string
	now       func() time.Time
	page      *template.Template
}

// NewServer builds a Server and registers its routes.
func NewServer(opts Options) *Server {
	s := &Server{
		router:    mux.NewRouter().StrictSlash(true),
		logger:    opts.Logger,
		formatter: opts.Formatter,
		horizon:   lifechart.ClampHorizon(opts.Horizon),
		baseURL:   opts.BaseURL,
		now:       opts.Now,
		page:      template.Must(template.New("page").Funcs(templateFuncs).Parse(pageTemplate)),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.formatter == nil {
		s.formatter = locale.ISO()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.baseURL == "" {
		s.baseURL = "/"
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/api/chart", s.handleChartJSON).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the router wrapped with recovery, compression and access
// logging.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = handlers.CompressHandler(h)
	h = handlers.CustomLoggingHandler(io.Discard, h, s.logRequest)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(zapRecoveryLogger{s.logger}))(h)
	return h
}

func (s *Server) logRequest(_ io.Writer, p handlers.LogFormatterParams) {
	s.logger.Info("request",
		zap.String("method", p.Request.Method),
		zap.String("path", p.URL.Path),
		zap.Int("status", p.StatusCode),
		zap.Int("size", p.Size),
		zap.Duration("duration", time.Since(p.TimeStamp)),
	)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// zapRecoveryLogger adapts zap to handlers.RecoveryHandlerLogger.
type zapRecoveryLogger struct {
	logger *zap.Logger
}

func (l zapRecoveryLogger) Println(v ...any) {
	l.logger.Error("panic recovered", zap.String("detail", fmt.Sprint(v...)))
}
