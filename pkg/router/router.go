package router

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type Router struct {
	mux *mux.Router
}

func New() *Router {
	r := &Router{mux: mux.NewRouter()}
	r.mux.Use(loggingMiddleware)
	r.mux.NotFoundHandler = loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	r.mux.MethodNotAllowedHandler = loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}))
	return r
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	r.mux.HandleFunc(path, handler).Methods(method)
}

func (r *Router) GET(path string, handler HandlerFunc)  { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }

// Mount serves every path under prefix with h (any method).
func (r *Router) Mount(prefix string, h http.Handler) {
	r.mux.PathPrefix(prefix).Handler(h)
}

// Handler exposes the router for http.Server and httptest.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---

// Start serves on addr until SIGINT/SIGTERM, then drains for up to shutdownTimeout.
func (r *Router) Start(addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("🚀 Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, req)

		event := log.Info()
		switch {
		case lrw.statusCode >= 500:
			event = log.Error()
		case lrw.statusCode >= 400:
			event = log.Warn()
		}
		event.
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", lrw.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote_addr", req.RemoteAddr).
			Msg("HTTP request")
	})
}
