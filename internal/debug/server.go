// Package debug поднимает отладочный HTTP-сервер: снимок матча в JSON и pprof.
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"bonfire-defense/internal/config"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes собирает роутер отладочного сервера.
func Routes(feed *Feed, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(recovery(log))
	r.Use(requestLogger(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", func(w http.ResponseWriter, r *http.Request) {
			snap := feed.Latest()
			if snap == nil {
				respondError(w, http.StatusServiceUnavailable, "no match running")
				return
			}
			respondJSON(w, http.StatusOK, snap)
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Route("/debug/pprof", func(r chi.Router) {
		r.HandleFunc("/cmdline", pprof.Cmdline)
		r.HandleFunc("/profile", pprof.Profile)
		r.HandleFunc("/symbol", pprof.Symbol)
		r.HandleFunc("/trace", pprof.Trace)
		r.HandleFunc("/*", pprof.Index)
	})
	return r
}

// Serve слушает addr до отмены ctx.
func Serve(ctx context.Context, addr string, feed *Feed, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Routes(feed, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("debug server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("debug server shutdown: %w", err)
		}
		return nil
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("debug request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}

func recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("debug handler panic", zap.Any("panic", rec), zap.String("path", r.URL.Path))
					respondError(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Start запускает сервер в фоне, если он включён в настройках.
// Возвращает ленту снимков или nil, если сервер выключен.
func Start(ctx context.Context, cfg config.DebugSettings, log *zap.Logger) *Feed {
	if !cfg.Enabled {
		return nil
	}
	feed := NewFeed()
	go func() {
		if err := Serve(ctx, cfg.Addr, feed, log); err != nil {
			log.Error("debug server stopped", zap.Error(err))
		}
	}()
	return feed
}
