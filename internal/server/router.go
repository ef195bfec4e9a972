// Package server sets up the Fetcharr server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fetcharr/internal/contracts"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// serverStore bundles the dependencies the handlers need.
type serverStore struct {
	hs       contracts.HistoryStore
	ex       contracts.Extractor
	pv       contracts.Previewer
	settings *models.Settings
}

// NewRouter returns an http Handler covering the API and static frontend.
func NewRouter(s contracts.Store, ex contracts.Extractor, pv contracts.Previewer, settings *models.Settings) http.Handler {
	ss := serverStore{
		hs:       s.HistoryStore(),
		ex:       ex,
		pv:       pv,
		settings: settings,
	}

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Static Frontend ---
	// Serve the web UI for non-API routes.
	r.Handle("/*", StaticHandler())

	// --- API Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/formats", ss.handleFormats)
		r.Post("/download", ss.handleDownload)
		r.Post("/preview", ss.handlePreview)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", ss.handleListHistory)
			r.Delete("/", ss.handleClearHistory)
		})

		r.Get("/healthz", ss.handleHealthz)
	})

	return r
}

// StartServer starts the HTTP server and blocks until ctx is canceled or the
// listener fails.
func StartServer(ctx context.Context, s contracts.Store, ex contracts.Extractor, pv contracts.Previewer, settings *models.Settings) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", settings.Port),
		Handler: NewRouter(s, ex, pv, settings),
	}

	errCh := make(chan error, 1)
	go func() {
		logging.S("Fetcharr web server running on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), consts.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logging.I("Fetcharr web server shut down")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}

// StaticHandler serves the web UI.
func StaticHandler() http.Handler {
	fs := http.FileServer(http.Dir("./web"))
	return http.StripPrefix("/", fs)
}
