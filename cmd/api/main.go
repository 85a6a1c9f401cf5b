package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"bookstoretester/internal/book"
	"bookstoretester/internal/config"
	"bookstoretester/internal/httpx"
	"bookstoretester/internal/locale"
	"bookstoretester/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		logging.Setup("info").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// Built before the first request so a broken table fails at startup.
	table := locale.Default()
	slog.Info("locale table ready", "locales", len(table.Locales()))

	catalog := book.NewService(table, book.Defaults{
		Locale:     cfg.DefaultLocale,
		Seed:       cfg.DefaultSeed,
		AvgLikes:   cfg.DefaultAvgLikes,
		AvgReviews: cfg.DefaultAvgReviews,
		PageSize:   cfg.DefaultPageSize,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newHandler(cfg, catalog),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("starting server", "addr", cfg.Addr, "default_locale", cfg.DefaultLocale.Tag(), "default_seed", cfg.DefaultSeed)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newRouter registers every route on a fresh mux.
func newRouter(catalog book.Catalog) *http.ServeMux {
	bookHandler := book.NewHTTPHandler(catalog)

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /locales", bookHandler.Locales)
	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("GET /books/export.csv", bookHandler.Export)
	router.HandleFunc("GET /books/{index}", bookHandler.Get)
	return router
}

// newHandler wraps the router in the middleware stack, outermost first.
func newHandler(cfg config.Config, catalog book.Catalog) http.Handler {
	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	return httpx.Chain(newRouter(catalog),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.SecurityHeadersMiddleware(false),
		limiter.Middleware,
	)
}
