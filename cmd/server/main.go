package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ruankao-prep/backend/internal/api"
	"github.com/ruankao-prep/backend/internal/content"
	"github.com/ruankao-prep/backend/internal/infrastructure/config"
	"github.com/ruankao-prep/backend/internal/prefs"
	"github.com/ruankao-prep/backend/internal/service"
	"github.com/ruankao-prep/backend/internal/store"

	_ "github.com/ruankao-prep/backend/docs" // generated swagger docs
)

// @title           RuanKao Prep API
// @version         1.0
// @description     软考备考服务 — browse the question bank, run practice sessions, and track study statistics and wrong answers.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	fsys, err := openContentSource(cfg.Content)
	if err != nil {
		logger.Error("failed to open content source", "error", err)
		os.Exit(1)
	}
	resolver := content.NewResolver(fsys, logger)

	userPrefs, err := prefs.Load(context.Background(), db, logger)
	if err != nil {
		logger.Error("failed to load preferences", "error", err)
		os.Exit(1)
	}

	practiceSvc := service.NewPracticeService(resolver, db, logger)
	handler := api.NewHandler(resolver, practiceSvc, db, userPrefs, cfg.Content.CDNBaseURL, logger)

	// Pre-decode the selected course's question sets so first navigation
	// does not pay the parse cost.
	if courseID, ok := userPrefs.SelectedCourseID(); ok {
		go func() {
			n := resolver.WarmCourse(courseID, cfg.Content.WarmupWorkers)
			logger.Info("cache warm-up finished", "course_id", courseID, "question_sets", n)
		}()
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORS.AllowedOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// openContentSource opens the configured question bank. An archive path
// takes precedence over a directory.
func openContentSource(cfg config.ContentConfig) (fs.FS, error) {
	if cfg.Archive != "" {
		fsys, _, err := content.NewZipSource(cfg.Archive)
		return fsys, err
	}
	return content.NewDirSource(cfg.Dir)
}
