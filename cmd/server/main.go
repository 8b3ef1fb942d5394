package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/P-Pranath/Unora-app/internal/api"
	"github.com/P-Pranath/Unora-app/internal/engine"
	"github.com/P-Pranath/Unora-app/internal/infrastructure/config"
	"github.com/P-Pranath/Unora-app/internal/service"
	"github.com/P-Pranath/Unora-app/internal/store"
	"github.com/P-Pranath/Unora-app/internal/summary"

	_ "github.com/P-Pranath/Unora-app/docs" // generated swagger docs
)

// @title           Unora Personality API
// @version         1.0
// @description     Adaptive personality assessment — serve scenario questions, update belief state, and generate discovery-card summaries.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	generator := summary.NewGenerator(
		summary.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.LLMURL, cfg.LLMModel),
		logger,
	)
	assessments := service.NewAssessmentService(db, engine.New(logger), generator, logger)
	handler := api.NewHandler(assessments, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger, api.CORS(mux))

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

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
