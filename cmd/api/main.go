// Cogni Tracker API
//
// REST API for cognitive training check-ins, game sessions and analytics.
//
//	@title			Cogni Tracker API
//	@version		1.0
//	@description	Record mood and sleep check-ins and cognitive game sessions, then read analytics, reports and AI coaching.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			emas
//	@tag.description	Mood, sleep and context check-ins
//
//	@tag.name			sessions
//	@tag.description	Cognitive game session results
//
//	@tag.name			analytics
//	@tag.description	Analytics, profile statistics and period reports
//
//	@tag.name			coach
//	@tag.description	AI coaching replies and feedback
//
//	@tag.name			export
//	@tag.description	Data export and import
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/api"
	"github.com/blaisecz/cogni-tracker/internal/api/handler"
	"github.com/blaisecz/cogni-tracker/internal/config"
	"github.com/blaisecz/cogni-tracker/internal/langfuse"
	"github.com/blaisecz/cogni-tracker/internal/llm"
	"github.com/blaisecz/cogni-tracker/internal/logging"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/blaisecz/cogni-tracker/internal/seed"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "cogni-tracker-api", log)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Info("database migration completed")

	userRepo := repository.NewUserRepository(db)
	emaRepo := repository.NewEMARepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	if cfg.Seed {
		log.Info("seeding database with sample data", zap.Bool("seed", cfg.Seed))
		if _, err := seed.Run(ctx, userRepo, emaRepo, sessionRepo, log); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	gen := llm.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if gen == nil {
		log.Warn("OpenAI API key not configured, coach and narratives will use the fallback message")
	}
	policy := llm.FallbackPolicy{
		Message: cfg.CoachFallbackMessage,
		Timeout: time.Duration(cfg.CoachTimeoutSeconds) * time.Second,
	}

	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})
	prompts := langfuse.NewPromptLoader(langfuse.PromptLoaderConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		Name:      cfg.CoachPromptName,
		Label:     cfg.CoachPromptLabel,
		CachePath: cfg.CoachPromptPath,
		Default:   service.DefaultCoachPrompt,
		Logger:    log,
	})
	// Resolve the coach prompt before serving.
	prompts.Prompt(ctx)

	userService := service.NewUserService(userRepo, log)
	emaService := service.NewEMAService(emaRepo, userRepo)
	sessionService := service.NewSessionService(sessionRepo, emaRepo, userRepo,
		time.Duration(cfg.EMALinkWindowMinutes)*time.Minute)
	analyticsService := service.NewAnalyticsService(userRepo, emaRepo, sessionRepo, gen, policy, log)
	coachService := service.NewCoachService(userRepo, emaRepo, sessionRepo, gen, policy, lf, prompts, log)
	// Runs before the tracer shutdown registered above.
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := coachService.Close(ctx); err != nil {
			log.Warn("langfuse traces not drained", zap.Error(err))
		}
	}()
	exportService := service.NewExportService(userRepo, emaRepo, sessionRepo, repository.NewTransactor(db), log)

	router := api.NewRouter(api.Handlers{
		User:      handler.NewUserHandler(userService),
		EMA:       handler.NewEMAHandler(emaService),
		Session:   handler.NewSessionHandler(sessionService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Coach:     handler.NewCoachHandler(coachService),
		Export:    handler.NewExportHandler(exportService),
	}, log, cfg.MetricsEnabled)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
