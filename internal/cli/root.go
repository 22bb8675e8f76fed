// Package cli contains the cogctl command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/config"
	"github.com/blaisecz/cogni-tracker/internal/langfuse"
	"github.com/blaisecz/cogni-tracker/internal/llm"
	"github.com/blaisecz/cogni-tracker/internal/logging"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/blaisecz/cogni-tracker/internal/seed"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Env is what the commands operate on.
type Env struct {
	Config    *config.Config
	Log       *zap.Logger
	Analytics service.AnalyticsService
	Export    service.ExportService
	Langfuse  langfuse.Client
	Seed      func(ctx context.Context) (seed.Result, error)
	Close     func()
}

// Opener builds an Env for one command invocation.
type Opener func(ctx context.Context) (*Env, error)

type globalFlags struct {
	noColor bool
}

// NewRootCmd builds the cogctl command tree. Commands call open lazily, so
// --help never touches the database.
func NewRootCmd(open Opener) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "cogctl",
		Short: "Operate a Cogni Tracker database",
		Long: `cogctl seeds demo data, renders period reports and moves a user's
records in and out of the store as JSON documents.

Configuration is read from the environment and .env, like the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newSeedCmd(open),
		newReportCmd(open, flags),
		newExportCmd(open),
		newImportCmd(open, flags),
		newLangfusePingCmd(open),
	)
	return root
}

// Execute runs cogctl against the configured database.
func Execute() {
	if err := NewRootCmd(OpenDatabase).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// OpenDatabase connects to the configured database and wires the services.
func OpenDatabase(ctx context.Context) (*Env, error) {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	emaRepo := repository.NewEMARepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	policy := llm.FallbackPolicy{
		Message: cfg.CoachFallbackMessage,
		Timeout: time.Duration(cfg.CoachTimeoutSeconds) * time.Second,
	}
	gen := llm.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)

	return &Env{
		Config:    cfg,
		Log:       log,
		Analytics: service.NewAnalyticsService(userRepo, emaRepo, sessionRepo, gen, policy, log),
		Export:    service.NewExportService(userRepo, emaRepo, sessionRepo, repository.NewTransactor(db), log),
		Langfuse: langfuse.NewClient(langfuse.Config{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			Environment: cfg.LangfuseEnv,
			Logger:      log,
		}),
		Seed: func(ctx context.Context) (seed.Result, error) {
			return seed.Run(ctx, userRepo, emaRepo, sessionRepo, log)
		},
		Close: func() {
			_ = log.Sync()
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}

func withEnv(cmd *cobra.Command, open Opener, fn func(env *Env) error) error {
	env, err := open(cmd.Context())
	if err != nil {
		return err
	}
	if env.Close != nil {
		defer env.Close()
	}
	return fn(env)
}

func parseUser(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--user must be a UUID: %w", err)
	}
	return id, nil
}
