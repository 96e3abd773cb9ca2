package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/middleware"
	"github.com/peaceoutommy/DMA-API/internal/pkg/logging"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

const (
	envAppEnv     = "ENV"
	envKey        = "KEY"
	envProduction = "production"
	configFile    = "config.json"
)

// Setup loads the environment and the config file, then configures logging.
func Setup() (*config.Config, error) {
	appEnv := os.Getenv(envAppEnv)
	if appEnv != envProduction {
		if err := env.Load(".env"); err != nil {
			return nil, fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	out := logging.NewWriter(logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   true,
	})
	logging.SetupLogger(appEnv, cfg.Log.Level, out)

	return cfg, nil
}

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cfg, err := Setup()
	if err != nil {
		return err
	}

	creds, err := db.CredentialsFromEnv()
	if err != nil {
		return err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(creds, db.MigrateUp); err != nil && !errors.Is(err, db.ErrNoChange) {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	dbConn, err := db.Connect(signalCtx, cfg.DB, creds)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf("environment variable is not set: %s", envKey)
	}

	provider, err := newProvider(signalCtx, cfg, securityKey, dbConn)
	if err != nil {
		return err
	}
	defer provider.Close()

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares returns the global middleware chain in the order it is applied.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.CORS.AllowedOrigin),
		middleware.ContextGuard,
		middleware.CheckContentType,
	}
}
