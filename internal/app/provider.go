package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/platform/cache"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/hash"
	"github.com/peaceoutommy/DMA-API/internal/platform/jwt"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/platform/payment"
	"github.com/peaceoutommy/DMA-API/internal/platform/router"
	"github.com/peaceoutommy/DMA-API/internal/platform/validation"
)

const (
	MediaCloudinary = "cloudinary"
	MediaLocal      = "local"
)

type Provider struct {
	DB        *sql.DB
	TxMgr     db.TxManager
	Signer    jwt.Signer
	Hasher    hash.Hasher
	Validator validation.Validator
	Router    router.Router
	Store     media.Store
	Gateway   payment.Gateway
	Cache     cache.Cache
}

// Close releases the connections held by the provider's clients.
func (p *Provider) Close() {
	if rc, ok := p.Cache.(*cache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			slog.Error("failed to close redis client", "reason", err)
		}
	}
}

func newProvider(ctx context.Context, cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	hasher, err := hash.New(cfg.Hash, securityKey)
	if err != nil {
		return nil, fmt.Errorf("new hasher: %w", err)
	}

	store, err := newMediaStore(cfg.Media)
	if err != nil {
		return nil, err
	}

	gateway, err := newPaymentGateway()
	if err != nil {
		return nil, err
	}

	c, err := newCache(ctx)
	if err != nil {
		return nil, err
	}

	provider := &Provider{
		DB:        dbConn,
		TxMgr:     db.NewSQLTxManager(dbConn),
		Signer:    jwt.NewGolangJWTSigner(securityKey, cfg.JWT),
		Hasher:    hasher,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Store:     store,
		Gateway:   gateway,
		Cache:     c,
	}

	return provider, nil
}

//nolint:ireturn // the media provider is chosen by config
func newMediaStore(opts *config.MediaOptions) (media.Store, error) {
	switch opts.Provider {
	case MediaLocal:
		store, err := media.NewLocalStore(opts.LocalDir, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("new local media store: %w", err)
		}
		return store, nil
	case "", MediaCloudinary:
		cloudName, err := getEnv("CLOUDINARY_CLOUD_NAME")
		if err != nil {
			return nil, err
		}
		apiKey, err := getEnv("CLOUDINARY_API_KEY")
		if err != nil {
			return nil, err
		}
		apiSecret, err := getEnv("CLOUDINARY_API_SECRET")
		if err != nil {
			return nil, err
		}
		store, err := media.NewCloudinaryStore(cloudName, apiKey, apiSecret)
		if err != nil {
			return nil, fmt.Errorf("new cloudinary store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown media provider: %q", opts.Provider)
	}
}

func newPaymentGateway() (*payment.StripeGateway, error) {
	secretKey, err := getEnv("STRIPE_SECRET_KEY")
	if err != nil {
		return nil, err
	}
	webhookSecret, err := getEnv("STRIPE_WEBHOOK_SECRET")
	if err != nil {
		return nil, err
	}
	return payment.NewStripeGateway(secretKey, webhookSecret), nil
}

// newCache connects to redis when REDIS_ADDR is set and otherwise disables caching.
//
//nolint:ireturn // redis is optional
func newCache(ctx context.Context) (cache.Cache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		slog.Info("REDIS_ADDR is not set, caching is disabled.")
		return cache.Noop{}, nil
	}

	redisDB := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_DB: %w", err)
		}
		redisDB = n
	}

	c, err := cache.NewRedisCache(ctx, addr, os.Getenv("REDIS_PASSWORD"), redisDB)
	if err != nil {
		return nil, fmt.Errorf("new redis cache: %w", err)
	}
	return c, nil
}

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}
