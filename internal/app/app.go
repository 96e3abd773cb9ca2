package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/auth"
	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/donation"
	"github.com/peaceoutommy/DMA-API/internal/employee"
	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/funding"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

// modules holds every domain module wired against the provider.
type modules struct {
	user     *user.Module
	auth     *auth.Module
	role     *role.Module
	ticket   *ticket.Module
	employee *employee.Module
	company  *company.Module
	campaign *campaign.Module
	funding  *funding.Module
	donation *donation.Module
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) newModules() *modules {
	p := a.provider
	cfg := a.config

	files := file.NewService(file.NewRepository(p.DB), p.Store)

	userModule := user.NewModule(p.DB, files, cfg.Server.MaxUploadBytes)
	authModule := auth.NewModule(&auth.Provider{
		Cfg:     cfg,
		DB:      p.DB,
		Hasher:  p.Hasher,
		Signer:  p.Signer,
		UserSvc: userModule.Service(),
	})
	roleModule := role.NewModule(p.DB, p.TxMgr)
	ticketModule := ticket.NewModule(p.DB, p.TxMgr, files)
	employeeModule := employee.NewModule(p.DB, p.TxMgr, userModule.Service(), roleModule.Service())

	companyModule := company.NewModule(company.Deps{
		Repo:    company.NewRepository(p.DB),
		TxMgr:   p.TxMgr,
		Roles:   roleModule.Service(),
		Members: employeeModule.Service(),
		Tickets: ticketModule.Service(),
		Store:   p.Store,
	})

	campaignModule := campaign.NewModule(campaign.Deps{
		Repo:      campaign.NewRepository(p.DB),
		TxMgr:     p.TxMgr,
		Files:     files,
		Companies: companyModule.Service(),
		Tickets:   ticketModule.Service(),
		Cache:     p.Cache,
		CacheTTL:  cfg.Cache.TTL,
	}, p.Validator, cfg.Server.MaxUploadBytes)

	fundingModule := funding.NewModule(p.DB, p.TxMgr, campaignModule.Service(), ticketModule.Service())
	donationModule := donation.NewModule(p.DB, p.TxMgr, campaignModule.Service(), p.Gateway,
		cfg.Payment.Currency, cfg.Server.MaxBodyBytes)

	tickets := ticketModule.Service()
	tickets.SetReviewer(ticket.TypeCompany, companyModule.Service())
	tickets.SetReviewer(ticket.TypeCampaign, campaignModule.Service())
	tickets.SetReviewer(ticket.TypeFundRequest, fundingModule.Service())

	return &modules{
		user:     userModule,
		auth:     authModule,
		role:     roleModule,
		ticket:   ticketModule,
		employee: employeeModule,
		company:  companyModule,
		campaign: campaignModule,
		funding:  fundingModule,
		donation: donationModule,
	}
}

func (a *App) setupRoutes() {
	mountRoutes(a.provider, a.config, a.newModules())
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	return &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout,
	}
}
