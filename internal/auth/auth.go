package auth

import (
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/hash"
	"github.com/peaceoutommy/DMA-API/internal/platform/jwt"
)

type Provider struct {
	Cfg     *config.Config
	DB      db.Executor
	Hasher  hash.Hasher
	Signer  jwt.Signer
	UserSvc UserService
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(provider *Provider) *Module {
	repo := NewRepository(provider.DB)
	svc := NewService(repo, provider)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
