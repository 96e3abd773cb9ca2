package donation

import (
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/payment"
)

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

func NewModule(pool db.Executor, txMgr db.TxManager, campaigns CampaignService, gateway payment.Gateway, currency string, maxBodyBytes int64) *Module {
	svc := NewService(NewRepository(pool), txMgr, campaigns, gateway, currency)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc, maxBodyBytes),
	}
}
