package ticket

import (
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
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

func NewModule(pool db.Executor, txMgr db.TxManager, files FileLister) *Module {
	svc := NewService(NewRepository(pool), txMgr, files)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
