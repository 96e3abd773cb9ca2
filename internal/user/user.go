package user

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

func NewModule(pool db.Executor, files FileUploader, maxUploadBytes int64) *Module {
	repo := NewRepository(pool)
	svc := NewService(repo, files)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc, maxUploadBytes),
	}
}
