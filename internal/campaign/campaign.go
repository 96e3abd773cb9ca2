package campaign

import "github.com/peaceoutommy/DMA-API/internal/platform/validation"

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

func NewModule(deps Deps, validator validation.Validator, maxUploadBytes int64) *Module {
	svc := NewService(deps)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc, validator, maxUploadBytes),
	}
}
