package company

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

func NewModule(deps Deps) *Module {
	svc := NewService(deps)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
