package company

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/employee"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

type CompanyService interface {
	List(ctx context.Context) ([]Company, error)
	Find(ctx context.Context, id int64) (Company, error)
	Create(ctx context.Context, actor *principal.Principal, params CreateParams) (Company, error)
	ListTypes(ctx context.Context) ([]Type, error)
	FindType(ctx context.Context, id int64) (Type, error)
	CreateType(ctx context.Context, t Type) (Type, error)
	UpdateType(ctx context.Context, t Type) (Type, error)
	DeleteType(ctx context.Context, id int64) error
}

type Handler struct {
	svc CompanyService
}

func NewHandler(svc CompanyService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &companies)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	c, err := h.svc.Find(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &c)
}

type CreateRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=5,max=20"`
	TaxID              string `json:"tax_id" validate:"required,min=8,max=30"`
	TypeID             int64  `json:"type_id" validate:"required,gt=0"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), p, CreateParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Company registered. It will be available once reviewed."
	web.RespondCreated(w, &msg, &created)
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &types)
}

func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	t, err := h.svc.FindType(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &t)
}

type TypeRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[TypeRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.CreateType(r.Context(), Type{Name: req.Name, Description: req.Description})
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Company type created."
	web.RespondCreated(w, &msg, &created)
}

type UpdateTypeRequest struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpdateTypeRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.UpdateType(r.Context(), Type(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Company type updated."
	web.RespondOK(w, &msg, &updated)
}

func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.DeleteType(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	msg := "Company type deleted."
	web.RespondOK[struct{}](w, &msg, nil)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Company"), nil)
	case errors.Is(err, ErrTypeNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Company type"), nil)
	case errors.Is(err, ErrDuplicate):
		web.RespondConflict(w, err, "A company with this name, registration number or tax id already exists.", nil)
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, employee.ErrAlreadyMember):
		web.RespondConflict(w, err, "You already belong to a company.", nil)
	case errors.Is(err, ErrDuplicateType):
		web.RespondConflict(w, err, "A company type with this name already exists.", nil)
	case errors.Is(err, ErrTypeInUse):
		web.RespondConflict(w, err, "Company type is still used by companies.", nil)
	case errors.Is(err, ErrBlankName):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"name": "name is required"})
	default:
		web.RespondInternalServerError(w, err)
	}
}
