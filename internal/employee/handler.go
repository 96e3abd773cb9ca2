package employee

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

type EmployeeService interface {
	List(ctx context.Context, actor *principal.Principal, companyID int64) ([]Member, error)
	Add(ctx context.Context, actor *principal.Principal, params AddParams) (Member, error)
	Remove(ctx context.Context, actor *principal.Principal, params RemoveParams) error
}

type Handler struct {
	svc EmployeeService
}

func NewHandler(svc EmployeeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	companyID, err := web.PathID(r, "companyId")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	members, err := h.svc.List(r.Context(), p, companyID)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &members)
}

type AddRequest struct {
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	CompanyID int64 `json:"company_id" validate:"required,gt=0"`
	RoleID    int64 `json:"role_id" validate:"required,gt=0"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[AddRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	added, err := h.svc.Add(r.Context(), p, AddParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Employee added."
	web.RespondCreated(w, &msg, &added)
}

type RemoveRequest struct {
	EmployeeID int64 `json:"employee_id" validate:"required,gt=0"`
	CompanyID  int64 `json:"company_id" validate:"required,gt=0"`
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[RemoveRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Remove(r.Context(), p, RemoveParams(req)); err != nil {
		respondError(w, err)
		return
	}

	msg := "Employee removed."
	web.RespondOK[struct{}](w, &msg, nil)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "User"), nil)
	case errors.Is(err, role.ErrRoleNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Role"), nil)
	case errors.Is(err, ErrNotMember):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Employee"), nil)
	case errors.Is(err, ErrMissingReference):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Company"), nil)
	case errors.Is(err, ErrAlreadyMember):
		web.RespondConflict(w, err, "User already belongs to a company.", nil)
	case errors.Is(err, ErrLastOwner):
		web.RespondConflict(w, err, "The last owner of a company cannot be removed.", nil)
	case errors.Is(err, ErrRoleMismatch):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"role_id": "role does not belong to the company"})
	case errors.Is(err, ErrForbidden):
		web.RespondForbidden(w, err, message.Forbidden, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
