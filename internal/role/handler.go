package role

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

type RoleService interface {
	ListPermissions(ctx context.Context) ([]Permission, error)
	CreatePermission(ctx context.Context, p Permission) (Permission, error)
	UpdatePermission(ctx context.Context, p Permission) (Permission, error)
	DeletePermission(ctx context.Context, id int64) error
	ListRoles(ctx context.Context, actor *principal.Principal, companyID int64) ([]Role, error)
	CreateRole(ctx context.Context, actor *principal.Principal, params CreateParams) (Role, error)
	UpdateRole(ctx context.Context, actor *principal.Principal, params UpdateParams) (Role, error)
	DeleteRole(ctx context.Context, actor *principal.Principal, id int64) error
}

type Handler struct {
	svc RoleService
}

func NewHandler(svc RoleService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
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

	roles, err := h.svc.ListRoles(r.Context(), p, companyID)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &roles)
}

type CreateRoleRequest struct {
	CompanyID     int64   `json:"company_id" validate:"required,gt=0"`
	Name          string  `json:"name" validate:"required,max=100"`
	PermissionIDs []int64 `json:"permission_ids" validate:"dive,gt=0"`
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateRoleRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.CreateRole(r.Context(), p, CreateParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Role created."
	web.RespondCreated(w, &msg, &created)
}

type UpdateRoleRequest struct {
	ID            int64   `json:"id" validate:"required,gt=0"`
	Name          string  `json:"name" validate:"required,max=100"`
	PermissionIDs []int64 `json:"permission_ids" validate:"dive,gt=0"`
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateRoleRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.UpdateRole(r.Context(), p, UpdateParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Role updated."
	web.RespondOK(w, &msg, &updated)
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.DeleteRole(r.Context(), p, id); err != nil {
		respondError(w, err)
		return
	}

	msg := "Role deleted."
	web.RespondOK[struct{}](w, &msg, nil)
}

func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.svc.ListPermissions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &perms)
}

func (h *Handler) ListPermissionTypes(w http.ResponseWriter, _ *http.Request) {
	types := PermissionTypes
	web.RespondOK(w, nil, &types)
}

type PermissionRequest struct {
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Type        PermissionType `json:"type" validate:"required,oneof=COMPANY CAMPAIGN ROLE EMPLOYEE FUNDING"`
	Description string         `json:"description" validate:"max=500"`
}

func (h *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[PermissionRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.CreatePermission(r.Context(), Permission{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Permission created."
	web.RespondCreated(w, &msg, &created)
}

type UpdatePermissionRequest struct {
	ID          int64          `json:"id" validate:"required,gt=0"`
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Type        PermissionType `json:"type" validate:"required,oneof=COMPANY CAMPAIGN ROLE EMPLOYEE FUNDING"`
	Description string         `json:"description" validate:"max=500"`
}

func (h *Handler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpdatePermissionRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.UpdatePermission(r.Context(), Permission(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Permission updated."
	web.RespondOK(w, &msg, &updated)
}

func (h *Handler) DeletePermission(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.DeletePermission(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	msg := "Permission deleted."
	web.RespondOK[struct{}](w, &msg, nil)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Role"), nil)
	case errors.Is(err, ErrPermissionNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Permission"), nil)
	case errors.Is(err, ErrCompanyNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Company"), nil)
	case errors.Is(err, ErrDuplicateRole):
		web.RespondConflict(w, err, "A role with this name already exists.", nil)
	case errors.Is(err, ErrDuplicatePermission):
		web.RespondConflict(w, err, "A permission with this name already exists.", nil)
	case errors.Is(err, ErrRoleInUse):
		web.RespondConflict(w, err, "Role is still assigned to employees.", nil)
	case errors.Is(err, ErrBlankName):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"name": "name is required"})
	case errors.Is(err, ErrForbidden):
		web.RespondForbidden(w, err, message.Forbidden, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
