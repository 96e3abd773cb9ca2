package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (Session, error)
	Login(ctx context.Context, params LoginParams) (Session, error)
	Me(ctx context.Context, p *principal.Principal) (user.User, error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	MiddleNames string `json:"middle_names" validate:"required,max=255"`
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber string `json:"phone_number" validate:"required,max=30"`
	Address     string `json:"address" validate:"required,max=255"`
	AccountType string `json:"account_type,omitempty" validate:"omitempty,oneof=DONOR COMPANY_ACCOUNT"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", r.Username),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("phone_number", maskChar),
	)
}

type SessionResponse struct {
	Token string         `json:"token"`
	User  *user.Response `json:"user"`
}

func newSessionResponse(s Session) *SessionResponse {
	u := user.NewResponse(s.User)
	if s.Principal != nil {
		u.Role = s.Principal.Role
		withMembership(u, s.Principal)
	}
	return &SessionResponse{Token: s.Token, User: u}
}

func withMembership(u *user.Response, p *principal.Principal) {
	if p.CompanyID == 0 {
		return
	}
	companyID := p.CompanyID
	u.CompanyID = &companyID
	u.CompanyRole = p.CompanyRole
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	session, err := h.svc.Register(r.Context(), RegisterParams(req))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicate):
			web.RespondConflict(w, err, MsgUserExists, nil)
		case errors.Is(err, ErrAccountType):
			web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"account_type": "account_type must be one of [DONOR COMPANY_ACCOUNT]"})
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := MsgRegistered
	web.RespondCreated(w, &msg, newSessionResponse(session))
}

type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required_without=Email,omitempty,max=100"`
	Email    string `json:"email,omitempty" validate:"required_without=Username,omitempty,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", r.Username),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	session, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingLoginID):
			web.RespondBadRequest(w, err, MsgNoLoginID, nil)
		case errors.Is(err, ErrInvalidCredentials):
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := MsgLoggedIn
	web.RespondOK(w, &msg, newSessionResponse(session))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	u, err := h.svc.Me(r.Context(), p)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondUnauthorized(w, err, message.Unauthorized, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	res := user.NewResponse(u)
	withMembership(res, p)
	web.RespondOK(w, nil, res)
}
