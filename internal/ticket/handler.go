package ticket

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

type TicketService interface {
	List(ctx context.Context) ([]Ticket, error)
	ListOpen(ctx context.Context) ([]Ticket, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Close(ctx context.Context, params CloseParams) (Ticket, error)
}

type Handler struct {
	svc TicketService
}

func NewHandler(svc TicketService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &tickets)
}

func (h *Handler) ListOpen(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.svc.ListOpen(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &tickets)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "ticketId")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &detail)
}

type CloseRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	Status  Status `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Message string `json:"message" validate:"max=5000"`
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CloseRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	closed, err := h.svc.Close(r.Context(), CloseParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Ticket closed."
	web.RespondOK(w, &msg, &closed)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Ticket"), nil)
	case errors.Is(err, ErrClosed):
		web.RespondConflict(w, err, "Ticket is already closed.", nil)
	case errors.Is(err, ErrEntityNotFound):
		web.RespondConflict(w, err, "The ticket's entity no longer exists.", nil)
	case errors.Is(err, ErrInvalidStatus):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"status": "status must be one of [APPROVED REJECTED]"})
	default:
		web.RespondInternalServerError(w, err)
	}
}
