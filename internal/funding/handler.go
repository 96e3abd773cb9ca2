package funding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/shopspring/decimal"
)

type FundingService interface {
	Request(ctx context.Context, actor *principal.Principal, params RequestParams) (Request, error)
}

type Handler struct {
	svc FundingService
}

func NewHandler(svc FundingService) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	CampaignID int64           `json:"campaign_id" validate:"required,gt=0"`
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Message    string          `json:"message" validate:"required,min=30,max=10000"`
}

func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.svc.Request(r.Context(), p, RequestParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Fund request submitted."
	web.RespondCreated(w, &msg, &created)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaign.ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Campaign"), nil)
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Fund request"), nil)
	case errors.Is(err, ErrForbidden):
		web.RespondForbidden(w, err, message.Forbidden, nil)
	case errors.Is(err, ErrCampaignInactive):
		web.RespondConflict(w, err, "Funds can only be requested for active campaigns.", nil)
	case errors.Is(err, ErrInvalidAmount):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"amount": "amount must be greater than 0"})
	default:
		web.RespondInternalServerError(w, err)
	}
}
