package donation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/platform/payment"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

const HeaderSignature = "Stripe-Signature"

type DonationService interface {
	CreateIntent(ctx context.Context, actor *principal.Principal, campaignID, amountCents int64) (Intent, error)
	ListByUser(ctx context.Context, actor *principal.Principal, userID int64) ([]Donation, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type Handler struct {
	svc          DonationService
	maxBodyBytes int64
}

func NewHandler(svc DonationService, maxBodyBytes int64) *Handler {
	return &Handler{svc: svc, maxBodyBytes: maxBodyBytes}
}

type CreateRequest struct {
	CampaignID int64 `json:"campaign_id" validate:"required,gt=0"`
	Amount     int64 `json:"amount" validate:"required,gte=100"`
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

	intent, err := h.svc.CreateIntent(r.Context(), p, req.CampaignID, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &intent)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	userID, err := web.PathID(r, "userId")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	donations, err := h.svc.ListByUser(r.Context(), p, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &donations)
}

// Webhook receives payment provider events. The raw body is needed for
// signature verification, so the route bypasses payload decoding.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.HandleWebhook(r.Context(), payload, r.Header.Get(HeaderSignature)); err != nil {
		respondError(w, err)
		return
	}

	msg := "Event received."
	web.RespondOK[struct{}](w, &msg, nil)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaign.ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Campaign"), nil)
	case errors.Is(err, ErrCampaignInactive):
		web.RespondConflict(w, err, "Donations are only accepted for active campaigns.", nil)
	case errors.Is(err, ErrAmountTooSmall):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"amount": "amount must be at least 100 cents"})
	case errors.Is(err, payment.ErrInvalidSignature):
		web.RespondBadRequest(w, err, "Invalid webhook signature.", nil)
	case errors.Is(err, ErrInvalidMetadata), errors.Is(err, ErrUnknownReference):
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	case errors.Is(err, ErrPayment):
		web.RespondBadGateway(w, err, "Payment provider is unavailable.", nil)
	case errors.Is(err, ErrForbidden):
		web.RespondForbidden(w, err, message.Forbidden, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
