package donation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/payment"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/shopspring/decimal"
)

// MinAmountCents is the smallest accepted donation.
const MinAmountCents = 100

const (
	metaCampaignID = "campaignId"
	metaUserID     = "userId"
)

var (
	ErrAmountTooSmall   = errors.New("donation: amount below minimum")
	ErrCampaignInactive = errors.New("donation: campaign is not active")
	ErrForbidden        = errors.New("donation: donations belong to another user")
	ErrAlreadyRecorded  = errors.New("donation: payment intent already recorded")
	ErrUnknownReference = errors.New("donation: campaign or user does not exist")
	ErrInvalidMetadata  = errors.New("donation: payment intent metadata is invalid")
	ErrPayment          = errors.New("donation: payment provider error")
)

type Repository interface {
	Create(ctx context.Context, d Donation) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Donation, error)
}

type CampaignService interface {
	Find(ctx context.Context, id int64) (campaign.Campaign, error)
	AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error
	InvalidateCache(ctx context.Context)
}

type Service struct {
	repo      Repository
	txMgr     db.TxManager
	campaigns CampaignService
	gateway   payment.Gateway
	currency  string
}

func NewService(repo Repository, txMgr db.TxManager, campaigns CampaignService, gateway payment.Gateway, currency string) *Service {
	return &Service{
		repo:      repo,
		txMgr:     txMgr,
		campaigns: campaigns,
		gateway:   gateway,
		currency:  currency,
	}
}

// CreateIntent starts a payment for an active campaign. The donor is taken
// from the actor and travels to the webhook in the intent metadata.
func (s *Service) CreateIntent(ctx context.Context, actor *principal.Principal, campaignID, amountCents int64) (Intent, error) {
	if amountCents < MinAmountCents {
		return Intent{}, ErrAmountTooSmall
	}

	c, err := s.campaigns.Find(ctx, campaignID)
	if err != nil {
		return Intent{}, fmt.Errorf("create payment intent: %w", err)
	}

	if c.Status != campaign.StatusActive {
		return Intent{}, ErrCampaignInactive
	}

	slog.Info("Creating payment intent...", "campaign_id", campaignID, "user_id", actor.UserID, "amount", amountCents)
	intent, err := s.gateway.CreateIntent(ctx, payment.IntentParams{
		AmountCents: amountCents,
		Currency:    s.currency,
		Metadata: map[string]string{
			metaCampaignID: strconv.FormatInt(campaignID, 10),
			metaUserID:     strconv.FormatInt(actor.UserID, 10),
		},
	})
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %w", ErrPayment, err)
	}

	return Intent{ClientSecret: intent.ClientSecret, PaymentIntentID: intent.ID}, nil
}

func (s *Service) ListByUser(ctx context.Context, actor *principal.Principal, userID int64) ([]Donation, error) {
	if actor.UserID != userID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	donations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list donations of user %d: %w", userID, err)
	}
	return donations, nil
}

// HandleWebhook verifies a payment provider callback and records succeeded
// payments. Other event types are ignored.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("parse webhook event: %w", err)
	}

	if event.Type != payment.EventPaymentSucceeded || event.Intent == nil {
		slog.Info("Ignoring webhook event.", "id", event.ID, "type", event.Type)
		return nil
	}

	return s.Record(ctx, *event.Intent)
}

// Record stores a succeeded payment and credits the campaign in one
// transaction. A payment intent is recorded at most once.
func (s *Service) Record(ctx context.Context, intent payment.PaymentIntent) error {
	campaignID, err := strconv.ParseInt(intent.Metadata[metaCampaignID], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidMetadata, metaCampaignID, err)
	}

	userID, err := strconv.ParseInt(intent.Metadata[metaUserID], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidMetadata, metaUserID, err)
	}

	slog.Info("Recording donation...", "payment_intent_id", intent.ID, "campaign_id", campaignID)
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, Donation{
			CampaignID:      campaignID,
			UserID:          userID,
			Amount:          intent.AmountCents,
			PaymentIntentID: intent.ID,
		}); err != nil {
			return err
		}

		return s.campaigns.AddRaisedFunds(ctx, campaignID, decimal.New(intent.AmountCents, -2))
	})
	if errors.Is(err, ErrAlreadyRecorded) {
		slog.Info("Donation already recorded.", "payment_intent_id", intent.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("record donation %s: %w", intent.ID, err)
	}

	s.campaigns.InvalidateCache(ctx)
	return nil
}
