package funding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("funding: request not found")
	ErrForbidden        = errors.New("funding: campaign belongs to another company")
	ErrCampaignInactive = errors.New("funding: campaign is not active")
	ErrInvalidAmount    = errors.New("funding: amount must be positive")
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	Find(ctx context.Context, id int64) (Request, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type CampaignFinder interface {
	Find(ctx context.Context, id int64) (campaign.Campaign, error)
}

type TicketOpener interface {
	Open(ctx context.Context, params ticket.OpenParams) (ticket.Ticket, error)
}

type RequestParams struct {
	CampaignID int64
	Amount     decimal.Decimal
	Message    string
}

type Service struct {
	repo      Repository
	txMgr     db.TxManager
	campaigns CampaignFinder
	tickets   TicketOpener
}

func NewService(repo Repository, txMgr db.TxManager, campaigns CampaignFinder, tickets TicketOpener) *Service {
	return &Service{repo: repo, txMgr: txMgr, campaigns: campaigns, tickets: tickets}
}

// Request files a pending fund request for an active campaign of the actor's
// company and opens its review ticket.
func (s *Service) Request(ctx context.Context, actor *principal.Principal, params RequestParams) (Request, error) {
	if !params.Amount.IsPositive() {
		return Request{}, ErrInvalidAmount
	}

	c, err := s.campaigns.Find(ctx, params.CampaignID)
	if err != nil {
		return Request{}, fmt.Errorf("request funds: %w", err)
	}

	if !actor.CanActFor(c.CompanyID) {
		return Request{}, ErrForbidden
	}

	if c.Status != campaign.StatusActive {
		return Request{}, ErrCampaignInactive
	}

	slog.Info("Requesting funds...", "campaign_id", c.ID, "amount", params.Amount.String())
	info := fmt.Sprintf("campaign_id=%d amount=%s", c.ID, params.Amount.StringFixed(2))
	var created Request
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, Request{
			CampaignID: c.ID,
			CompanyID:  c.CompanyID,
			Message:    params.Message,
			Amount:     params.Amount,
		})
		if err != nil {
			return err
		}

		_, err = s.tickets.Open(ctx, ticket.OpenParams{
			Name:           "Fund request for " + c.Name,
			EntityID:       created.ID,
			Type:           ticket.TypeFundRequest,
			Message:        params.Message,
			AdditionalInfo: &info,
		})
		return err
	})
	if err != nil {
		return Request{}, fmt.Errorf("request funds for campaign %d: %w", c.ID, err)
	}

	return created, nil
}

// Review approves or rejects a fund request once its ticket is decided.
func (s *Service) Review(ctx context.Context, id int64, approved bool) error {
	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	if _, err := s.repo.Find(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %w", ticket.ErrEntityNotFound, err)
		}
		return fmt.Errorf("find fund request %d: %w", id, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set fund request %d %s: %w", id, status, err)
	}
	return nil
}
