package funding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/funding"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/shopspring/decimal"
)

func TestService_Request(t *testing.T) {
	t.Parallel()

	member := &principal.Principal{UserID: 1, CompanyID: 3, Role: principal.RoleCompanyAccount}

	tests := []struct {
		name       string
		actor      *principal.Principal
		status     campaign.Status
		amount     decimal.Decimal
		findErr    error
		wantErr    error
		wantTicket bool
	}{
		{"filed", member, campaign.StatusActive, decimal.NewFromInt(250), nil, nil, true},
		{"other company", &principal.Principal{UserID: 2, CompanyID: 4}, campaign.StatusActive, decimal.NewFromInt(250), nil, funding.ErrForbidden, false},
		{"inactive campaign", member, campaign.StatusPending, decimal.NewFromInt(250), nil, funding.ErrCampaignInactive, false},
		{"zero amount", member, campaign.StatusActive, decimal.Zero, nil, funding.ErrInvalidAmount, false},
		{"missing campaign", member, "", decimal.NewFromInt(250), campaign.ErrNotFound, campaign.ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			campaigns := &funding.StubCampaignFinder{
				FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
					return campaign.Campaign{ID: id, CompanyID: 3, Name: "Clean Water", Status: tt.status}, tt.findErr
				},
			}
			repo := &funding.StubRepo{
				CreateFunc: func(_ context.Context, req funding.Request) (funding.Request, error) {
					req.ID = 12
					req.Status = funding.StatusPending
					return req, nil
				},
			}

			var opened ticket.OpenParams
			tickets := &ticket.StubOpener{
				OpenFunc: func(_ context.Context, params ticket.OpenParams) (ticket.Ticket, error) {
					opened = params
					return ticket.Ticket{}, nil
				},
			}

			svc := funding.NewService(repo, &db.StubTxManager{}, campaigns, tickets)
			got, err := svc.Request(context.Background(), tt.actor, funding.RequestParams{
				CampaignID: 7,
				Amount:     tt.amount,
				Message:    "We need the funds to drill the first well.",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Request() = %v, want: %v", err, tt.wantErr)
			}
			if !tt.wantTicket {
				return
			}

			if got.CompanyID != 3 || got.CampaignID != 7 {
				t.Errorf("svc.Request() = %+v", got)
			}
			if opened.Type != ticket.TypeFundRequest || opened.EntityID != 12 {
				t.Errorf("ticket = %+v, want a fund request ticket for 12", opened)
			}
		})
	}
}

func TestService_Review(t *testing.T) {
	t.Parallel()

	var got funding.Status
	repo := &funding.StubRepo{
		FindFunc: func(_ context.Context, id int64) (funding.Request, error) { return funding.Request{ID: id}, nil },
		UpdateStatusFunc: func(_ context.Context, _ int64, s funding.Status) error {
			got = s
			return nil
		},
	}

	svc := funding.NewService(repo, &db.StubTxManager{}, &funding.StubCampaignFinder{}, &ticket.StubOpener{})
	if err := svc.Review(context.Background(), 1, true); err != nil {
		t.Fatalf("svc.Review() = %v", err)
	}
	if got != funding.StatusApproved {
		t.Errorf("status = %s, want: %s", got, funding.StatusApproved)
	}
}

func TestService_ReviewMissingRequest(t *testing.T) {
	t.Parallel()

	repo := &funding.StubRepo{
		FindFunc: func(context.Context, int64) (funding.Request, error) { return funding.Request{}, funding.ErrNotFound },
	}

	svc := funding.NewService(repo, &db.StubTxManager{}, &funding.StubCampaignFinder{}, &ticket.StubOpener{})
	if err := svc.Review(context.Background(), 1, false); !errors.Is(err, ticket.ErrEntityNotFound) {
		t.Errorf("svc.Review() = %v, want: %v", err, ticket.ErrEntityNotFound)
	}
}
