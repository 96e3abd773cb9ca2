package donation

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/shopspring/decimal"
)

type StubRepo struct {
	CreateFunc     func(ctx context.Context, d Donation) (int64, error)
	ListByUserFunc func(ctx context.Context, userID int64) ([]Donation, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, d Donation) (int64, error) {
	if r.CreateFunc == nil {
		return 0, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, d)
}

func (r *StubRepo) ListByUser(ctx context.Context, userID int64) ([]Donation, error) {
	if r.ListByUserFunc == nil {
		return nil, errors.New("ListByUser() not implemented by stub")
	}
	return r.ListByUserFunc(ctx, userID)
}

type StubCampaignService struct {
	FindFunc            func(ctx context.Context, id int64) (campaign.Campaign, error)
	AddRaisedFundsFunc  func(ctx context.Context, id int64, amount decimal.Decimal) error
	InvalidateCacheFunc func(ctx context.Context)
}

var _ CampaignService = (*StubCampaignService)(nil)

func (s *StubCampaignService) Find(ctx context.Context, id int64) (campaign.Campaign, error) {
	if s.FindFunc == nil {
		return campaign.Campaign{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubCampaignService) AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error {
	if s.AddRaisedFundsFunc == nil {
		return errors.New("AddRaisedFunds() not implemented by stub")
	}
	return s.AddRaisedFundsFunc(ctx, id, amount)
}

func (s *StubCampaignService) InvalidateCache(ctx context.Context) {
	if s.InvalidateCacheFunc != nil {
		s.InvalidateCacheFunc(ctx)
	}
}
