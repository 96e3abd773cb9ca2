package funding

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
)

type StubRepo struct {
	CreateFunc       func(ctx context.Context, req Request) (Request, error)
	FindFunc         func(ctx context.Context, id int64) (Request, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status Status) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, req Request) (Request, error) {
	if r.CreateFunc == nil {
		return Request{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, req)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (Request, error) {
	if r.FindFunc == nil {
		return Request{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if r.UpdateStatusFunc == nil {
		return errors.New("UpdateStatus() not implemented by stub")
	}
	return r.UpdateStatusFunc(ctx, id, status)
}

type StubCampaignFinder struct {
	FindFunc func(ctx context.Context, id int64) (campaign.Campaign, error)
}

var _ CampaignFinder = (*StubCampaignFinder)(nil)

func (s *StubCampaignFinder) Find(ctx context.Context, id int64) (campaign.Campaign, error) {
	if s.FindFunc == nil {
		return campaign.Campaign{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}
