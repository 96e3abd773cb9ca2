package campaign

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/shopspring/decimal"
)

type StubRepo struct {
	ListFunc           func(ctx context.Context) ([]Campaign, error)
	FindFunc           func(ctx context.Context, id int64) (Campaign, error)
	CreateFunc         func(ctx context.Context, c Campaign) (int64, error)
	UpdateFunc         func(ctx context.Context, c Campaign) error
	UpdateStatusFunc   func(ctx context.Context, id int64, status Status) error
	AddRaisedFundsFunc func(ctx context.Context, id int64, amount decimal.Decimal) error
	HasDonationsFunc   func(ctx context.Context, id int64) (bool, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	FundRequestIDsFunc func(ctx context.Context, campaignID int64) ([]int64, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]Campaign, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (Campaign, error) {
	if r.FindFunc == nil {
		return Campaign{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Create(ctx context.Context, c Campaign) (int64, error) {
	if r.CreateFunc == nil {
		return 0, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, c)
}

func (r *StubRepo) Update(ctx context.Context, c Campaign) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, c)
}

func (r *StubRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if r.UpdateStatusFunc == nil {
		return errors.New("UpdateStatus() not implemented by stub")
	}
	return r.UpdateStatusFunc(ctx, id, status)
}

func (r *StubRepo) AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error {
	if r.AddRaisedFundsFunc == nil {
		return errors.New("AddRaisedFunds() not implemented by stub")
	}
	return r.AddRaisedFundsFunc(ctx, id, amount)
}

func (r *StubRepo) HasDonations(ctx context.Context, id int64) (bool, error) {
	if r.HasDonationsFunc == nil {
		return false, errors.New("HasDonations() not implemented by stub")
	}
	return r.HasDonationsFunc(ctx, id)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}

func (r *StubRepo) FundRequestIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	if r.FundRequestIDsFunc == nil {
		return nil, errors.New("FundRequestIDs() not implemented by stub")
	}
	return r.FundRequestIDsFunc(ctx, campaignID)
}

type StubCompanyFinder struct {
	FindFunc func(ctx context.Context, id int64) (company.Company, error)
}

var _ CompanyFinder = (*StubCompanyFinder)(nil)

func (s *StubCompanyFinder) Find(ctx context.Context, id int64) (company.Company, error) {
	if s.FindFunc == nil {
		return company.Company{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}
