package ticket

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/file"
)

type StubRepo struct {
	CreateFunc func(ctx context.Context, params OpenParams) (Ticket, error)
	FindFunc   func(ctx context.Context, id int64) (Ticket, error)
	ListFunc   func(ctx context.Context, status Status) ([]Ticket, error)
	CloseFunc  func(ctx context.Context, id int64, status Status, message string) error

	WithdrawFunc func(ctx context.Context, t Type, entityIDs []int64, message string) (int64, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params OpenParams) (Ticket, error) {
	if r.CreateFunc == nil {
		return Ticket{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (Ticket, error) {
	if r.FindFunc == nil {
		return Ticket{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) List(ctx context.Context, status Status) ([]Ticket, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, status)
}

func (r *StubRepo) Close(ctx context.Context, id int64, status Status, message string) error {
	if r.CloseFunc == nil {
		return errors.New("Close() not implemented by stub")
	}
	return r.CloseFunc(ctx, id, status, message)
}

func (r *StubRepo) Withdraw(ctx context.Context, t Type, entityIDs []int64, message string) (int64, error) {
	if r.WithdrawFunc == nil {
		return 0, errors.New("Withdraw() not implemented by stub")
	}
	return r.WithdrawFunc(ctx, t, entityIDs, message)
}

type StubFileLister struct {
	ListFunc func(ctx context.Context, entityType file.EntityType, entityID int64) ([]file.AppFile, error)
}

var _ FileLister = (*StubFileLister)(nil)

func (l *StubFileLister) List(ctx context.Context, entityType file.EntityType, entityID int64) ([]file.AppFile, error) {
	if l.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return l.ListFunc(ctx, entityType, entityID)
}

type StubReviewer struct {
	ReviewFunc   func(ctx context.Context, entityID int64, approved bool) error
	ReviewedFunc func(ctx context.Context, entityID int64, approved bool)
}

var (
	_ Reviewer       = (*StubReviewer)(nil)
	_ ReviewNotifier = (*StubReviewer)(nil)
)

func (r *StubReviewer) Review(ctx context.Context, entityID int64, approved bool) error {
	if r.ReviewFunc == nil {
		return errors.New("Review() not implemented by stub")
	}
	return r.ReviewFunc(ctx, entityID, approved)
}

func (r *StubReviewer) Reviewed(ctx context.Context, entityID int64, approved bool) {
	if r.ReviewedFunc != nil {
		r.ReviewedFunc(ctx, entityID, approved)
	}
}

// StubOpener is used by packages that open or withdraw tickets.
type StubOpener struct {
	OpenFunc     func(ctx context.Context, params OpenParams) (Ticket, error)
	WithdrawFunc func(ctx context.Context, t Type, message string, entityIDs ...int64) error
}

func (o *StubOpener) Withdraw(ctx context.Context, t Type, message string, entityIDs ...int64) error {
	if o.WithdrawFunc == nil {
		return errors.New("Withdraw() not implemented by stub")
	}
	return o.WithdrawFunc(ctx, t, message, entityIDs...)
}

func (o *StubOpener) Open(ctx context.Context, params OpenParams) (Ticket, error) {
	if o.OpenFunc == nil {
		return Ticket{}, errors.New("Open() not implemented by stub")
	}
	return o.OpenFunc(ctx, params)
}
