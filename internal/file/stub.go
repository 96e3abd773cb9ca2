package file

import (
	"context"
	"errors"
)

type StubRepo struct {
	CreateFunc         func(ctx context.Context, f AppFile) (AppFile, error)
	ListByEntityFunc   func(ctx context.Context, entityType EntityType, entityIDs ...int64) ([]AppFile, error)
	DeleteByEntityFunc func(ctx context.Context, entityType EntityType, entityID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, f AppFile) (AppFile, error) {
	if r.CreateFunc == nil {
		return AppFile{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, f)
}

func (r *StubRepo) ListByEntity(ctx context.Context, entityType EntityType, entityIDs ...int64) ([]AppFile, error) {
	if r.ListByEntityFunc == nil {
		return nil, errors.New("ListByEntity() not implemented by stub")
	}
	return r.ListByEntityFunc(ctx, entityType, entityIDs...)
}

func (r *StubRepo) DeleteByEntity(ctx context.Context, entityType EntityType, entityID int64) error {
	if r.DeleteByEntityFunc == nil {
		return errors.New("DeleteByEntity() not implemented by stub")
	}
	return r.DeleteByEntityFunc(ctx, entityType, entityID)
}
