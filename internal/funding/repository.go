package funding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

func (r *SQLRepository) Create(ctx context.Context, req Request) (Request, error) {
	const query = `
INSERT INTO fund_requests (campaign_id, company_id, message, amount, status)
VALUES (?, ?, ?, ?, 'PENDING')`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, req.CampaignID, req.CompanyID, req.Message, req.Amount)
	if err != nil {
		return Request{}, fmt.Errorf("insert fund request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Request{}, fmt.Errorf("get fund request id: %w", err)
	}

	return r.Find(ctx, id)
}

func (r *SQLRepository) Find(ctx context.Context, id int64) (Request, error) {
	const query = `
SELECT id, campaign_id, company_id, message, amount, status, created_at
FROM fund_requests WHERE id = ?`

	var req Request
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, query, id)
	if err := row.Scan(&req.ID, &req.CampaignID, &req.CompanyID, &req.Message, &req.Amount, &req.Status, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return req, ErrNotFound
		}
		return req, fmt.Errorf("find fund request %d: %w", id, err)
	}
	return req, nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	const query = "UPDATE fund_requests SET status = ? WHERE id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update status of fund request %d: %w", id, err)
	}
	return nil
}
