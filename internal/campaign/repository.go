package campaign

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/shopspring/decimal"
)

const selectCampaign = `
SELECT id, company_id, name, description, fund_goal, raised_funds,
       start_date, end_date, status, created_at, updated_at
FROM campaigns`

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

// List returns every campaign that has not been archived, newest first.
func (r *SQLRepository) List(ctx context.Context) ([]Campaign, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, selectCampaign+" WHERE status <> 'ARCHIVED' ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *SQLRepository) Find(ctx context.Context, id int64) (Campaign, error) {
	c, err := scanCampaign(db.Conn(ctx, r.db).QueryRowContext(ctx, selectCampaign+" WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("find campaign %d: %w", id, err)
	}
	return c, nil
}

func (r *SQLRepository) Create(ctx context.Context, c Campaign) (int64, error) {
	const query = `
INSERT INTO campaigns (company_id, name, description, fund_goal, raised_funds, start_date, end_date, status)
VALUES (?, ?, ?, ?, 0, ?, ?, ?)`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		c.CompanyID, c.Name, c.Description, c.FundGoal, c.StartDate, c.EndDate, c.Status)
	if err != nil {
		if db.IsMissingReference(err) {
			return 0, ErrCompanyNotFound
		}
		return 0, fmt.Errorf("insert campaign %q: %w", c.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get campaign id: %w", err)
	}
	return id, nil
}

func (r *SQLRepository) Update(ctx context.Context, c Campaign) error {
	const query = `
UPDATE campaigns
SET name = ?, description = ?, fund_goal = ?, start_date = ?, end_date = ?, status = ?
WHERE id = ?`

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		c.Name, c.Description, c.FundGoal, c.StartDate, c.EndDate, c.Status, c.ID); err != nil {
		return fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	return nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	const query = "UPDATE campaigns SET status = ? WHERE id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update status of campaign %d: %w", id, err)
	}
	return nil
}

// AddRaisedFunds adds amount to raised_funds in a single statement.
func (r *SQLRepository) AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error {
	const query = "UPDATE campaigns SET raised_funds = raised_funds + ? WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("add raised funds to campaign %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) HasDonations(ctx context.Context, id int64) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM donations WHERE campaign_id = ?)"

	var exists bool
	if err := db.Conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check donations of campaign %d: %w", id, err)
	}
	return exists, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	const query = "DELETE FROM campaigns WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		if db.IsReferenced(err) {
			return ErrHasDonations
		}
		return fmt.Errorf("delete campaign %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) FundRequestIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	const query = "SELECT id FROM fund_requests WHERE campaign_id = ?"

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list fund requests of campaign %d: %w", campaignID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan fund request id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(s scanner) (Campaign, error) {
	var (
		c          Campaign
		start, end sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.FundGoal, &c.RaisedFunds,
		&start, &end, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return Campaign{}, err
	}
	if start.Valid {
		c.StartDate = &start.Time
	}
	if end.Valid {
		c.EndDate = &end.Time
	}
	return c, nil
}
