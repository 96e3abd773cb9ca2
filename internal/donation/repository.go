package donation

import (
	"context"
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

func (r *SQLRepository) Create(ctx context.Context, d Donation) (int64, error) {
	const query = `
INSERT INTO donations (campaign_id, user_id, amount, payment_intent_id)
VALUES (?, ?, ?, ?)`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, d.CampaignID, d.UserID, d.Amount, d.PaymentIntentID)
	if err != nil {
		if db.IsDuplicate(err) {
			return 0, ErrAlreadyRecorded
		}
		if db.IsMissingReference(err) {
			return 0, ErrUnknownReference
		}
		return 0, fmt.Errorf("insert donation %s: %w", d.PaymentIntentID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get donation id: %w", err)
	}
	return id, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]Donation, error) {
	const query = `
SELECT d.id, d.campaign_id, c.name, d.user_id, d.amount, d.payment_intent_id, d.created_at
FROM donations d
JOIN campaigns c ON c.id = d.campaign_id
WHERE d.user_id = ?
ORDER BY d.created_at DESC, d.id DESC`

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query donations of user %d: %w", userID, err)
	}
	defer rows.Close()

	donations := make([]Donation, 0)
	for rows.Next() {
		var d Donation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.CampaignName, &d.UserID, &d.Amount, &d.PaymentIntentID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}

	return donations, nil
}
