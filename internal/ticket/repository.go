package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

const selectTicket = `
SELECT id, name, entity_id, type, message, additional_info, status, created_at, closed_at
FROM tickets`

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

func (r *SQLRepository) Create(ctx context.Context, params OpenParams) (Ticket, error) {
	const query = "INSERT INTO tickets (name, entity_id, type, message, additional_info) VALUES (?, ?, ?, ?, ?)"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		params.Name, params.EntityID, params.Type, params.Message, params.AdditionalInfo)
	if err != nil {
		return Ticket{}, fmt.Errorf("insert ticket: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Ticket{}, fmt.Errorf("get ticket id: %w", err)
	}

	return r.Find(ctx, id)
}

func (r *SQLRepository) Find(ctx context.Context, id int64) (Ticket, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectTicket+" WHERE id = ?", id)

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		return Ticket{}, fmt.Errorf("find ticket %d: %w", id, err)
	}
	return t, nil
}

func (r *SQLRepository) List(ctx context.Context, status Status) ([]Ticket, error) {
	query := selectTicket
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}

// Close records the decision on a pending ticket. It returns ErrClosed when
// the ticket was already decided.
func (r *SQLRepository) Close(ctx context.Context, id int64, status Status, message string) error {
	const query = `
UPDATE tickets SET status = ?, message = ?, closed_at = CURRENT_TIMESTAMP(6)
WHERE id = ? AND status = 'PENDING'`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, status, message, id)
	if err != nil {
		return fmt.Errorf("close ticket %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	if _, err := r.Find(ctx, id); err != nil {
		return err
	}
	return ErrClosed
}

// Withdraw rejects the pending tickets of type t whose entity is one of
// entityIDs and returns how many were closed.
func (r *SQLRepository) Withdraw(ctx context.Context, t Type, entityIDs []int64, message string) (int64, error) {
	if len(entityIDs) == 0 {
		return 0, nil
	}

	query := `
UPDATE tickets SET status = 'REJECTED', message = ?, closed_at = CURRENT_TIMESTAMP(6)
WHERE status = 'PENDING' AND type = ? AND entity_id IN (?` + strings.Repeat(", ?", len(entityIDs)-1) + ")"

	args := make([]any, 0, len(entityIDs)+2)
	args = append(args, message, t)
	for _, id := range entityIDs {
		args = append(args, id)
	}

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("withdraw %s tickets: %w", t, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTicket(s scanner) (Ticket, error) {
	var (
		t        Ticket
		info     sql.NullString
		closedAt sql.NullTime
	)
	if err := s.Scan(&t.ID, &t.Name, &t.EntityID, &t.Type, &t.Message, &info, &t.Status, &t.CreatedAt, &closedAt); err != nil {
		return Ticket{}, err
	}
	if info.Valid {
		t.AdditionalInfo = &info.String
	}
	if closedAt.Valid {
		t.ClosedAt = &closedAt.Time
	}
	return t, nil
}
