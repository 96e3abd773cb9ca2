package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

const selectMember = `
SELECT m.user_id, m.company_id, m.company_role_id, cr.name,
       u.username, u.email, u.first_name, u.last_name, m.created_at
FROM company_memberships m
JOIN users u ON u.id = m.user_id
JOIN company_roles cr ON cr.id = m.company_role_id`

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

func (r *SQLRepository) Create(ctx context.Context, userID, companyID, roleID int64) error {
	const query = "INSERT INTO company_memberships (user_id, company_id, company_role_id) VALUES (?, ?, ?)"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, userID, companyID, roleID); err != nil {
		if db.IsDuplicate(err) {
			return ErrAlreadyMember
		}
		if db.IsMissingReference(err) {
			return ErrMissingReference
		}
		return fmt.Errorf("insert membership of user %d: %w", userID, err)
	}
	return nil
}

func (r *SQLRepository) Find(ctx context.Context, userID int64) (Member, error) {
	var m Member
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectMember+" WHERE m.user_id = ?", userID)
	if err := scanMember(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, ErrNotMember
		}
		return m, fmt.Errorf("find membership of user %d: %w", userID, err)
	}
	return m, nil
}

func (r *SQLRepository) List(ctx context.Context, companyID int64) ([]Member, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, selectMember+" WHERE m.company_id = ? ORDER BY m.created_at", companyID)
	if err != nil {
		return nil, fmt.Errorf("query members of company %d: %w", companyID, err)
	}
	defer rows.Close()

	members := make([]Member, 0)
	for rows.Next() {
		var m Member
		if err := scanMember(rows, &m); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

func (r *SQLRepository) CountWithRole(ctx context.Context, roleID int64) (int, error) {
	const query = "SELECT COUNT(*) FROM company_memberships WHERE company_role_id = ?"

	var n int
	if err := db.Conn(ctx, r.db).QueryRowContext(ctx, query, roleID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count members with role %d: %w", roleID, err)
	}
	return n, nil
}

func (r *SQLRepository) Delete(ctx context.Context, userID, companyID int64) error {
	const query = "DELETE FROM company_memberships WHERE user_id = ? AND company_id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, userID, companyID)
	if err != nil {
		return fmt.Errorf("delete membership of user %d: %w", userID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotMember
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(s scanner, m *Member) error {
	return s.Scan(&m.UserID, &m.CompanyID, &m.RoleID, &m.RoleName,
		&m.Username, &m.Email, &m.FirstName, &m.LastName, &m.JoinedAt)
}
