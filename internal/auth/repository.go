package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

// Principal loads the user's global role, company membership and the
// permission names of the membership's role.
func (r *SQLRepository) Principal(ctx context.Context, userID int64) (*principal.Principal, error) {
	const query = `
SELECT u.id, u.username, u.role,
       COALESCE(m.company_id, 0), COALESCE(m.company_role_id, 0), COALESCE(cr.name, '')
FROM users u
LEFT JOIN company_memberships m ON m.user_id = u.id
LEFT JOIN company_roles cr ON cr.id = m.company_role_id
WHERE u.id = ?`

	conn := db.Conn(ctx, r.db)

	var p principal.Principal
	row := conn.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&p.UserID, &p.Username, &p.Role, &p.CompanyID, &p.CompanyRoleID, &p.CompanyRole); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownPrincipal
		}
		return nil, fmt.Errorf("load principal %d: %w", userID, err)
	}

	p.Permissions = []string{}
	if p.CompanyRoleID == 0 {
		return &p, nil
	}

	const permQuery = `
SELECT cp.name
FROM company_role_permissions rp
JOIN company_permissions cp ON cp.id = rp.permission_id
WHERE rp.role_id = ?
ORDER BY cp.name`

	rows, err := conn.QueryContext(ctx, permQuery, p.CompanyRoleID)
	if err != nil {
		return nil, fmt.Errorf("load permissions of role %d: %w", p.CompanyRoleID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		p.Permissions = append(p.Permissions, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate permissions: %w", err)
	}

	return &p, nil
}
