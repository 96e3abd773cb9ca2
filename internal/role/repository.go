package role

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

func (r *SQLRepository) ListPermissions(ctx context.Context) ([]Permission, error) {
	const query = "SELECT id, name, type, description FROM company_permissions ORDER BY id"

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	defer rows.Close()

	perms := make([]Permission, 0)
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Description); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate permissions: %w", err)
	}

	return perms, nil
}

func (r *SQLRepository) FindPermission(ctx context.Context, id int64) (Permission, error) {
	const query = "SELECT id, name, type, description FROM company_permissions WHERE id = ?"

	var p Permission
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, query, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrPermissionNotFound
		}
		return p, fmt.Errorf("find permission %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLRepository) CreatePermission(ctx context.Context, p Permission) (Permission, error) {
	const query = "INSERT INTO company_permissions (name, type, description) VALUES (?, ?, ?)"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, p.Name, p.Type, p.Description)
	if err != nil {
		if db.IsDuplicate(err) {
			return p, ErrDuplicatePermission
		}
		return p, fmt.Errorf("insert permission %q: %w", p.Name, err)
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return p, fmt.Errorf("get permission id: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) UpdatePermission(ctx context.Context, p Permission) error {
	const query = "UPDATE company_permissions SET name = ?, type = ?, description = ? WHERE id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, p.Name, p.Type, p.Description, p.ID); err != nil {
		if db.IsDuplicate(err) {
			return ErrDuplicatePermission
		}
		return fmt.Errorf("update permission %d: %w", p.ID, err)
	}
	return nil
}

func (r *SQLRepository) DeletePermission(ctx context.Context, id int64) error {
	const query = "DELETE FROM company_permissions WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete permission %d: %w", id, err)
	}
	return expectOne(res, ErrPermissionNotFound)
}

func (r *SQLRepository) ListRoles(ctx context.Context, companyID int64) ([]Role, error) {
	const query = `
SELECT cr.id, cr.company_id, cr.name, cp.id, cp.name, cp.type, cp.description
FROM company_roles cr
LEFT JOIN company_role_permissions rp ON rp.role_id = cr.id
LEFT JOIN company_permissions cp ON cp.id = rp.permission_id
WHERE cr.company_id = ?
ORDER BY cr.id, cp.id`

	return r.queryRoles(ctx, query, companyID)
}

func (r *SQLRepository) FindRole(ctx context.Context, id int64) (Role, error) {
	const query = `
SELECT cr.id, cr.company_id, cr.name, cp.id, cp.name, cp.type, cp.description
FROM company_roles cr
LEFT JOIN company_role_permissions rp ON rp.role_id = cr.id
LEFT JOIN company_permissions cp ON cp.id = rp.permission_id
WHERE cr.id = ?
ORDER BY cp.id`

	roles, err := r.queryRoles(ctx, query, id)
	if err != nil {
		return Role{}, err
	}
	if len(roles) == 0 {
		return Role{}, ErrRoleNotFound
	}
	return roles[0], nil
}

// queryRoles folds role rows joined with their permissions into roles.
func (r *SQLRepository) queryRoles(ctx context.Context, query string, arg any) ([]Role, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	roles := make([]Role, 0)
	for rows.Next() {
		var (
			role     Role
			permID   sql.NullInt64
			permName sql.NullString
			permType sql.NullString
			permDesc sql.NullString
		)
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Name, &permID, &permName, &permType, &permDesc); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}

		if n := len(roles); n == 0 || roles[n-1].ID != role.ID {
			role.Permissions = []Permission{}
			roles = append(roles, role)
		}

		if permID.Valid {
			last := &roles[len(roles)-1]
			last.Permissions = append(last.Permissions, Permission{
				ID:          permID.Int64,
				Name:        permName.String,
				Type:        PermissionType(permType.String),
				Description: permDesc.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}

	return roles, nil
}

func (r *SQLRepository) CreateRole(ctx context.Context, companyID int64, name string) (int64, error) {
	const query = "INSERT INTO company_roles (company_id, name) VALUES (?, ?)"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, companyID, name)
	if err != nil {
		if db.IsDuplicate(err) {
			return 0, ErrDuplicateRole
		}
		if db.IsMissingReference(err) {
			return 0, ErrCompanyNotFound
		}
		return 0, fmt.Errorf("insert role %q: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get role id: %w", err)
	}
	return id, nil
}

func (r *SQLRepository) RenameRole(ctx context.Context, id int64, name string) error {
	const query = "UPDATE company_roles SET name = ? WHERE id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, name, id); err != nil {
		if db.IsDuplicate(err) {
			return ErrDuplicateRole
		}
		return fmt.Errorf("rename role %d: %w", id, err)
	}
	return nil
}

// SetPermissions replaces the permission set of a role.
func (r *SQLRepository) SetPermissions(ctx context.Context, roleID int64, permissionIDs []int64) error {
	conn := db.Conn(ctx, r.db)

	if _, err := conn.ExecContext(ctx, "DELETE FROM company_role_permissions WHERE role_id = ?", roleID); err != nil {
		return fmt.Errorf("clear permissions of role %d: %w", roleID, err)
	}

	const query = "INSERT INTO company_role_permissions (role_id, permission_id) VALUES (?, ?)"
	for _, permID := range permissionIDs {
		if _, err := conn.ExecContext(ctx, query, roleID, permID); err != nil {
			if db.IsMissingReference(err) {
				return fmt.Errorf("%w: %d", ErrPermissionNotFound, permID)
			}
			if db.IsDuplicate(err) {
				continue
			}
			return fmt.Errorf("grant permission %d to role %d: %w", permID, roleID, err)
		}
	}
	return nil
}

func (r *SQLRepository) DeleteRole(ctx context.Context, id int64) error {
	const query = "DELETE FROM company_roles WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		if db.IsReferenced(err) {
			return ErrRoleInUse
		}
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	return expectOne(res, ErrRoleNotFound)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
