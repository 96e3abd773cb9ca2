package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

const selectCompany = `
SELECT c.id, c.name, c.registration_number, c.tax_id, c.status, c.created_at,
       t.id, t.name, t.description
FROM companies c
JOIN company_types t ON t.id = c.company_type_id`

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

func (r *SQLRepository) List(ctx context.Context) ([]Company, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, selectCompany+" ORDER BY c.name")
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}

	return companies, nil
}

func (r *SQLRepository) Find(ctx context.Context, id int64) (Company, error) {
	var c Company
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectCompany+" WHERE c.id = ?", id)
	if err := scanCompany(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, ErrNotFound
		}
		return c, fmt.Errorf("find company %d: %w", id, err)
	}
	return c, nil
}

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (int64, error) {
	const query = `
INSERT INTO companies (name, registration_number, tax_id, company_type_id, status)
VALUES (?, ?, ?, ?, 'PENDING')`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		params.Name, params.RegistrationNumber, params.TaxID, params.TypeID)
	if err != nil {
		if db.IsDuplicate(err) {
			return 0, ErrDuplicate
		}
		if db.IsMissingReference(err) {
			return 0, ErrTypeNotFound
		}
		return 0, fmt.Errorf("insert company %q: %w", params.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get company id: %w", err)
	}
	return id, nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	const query = "UPDATE companies SET status = ? WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update status of company %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		// MySQL reports zero rows when the status is unchanged.
		if _, err := r.Find(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLRepository) ListTypes(ctx context.Context) ([]Type, error) {
	const query = "SELECT id, name, description FROM company_types ORDER BY name"

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query company types: %w", err)
	}
	defer rows.Close()

	types := make([]Type, 0)
	for rows.Next() {
		var t Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan company type: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company types: %w", err)
	}

	return types, nil
}

func (r *SQLRepository) FindType(ctx context.Context, id int64) (Type, error) {
	const query = "SELECT id, name, description FROM company_types WHERE id = ?"

	var t Type
	if err := db.Conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, ErrTypeNotFound
		}
		return t, fmt.Errorf("find company type %d: %w", id, err)
	}
	return t, nil
}

func (r *SQLRepository) CreateType(ctx context.Context, t Type) (Type, error) {
	const query = "INSERT INTO company_types (name, description) VALUES (?, ?)"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, t.Name, t.Description)
	if err != nil {
		if db.IsDuplicate(err) {
			return t, ErrDuplicateType
		}
		return t, fmt.Errorf("insert company type %q: %w", t.Name, err)
	}

	if t.ID, err = res.LastInsertId(); err != nil {
		return t, fmt.Errorf("get company type id: %w", err)
	}
	return t, nil
}

func (r *SQLRepository) UpdateType(ctx context.Context, t Type) error {
	const query = "UPDATE company_types SET name = ?, description = ? WHERE id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, t.Name, t.Description, t.ID); err != nil {
		if db.IsDuplicate(err) {
			return ErrDuplicateType
		}
		return fmt.Errorf("update company type %d: %w", t.ID, err)
	}
	return nil
}

func (r *SQLRepository) DeleteType(ctx context.Context, id int64) error {
	const query = "DELETE FROM company_types WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		if db.IsReferenced(err) {
			return ErrTypeInUse
		}
		return fmt.Errorf("delete company type %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return ErrTypeNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(s scanner, c *Company) error {
	return s.Scan(&c.ID, &c.Name, &c.RegistrationNumber, &c.TaxID, &c.Status, &c.CreatedAt,
		&c.Type.ID, &c.Type.Name, &c.Type.Description)
}
