package user

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

const selectUser = `
SELECT id, email, username, password_hash, phone_number, address, first_name, last_name,
       middle_names, role, created_at, updated_at
FROM users`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.PhoneNumber, &u.Address,
		&u.FirstName, &u.LastName, &u.MiddleNames, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (User, error) {
	const query = `
INSERT INTO users (email, username, password_hash, phone_number, address, first_name, last_name, middle_names, role)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, params.Email, params.Username, params.PasswordHash,
		params.PhoneNumber, params.Address, params.FirstName, params.LastName, params.MiddleNames, params.Role)
	if err != nil {
		if db.IsDuplicate(err) {
			return User{}, ErrDuplicate
		}
		return User{}, fmt.Errorf("insert user %s: %w", params.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("get user id: %w", err)
	}

	return r.Find(ctx, id)
}

func (r *SQLRepository) findOne(ctx context.Context, where string, arg any) (User, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectUser+" WHERE "+where+" LIMIT 1", arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Find(ctx context.Context, id int64) (User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *SQLRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *SQLRepository) SearchByEmail(ctx context.Context, term string, limit int) ([]User, error) {
	query := selectUser + " WHERE LOWER(email) LIKE CONCAT('%', LOWER(?), '%') ORDER BY email LIMIT ?"

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, escapeLike(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *SQLRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	const query = "UPDATE users SET role = ? WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("update role of user %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	// MySQL reports zero affected rows when the value is unchanged.
	if n == 0 {
		if _, err := r.Find(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *SQLRepository) UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error {
	const query = "UPDATE users SET username = ?, password_hash = ? WHERE id = ?"

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, username, passwordHash, id)
	if err != nil {
		if db.IsDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update credentials of user %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		if _, err := r.Find(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
