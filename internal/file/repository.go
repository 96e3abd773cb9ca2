package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(pool db.Executor) *SQLRepository {
	return &SQLRepository{db: pool}
}

func (r *SQLRepository) Create(ctx context.Context, f AppFile) (AppFile, error) {
	const query = `
INSERT INTO app_files (url, public_id, entity_id, entity_type, file_type)
VALUES (?, ?, ?, ?, ?)`

	res, err := db.Conn(ctx, r.db).ExecContext(ctx, query, f.URL, f.PublicID, f.EntityID, f.EntityType, f.FileType)
	if err != nil {
		return f, fmt.Errorf("insert app file: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return f, fmt.Errorf("get app file id: %w", err)
	}

	return r.find(ctx, id)
}

func (r *SQLRepository) find(ctx context.Context, id int64) (AppFile, error) {
	const query = `
SELECT id, url, public_id, entity_id, entity_type, file_type, created_at
FROM app_files WHERE id = ?`

	var f AppFile
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, query, id)
	if err := row.Scan(&f.ID, &f.URL, &f.PublicID, &f.EntityID, &f.EntityType, &f.FileType, &f.CreatedAt); err != nil {
		return f, fmt.Errorf("find app file %d: %w", id, err)
	}
	return f, nil
}

func (r *SQLRepository) ListByEntity(ctx context.Context, entityType EntityType, entityIDs ...int64) ([]AppFile, error) {
	if len(entityIDs) == 0 {
		return []AppFile{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(entityIDs)), ",")
	query := `
SELECT id, url, public_id, entity_id, entity_type, file_type, created_at
FROM app_files
WHERE entity_type = ? AND entity_id IN (` + placeholders + `)
ORDER BY id`

	args := make([]any, 0, len(entityIDs)+1)
	args = append(args, entityType)
	for _, id := range entityIDs {
		args = append(args, id)
	}

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query app files: %w", err)
	}
	defer rows.Close()

	files := make([]AppFile, 0)
	for rows.Next() {
		var f AppFile
		if err := rows.Scan(&f.ID, &f.URL, &f.PublicID, &f.EntityID, &f.EntityType, &f.FileType, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan app file: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate app files: %w", err)
	}

	return files, nil
}

func (r *SQLRepository) DeleteByEntity(ctx context.Context, entityType EntityType, entityID int64) error {
	const query = "DELETE FROM app_files WHERE entity_type = ? AND entity_id = ?"

	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, query, entityType, entityID); err != nil {
		return fmt.Errorf("delete app files of %s %d: %w", entityType, entityID, err)
	}
	return nil
}
