package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Document store keys for the uploaded curriculum.
const (
	DocCurriculumContent  = "curriculum_content"
	DocCurriculumFileName = "curriculum_filename"
)

// DocumentRepo is a flat key-value store with last-write-wins semantics.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("document get: %w", err)
	}
	return v, true, nil
}

func (r *DocumentRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("document put: %w", err)
	}
	return nil
}

func (r *DocumentRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("document delete: %w", err)
	}
	return nil
}
