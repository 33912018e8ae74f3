package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/dbx"
)

const savedAtKey = "saved_at"

// SQLiteRepository implements Repository on the tables created by the
// client migrations.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}

		for i, u := range users {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO users (position, id, name, created_at) VALUES (?, ?, ?, ?)`,
				i, u.ID, u.Name, formatTime(u.CreatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, savedAtKey, formatTime(r.now()))
		if err != nil {
			return fmt.Errorf("failed to stamp snapshot: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var (
			u         models.User
			createdAt string
		)
		if err := rows.Scan(&u.ID, &u.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		if u.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) SavedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = ?`, savedAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get snapshot time: %w", err)
	}
	return parseTime(value)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}
