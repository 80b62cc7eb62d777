package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/ticklist/internal/db"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database.
type SQLiteSlotRepo struct {
	db db.DBTX
}

// NewSQLiteSlotRepo creates a new SQLiteSlotRepo.
func NewSQLiteSlotRepo(db db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: db}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("slot %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSlotRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSlotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}
