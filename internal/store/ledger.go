package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyos/studyos/internal/achievements"
)

type ledgerRepo struct {
	db *sql.DB
}

func (r *ledgerRepo) Load(ctx context.Context) (achievements.Ledger, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, unlocked_at FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	defer rows.Close()

	ledger := achievements.NewLedger()
	for rows.Next() {
		var id string
		var at int64
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		ledger[id] = time.Unix(at, 0)
	}
	return ledger, rows.Err()
}

// Unlock is write-once at the storage layer too: conflicts keep the
// original unlock time.
func (r *ledgerRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO achievements (id, unlocked_at) VALUES (?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		id, at.Unix())
	if err != nil {
		return fmt.Errorf("unlock achievement: %w", err)
	}
	return nil
}
