package postgres

import (
	"context"
	"database/sql"
	"time"

	"newstock-notify/internal/domain/newstock"
)

// LedgerRepo 以 Postgres 儲存推送旗標，供多機部署共用同一份台帳。
type LedgerRepo struct {
	db *sql.DB
}

// NewLedgerRepo 建立 Postgres 台帳。
func NewLedgerRepo(db *sql.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// IsPushed 檢查旗標是否存在。
func (r *LedgerRepo) IsPushed(ctx context.Context, kind newstock.FeedKind, date time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM push_flags WHERE flag_key = $1);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, newstock.FlagKey(kind, date)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// MarkPushed 建立或覆寫旗標紀錄。
func (r *LedgerRepo) MarkPushed(ctx context.Context, kind newstock.FeedKind, date time.Time, note string) error {
	const q = `
INSERT INTO push_flags (flag_key, note)
VALUES ($1, $2)
ON CONFLICT (flag_key)
DO UPDATE SET note = EXCLUDED.note, pushed_at = NOW();
`
	_, err := r.db.ExecContext(ctx, q, newstock.FlagKey(kind, date), note)
	return err
}
