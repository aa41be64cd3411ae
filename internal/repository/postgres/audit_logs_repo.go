package postgres

import (
	"context"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(id, user_id, action, amount, result, balance, created_at) VALUES($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, l.UserID, l.Action, l.Amount, string(l.Result), l.Balance, l.CreatedAt)
	return err
}
