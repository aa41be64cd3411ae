package postgres

import (
	"context"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type historiesRepo struct{ pool *pgxpool.Pool }

func (r *historiesRepo) Append(ctx context.Context, userID, amount int64, t models.TransactionType, updateMillis int64) (models.PointHistory, error) {
	h := models.PointHistory{UserID: userID, Amount: amount, Type: t, UpdateMillis: updateMillis}
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO point_histories(user_id, amount, type, update_millis)
		 VALUES($1, $2, $3, $4)
		 RETURNING id`,
		userID, amount, string(t), updateMillis,
	).Scan(&h.ID)
	return h, err
}

func (r *historiesRepo) ListByUser(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, user_id, amount, type, update_millis
		   FROM point_histories
		  WHERE user_id=$1
		  ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PointHistory{}
	for rows.Next() {
		var h models.PointHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.Amount, &h.Type, &h.UpdateMillis); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
