package postgres

import (
	"context"
	"errors"

	"github.com/baharkarakas/point-ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type balancesRepo struct{ pool *pgxpool.Pool }

func (r *balancesRepo) Get(ctx context.Context, userID int64) (models.UserPoint, error) {
	var p models.UserPoint
	err := r.pool.QueryRow(
		ctx,
		`SELECT user_id, point, update_millis
		   FROM user_points
		  WHERE user_id=$1`,
		userID,
	).Scan(&p.ID, &p.Point, &p.UpdateMillis)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EmptyUserPoint(userID), nil
	}
	return p, err
}

func (r *balancesRepo) Put(ctx context.Context, userID, point, updateMillis int64) (models.UserPoint, error) {
	var p models.UserPoint
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO user_points(user_id, point, update_millis)
		 VALUES($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		    SET point = EXCLUDED.point,
		        update_millis = EXCLUDED.update_millis
		 RETURNING user_id, point, update_millis`,
		userID, point, updateMillis,
	).Scan(&p.ID, &p.Point, &p.UpdateMillis)
	return p, err
}
