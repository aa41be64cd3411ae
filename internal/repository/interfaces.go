package repository

import (
	"context"

	"github.com/baharkarakas/point-ledger/internal/models"
)

// Balances is keyed storage of the current point balance. Get and Put must
// each be atomic; readers never observe a half-written UserPoint.
type Balances interface {
	// Get returns the zero balance for unknown users, not an error.
	Get(ctx context.Context, userID int64) (models.UserPoint, error)
	Put(ctx context.Context, userID, point, updateMillis int64) (models.UserPoint, error)
}

// Histories is the append-only transaction log. Append assigns strictly
// increasing ids; ListByUser returns records in insertion order.
type Histories interface {
	Append(ctx context.Context, userID, amount int64, t models.TransactionType, updateMillis int64) (models.PointHistory, error)
	ListByUser(ctx context.Context, userID int64) ([]models.PointHistory, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

type Set struct {
	Balances  Balances
	Histories Histories
	AuditLogs AuditLogs
}
