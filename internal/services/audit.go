package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/point-ledger/internal/models"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
	"github.com/baharkarakas/point-ledger/internal/worker"
)

// Auditor writes audit entries asynchronously on the worker pool. Write
// errors are logged and dropped.
type Auditor struct {
	r   repo.AuditLogs
	wp  *worker.Pool
	log *slog.Logger
}

func NewAuditor(r repo.AuditLogs, wp *worker.Pool, log *slog.Logger) *Auditor {
	if log == nil {
		log = slog.Default()
	}
	return &Auditor{r: r, wp: wp, log: log}
}

func (a *Auditor) Record(userID int64, action string, amount int64, result models.AuditResult, balance int64) {
	entry := models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Amount:    amount,
		Result:    result,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
	ok := a.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.r.Create(ctx, entry); err != nil {
			a.log.Warn("audit write", "err", err, "user_id", entry.UserID, "action", entry.Action)
		}
	})
	if !ok {
		a.log.Warn("audit dropped, pool stopped", "user_id", userID, "action", action)
	}
}
