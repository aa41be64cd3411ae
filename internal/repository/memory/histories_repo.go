package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/baharkarakas/point-ledger/internal/models"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
)

var _ repo.Histories = (*historiesRepo)(nil)

type historiesRepo struct {
	// lastID is process-wide; the first record gets id 1.
	lastID atomic.Int64

	mu     sync.RWMutex
	byUser map[int64][]models.PointHistory
}

func NewHistories() *historiesRepo {
	return &historiesRepo{byUser: make(map[int64][]models.PointHistory)}
}

func (r *historiesRepo) Append(_ context.Context, userID, amount int64, t models.TransactionType, updateMillis int64) (models.PointHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// id is taken under the write lock so per-user slices stay sorted by id
	h := models.PointHistory{
		ID:           r.lastID.Add(1),
		UserID:       userID,
		Amount:       amount,
		Type:         t,
		UpdateMillis: updateMillis,
	}
	r.byUser[userID] = append(r.byUser[userID], h)
	return h, nil
}

func (r *historiesRepo) ListByUser(_ context.Context, userID int64) ([]models.PointHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.byUser[userID]
	out := make([]models.PointHistory, len(src))
	copy(out, src)
	return out, nil
}
