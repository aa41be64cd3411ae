package memory

import (
	"context"
	"sync"

	"github.com/baharkarakas/point-ledger/internal/models"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
)

var _ repo.Balances = (*balancesRepo)(nil)

type balancesRepo struct {
	mu     sync.RWMutex
	points map[int64]models.UserPoint
}

func NewBalances() *balancesRepo {
	return &balancesRepo{points: make(map[int64]models.UserPoint)}
}

func (r *balancesRepo) Get(_ context.Context, userID int64) (models.UserPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.points[userID]; ok {
		return p, nil
	}
	return models.EmptyUserPoint(userID), nil
}

func (r *balancesRepo) Put(_ context.Context, userID, point, updateMillis int64) (models.UserPoint, error) {
	p := models.UserPoint{ID: userID, Point: point, UpdateMillis: updateMillis}
	r.mu.Lock()
	r.points[userID] = p
	r.mu.Unlock()
	return p, nil
}
