package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/baharkarakas/point-ledger/internal/metrics"
	"github.com/baharkarakas/point-ledger/internal/models"
	repo "github.com/baharkarakas/point-ledger/internal/repository"
)

// Policy bounds charges. Zero fields mean no limit.
type Policy struct {
	MaxChargeAmount int64
	MaxBalance      int64
}

// PointService owns every balance mutation. Charge and Use for the same user
// run one at a time in lock-grant order; different users never wait on each
// other. Point and History read the stores directly.
type PointService struct {
	bal    repo.Balances
	hist   repo.Histories
	locks  *userLocks
	policy Policy
	audit  *Auditor
	log    *slog.Logger
	now    func() time.Time
}

type Option func(*PointService)

func WithPolicy(p Policy) Option { return func(s *PointService) { s.policy = p } }

func WithAuditor(a *Auditor) Option { return func(s *PointService) { s.audit = a } }

func WithLogger(l *slog.Logger) Option { return func(s *PointService) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *PointService) { s.now = now } }

func NewPointService(b repo.Balances, h repo.Histories, opts ...Option) *PointService {
	s := &PointService{
		bal:   b,
		hist:  h,
		locks: newUserLocks(),
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ----------------- Queries -----------------

func (s *PointService) Point(ctx context.Context, userID int64) (models.UserPoint, error) {
	p, err := s.bal.Get(ctx, userID)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("read balance of user %d: %w", userID, err)
	}
	return p, nil
}

func (s *PointService) History(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	h, err := s.hist.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read history of user %d: %w", userID, err)
	}
	if h == nil {
		h = []models.PointHistory{}
	}
	return h, nil
}

// ----------------- CHARGE -----------------

func (s *PointService) Charge(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	p, err := s.charge(ctx, userID, amount)
	s.record("charge", userID, amount, p, err)
	return p, err
}

func (s *PointService) charge(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	if amount <= 0 {
		return models.UserPoint{}, fmt.Errorf("charge %d: %w", amount, ErrInvalidAmount)
	}
	if s.policy.MaxChargeAmount > 0 && amount > s.policy.MaxChargeAmount {
		return models.UserPoint{}, fmt.Errorf("charge %d above max %d: %w", amount, s.policy.MaxChargeAmount, ErrChargeLimitExceeded)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	cur, err := s.bal.Get(ctx, userID)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("charge: read balance of user %d: %w", userID, err)
	}
	if cur.Point > math.MaxInt64-amount {
		return models.UserPoint{}, fmt.Errorf("charge %d overflows balance %d: %w", amount, cur.Point, ErrChargeLimitExceeded)
	}
	next := cur.Point + amount
	if s.policy.MaxBalance > 0 && next > s.policy.MaxBalance {
		return models.UserPoint{}, fmt.Errorf("balance %d would exceed max %d: %w", next, s.policy.MaxBalance, ErrChargeLimitExceeded)
	}
	return s.apply(ctx, cur, next, amount, models.TxnCharge)
}

// ----------------- USE -----------------

func (s *PointService) Use(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	p, err := s.use(ctx, userID, amount)
	s.record("use", userID, amount, p, err)
	return p, err
}

func (s *PointService) use(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	if amount <= 0 {
		return models.UserPoint{}, fmt.Errorf("use %d: %w", amount, ErrInvalidAmount)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	cur, err := s.bal.Get(ctx, userID)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("use: read balance of user %d: %w", userID, err)
	}
	if cur.Point < amount {
		return models.UserPoint{}, fmt.Errorf("use %d with balance %d: %w", amount, cur.Point, ErrInsufficientBalance)
	}
	return s.apply(ctx, cur, cur.Point-amount, amount, models.TxnUse)
}

// ----------------- Helpers -----------------

// apply writes next and appends the history record. Caller holds the user
// lock. If the append fails the previous balance is written back.
func (s *PointService) apply(ctx context.Context, cur models.UserPoint, next, amount int64, t models.TransactionType) (models.UserPoint, error) {
	millis := s.now().UnixMilli()

	p, err := s.bal.Put(ctx, cur.ID, next, millis)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("%s: write balance of user %d: %w", t, cur.ID, err)
	}

	if _, err := s.hist.Append(ctx, cur.ID, amount, t, millis); err != nil {
		// rollback
		if _, rbErr := s.bal.Put(context.WithoutCancel(ctx), cur.ID, cur.Point, cur.UpdateMillis); rbErr != nil {
			s.log.Error("balance rollback failed", "err", rbErr, "user_id", cur.ID, "point", cur.Point)
			return models.UserPoint{}, fmt.Errorf("%s: append history of user %d: %w", t, cur.ID, errors.Join(err, rbErr))
		}
		return models.UserPoint{}, fmt.Errorf("%s: append history of user %d: %w", t, cur.ID, err)
	}
	return p, nil
}

func resultOf(err error) models.AuditResult {
	switch {
	case err == nil:
		return models.AuditAccepted
	case errors.Is(err, ErrInvalidAmount):
		return models.AuditInvalidAmount
	case errors.Is(err, ErrInsufficientBalance):
		return models.AuditInsufficientBalance
	case errors.Is(err, ErrChargeLimitExceeded):
		return models.AuditChargeLimitExceeded
	default:
		return models.AuditError
	}
}

func (s *PointService) record(action string, userID, amount int64, p models.UserPoint, err error) {
	res := resultOf(err)
	metrics.RecordPointOperation(action, string(res), amount)

	switch res {
	case models.AuditAccepted:
		s.log.Debug("points "+action, "user_id", userID, "amount", amount, "point", p.Point)
	case models.AuditError:
		s.log.Error("points "+action, "err", err, "user_id", userID, "amount", amount)
	default:
		s.log.Info("points "+action+" rejected", "err", err, "user_id", userID, "amount", amount)
	}

	if s.audit != nil {
		s.audit.Record(userID, action, amount, res, p.Point)
	}
}
