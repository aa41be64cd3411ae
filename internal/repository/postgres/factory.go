package postgres

import (
	repo "github.com/baharkarakas/point-ledger/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Set {
	return repo.Set{
		Balances:  &balancesRepo{pool},
		Histories: &historiesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
